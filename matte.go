package footile

import "image"

// Matte is the rasterizer's output: a row-major, top-left-origin buffer of
// per-pixel coverage values in [0, 255], one byte per pixel (spec §6). It is
// the accumulation target the Accumulator writes into and the only surface
// the rest of the pipeline exposes to callers.
type Matte struct {
	width  int
	height int
	data   []uint8
}

// NewMatte creates an empty Matte with the given dimensions. All values
// start at 0 (no coverage).
func NewMatte(width, height int) *Matte {
	return &Matte{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMatteFromAlpha builds a Matte from an image's alpha channel.
func NewMatteFromAlpha(img image.Image) *Matte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	m := NewMatte(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// a is 0-65535, shift by 8 to get 0-255
			// #nosec G115 -- safe: a>>8 is always in range [0, 255]
			m.data[y*w+x] = uint8(a >> 8)
		}
	}

	return m
}

// Bounds returns the matte dimensions as an image.Rectangle.
func (m *Matte) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the matte width.
func (m *Matte) Width() int { return m.width }

// Height returns the matte height.
func (m *Matte) Height() int { return m.height }

// At returns the coverage value at (x, y). Returns 0 for coordinates
// outside the matte bounds.
func (m *Matte) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the coverage value at (x, y). Coordinates outside the matte
// bounds are ignored.
func (m *Matte) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire matte with a value.
func (m *Matte) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clear resets every coverage value to 0 (spec §6 ClearMatte).
func (m *Matte) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Clone creates a copy of the matte.
func (m *Matte) Clone() *Matte {
	clone := NewMatte(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Row returns the raw coverage bytes for row y, a view into the matte's
// underlying storage. It is the slice the Accumulator writes a completed
// scanline into (spec §4.7).
func (m *Matte) Row(y int) []uint8 {
	if y < 0 || y >= m.height {
		return nil
	}
	return m.data[y*m.width : (y+1)*m.width]
}

// Data returns the underlying matte data slice, row-major with (0,0) at the
// top left.
func (m *Matte) Data() []uint8 {
	return m.data
}
