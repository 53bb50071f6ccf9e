package footile

// PathBuilder provides a fluent interface for Path construction. It is
// the public builder/convenience façade spec §1 places outside the
// rasterizer's core: the core only ever consumes a built Path's Ops().
//
// By default coordinates passed to Move/Line/Quad/Cubic are absolute.
// Relative() switches to coordinates relative to the current pen
// position, matching footile's original PathBuilder
// (absolute()/relative() in original_source/src/path.rs); Absolute()
// switches back.
type PathBuilder struct {
	ops      []PathOp
	absolute bool
	penX     float64
	penY     float64
}

// NewPathBuilder creates a new, empty PathBuilder using absolute
// coordinates.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{
		ops:      make([]PathOp, 0, 32),
		absolute: true,
	}
}

// Absolute switches subsequent coordinates to absolute mode. This is
// the default.
func (b *PathBuilder) Absolute() *PathBuilder {
	b.absolute = true
	return b
}

// Relative switches subsequent coordinates to be relative to the
// current pen position.
func (b *PathBuilder) Relative() *PathBuilder {
	b.absolute = false
	return b
}

// pt resolves (x, y) to an absolute point given the current mode.
func (b *PathBuilder) pt(x, y float64) Pt {
	if b.absolute {
		return Pt{X: x, Y: y}
	}
	return Pt{X: b.penX + x, Y: b.penY + y}
}

// Move starts a new subpath at (x, y).
func (b *PathBuilder) Move(x, y float64) *PathBuilder {
	p := b.pt(x, y)
	b.ops = append(b.ops, Move{Point: p})
	b.penX, b.penY = p.X, p.Y
	return b
}

// Line draws a straight segment from the pen to (x, y).
func (b *PathBuilder) Line(x, y float64) *PathBuilder {
	p := b.pt(x, y)
	b.ops = append(b.ops, Line{Point: p})
	b.penX, b.penY = p.X, p.Y
	return b
}

// Quad draws a quadratic Bezier spline through control point (cx, cy)
// to (x, y).
func (b *PathBuilder) Quad(cx, cy, x, y float64) *PathBuilder {
	c := b.pt(cx, cy)
	p := b.pt(x, y)
	b.ops = append(b.ops, Quad{Control: c, Point: p})
	b.penX, b.penY = p.X, p.Y
	return b
}

// Cubic draws a cubic Bezier spline through control points (c1x, c1y)
// and (c2x, c2y) to (x, y).
func (b *PathBuilder) Cubic(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	c1 := b.pt(c1x, c1y)
	c2 := b.pt(c2x, c2y)
	p := b.pt(x, y)
	b.ops = append(b.ops, Cubic{Control1: c1, Control2: c2, Point: p})
	b.penX, b.penY = p.X, p.Y
	return b
}

// PenWidth changes the active pen stroke width from this point forward.
func (b *PathBuilder) PenWidth(width float64) *PathBuilder {
	b.ops = append(b.ops, PenWidth{Width: width})
	return b
}

// Close closes the current subpath and returns the pen to the origin,
// matching footile's original builder (close() resets pen_x/pen_y).
func (b *PathBuilder) Close() *PathBuilder {
	b.ops = append(b.ops, Close{})
	b.penX, b.penY = 0, 0
	return b
}

// Build returns the constructed Path.
func (b *PathBuilder) Build() *Path {
	return &Path{ops: b.ops}
}
