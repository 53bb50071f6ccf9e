// Package raster is the scan rasterizer and coverage accumulator: it walks
// a Figure's active edges one matte row at a time and produces the final
// anti-aliased coverage bytes (spec §4.6, §4.7).
package raster

import (
	"github.com/DougLau/footile/internal/figure"
	"github.com/DougLau/footile/internal/fixed"
)

// FillRule selects how overlapping windings combine into final coverage.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// fullCoverage is the signed delta a vertical edge contributes for one
// fully covered row: scaled to 255 (not 256) so a single winding's
// cumulative sum lands exactly at the 8-bit opaque value.
const fullCoverage = 255

// Rasterize walks fig row by row and writes one accumulated coverage row
// at a time via writeRow. The W-byte row handed to writeRow is reused for
// the next row, so writeRow copies it out (the Plotter copies it into
// Matte.Row(y)); the scan buffer internally carries one extra guard column
// for the exit-remainder rule at the right edge of the matte.
func Rasterize(fig *figure.Figure, w, h int, rule FillRule, writeRow func(y int, row []uint8)) {
	edges := buildEdges(fig)
	aet := newActiveEdgeTable(edges)

	scanBuf := make([]int32, w+1)
	dst := make([]uint8, w)

	for y := 0; y < h; y++ {
		rowTop := fixed.FromInt(int32(y))
		rowBot := fixed.FromInt(int32(y + 1))
		aet.advance(rowTop, rowBot)

		for _, e := range aet.edges {
			scanEdgeRow(scanBuf, w, e, rowTop, rowBot)
		}

		switch rule {
		case EvenOdd:
			AccumulateEvenOdd(dst, scanBuf[:w])
		default:
			AccumulateNonZero(dst, scanBuf[:w])
		}
		scanBuf[w] = 0 // the guard column never appears in output; keep it clear

		writeRow(y, dst)
	}
}

// scanEdgeRow adds edge's signed coverage contribution for the row
// [rowTop, rowBot) into buf, splitting it across every pixel column the
// edge crosses and carrying the fractional remainder forward so the
// cumulative sum across the row closes correctly (spec §4.6).
func scanEdgeRow(buf []int32, w int, e Edge, rowTop, rowBot fixed.Fixed) {
	y0 := maxFixed(e.yTop, rowTop)
	y1 := minFixed(e.yBot, rowBot)
	if y1 <= y0 {
		return
	}

	y := y0
	x := e.xAt(y0)
	for y < y1 {
		col := int(x.ToIntFloor())
		if e.islope < 0 && x == fixed.FromInt(int32(col)) {
			// A leftward edge sitting exactly on a column seam runs
			// through the column to the seam's left.
			col--
		}

		yNext := y1
		var xBoundary fixed.Fixed
		atBoundary := false
		if e.islope != 0 {
			if e.islope > 0 {
				xBoundary = fixed.FromInt(int32(col) + 1)
			} else {
				xBoundary = fixed.FromInt(int32(col))
			}
			yBoundary := e.yTop + (xBoundary - e.xTop).Div(e.islope)
			if yBoundary > y && yBoundary < yNext {
				yNext = yBoundary
				atBoundary = true
			}
		}

		xNext := e.xAt(yNext)
		if atBoundary {
			// Land exactly on the seam so the next step starts in the
			// neighbouring column.
			xNext = xBoundary
		}
		dy := yNext - y
		if dy <= 0 {
			// Guard against a step that does not advance; finishing
			// the row in one step keeps the loop from spinning.
			yNext = y1
			xNext = e.xAt(yNext)
			dy = yNext - y
			if dy <= 0 {
				break
			}
		}

		total := dy.MulInt(int32(e.dir))
		avgX := (x + xNext).Div(fixed.FromInt(2))
		colFrac := avgX - fixed.FromInt(int32(col))
		if colFrac < 0 {
			colFrac = 0
		}
		if colFrac > fixed.One {
			colFrac = fixed.One
		}

		here := total.Mul(fixed.One - colFrac)
		remainder := total - here

		addClamped(buf, col, scaleToByteDelta(here))
		addClamped(buf, col+1, scaleToByteDelta(remainder))

		y = yNext
		x = xNext
	}
}

// scaleToByteDelta converts a Fixed fraction-of-fullCoverage value into
// the int32 scan buffer units used by the accumulator.
func scaleToByteDelta(f fixed.Fixed) int32 {
	return int32((int64(f) * fullCoverage) >> 16)
}

func addClamped(buf []int32, col int, v int32) {
	if col < 0 {
		col = 0
	}
	if col >= len(buf) {
		return
	}
	buf[col] += v
}

func maxFixed(a, b fixed.Fixed) fixed.Fixed {
	if a > b {
		return a
	}
	return b
}

func minFixed(a, b fixed.Fixed) fixed.Fixed {
	if a < b {
		return a
	}
	return b
}
