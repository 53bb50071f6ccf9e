package raster

import (
	"testing"

	"github.com/DougLau/footile/internal/figure"
	"github.com/DougLau/footile/internal/flatten"
)

func buildSquareFigure(x0, y0, x1, y1 float64) *figure.Figure {
	b := figure.NewBuilder()
	b.Add([]flatten.Op{
		flatten.Move{Point: flatten.Pt{X: x0, Y: y0}},
		flatten.Line{Point: flatten.Pt{X: x1, Y: y0}},
		flatten.Line{Point: flatten.Pt{X: x1, Y: y1}},
		flatten.Line{Point: flatten.Pt{X: x0, Y: y1}},
		flatten.Close{},
	})
	return b.Build()
}

func rasterizeToBytes(fig *figure.Figure, w, h int, rule FillRule) [][]uint8 {
	rows := make([][]uint8, h)
	Rasterize(fig, w, h, rule, func(y int, row []uint8) {
		cp := make([]uint8, w)
		copy(cp, row)
		rows[y] = cp
	})
	return rows
}

func TestRasterizePixelAlignedSquareFullyOpaqueInside(t *testing.T) {
	fig := buildSquareFigure(2, 2, 8, 8)
	rows := rasterizeToBytes(fig, 10, 10, NonZero)

	if rows[5][5] < 250 {
		t.Errorf("interior pixel (5,5) = %d, want near 255", rows[5][5])
	}
	if rows[0][0] != 0 {
		t.Errorf("exterior pixel (0,0) = %d, want 0", rows[0][0])
	}
	if rows[9][9] != 0 {
		t.Errorf("exterior pixel (9,9) = %d, want 0", rows[9][9])
	}
}

func TestRasterizeRowClosesToZero(t *testing.T) {
	fig := buildSquareFigure(2, 2, 8, 8)
	rows := rasterizeToBytes(fig, 10, 10, NonZero)

	row := rows[5]
	if row[len(row)-1] != 0 {
		t.Errorf("row should close to 0 coverage at the right edge, got %d", row[len(row)-1])
	}
}

func TestRasterizeBowtieFilledUnderBothRules(t *testing.T) {
	// A self-intersecting bowtie: two triangles meeting only at the
	// crossing point (5,5). No region is covered twice, so each triangle
	// is filled under both rules; pixel (5,5) is half inside the lower
	// triangle and pixel (5,8) lies wholly inside it.
	b := figure.NewBuilder()
	b.Add([]flatten.Op{
		flatten.Move{Point: flatten.Pt{X: 0, Y: 0}},
		flatten.Line{Point: flatten.Pt{X: 10, Y: 10}},
		flatten.Line{Point: flatten.Pt{X: 0, Y: 10}},
		flatten.Line{Point: flatten.Pt{X: 10, Y: 0}},
		flatten.Close{},
	})
	fig := b.Build()

	nz := rasterizeToBytes(fig, 10, 10, NonZero)
	eo := rasterizeToBytes(fig, 10, 10, EvenOdd)

	if nz[5][5] == 0 {
		t.Error("NonZero should fill the crossed center of a bowtie")
	}
	if eo[8][5] < 250 {
		t.Errorf("EvenOdd should fill the lower triangle of a bowtie at (5,8), got %d", eo[8][5])
	}
}

// TestRasterizeNearVerticalEdgeOnColumnBoundaryTerminates scans a left
// edge that starts exactly on an integer column boundary and drifts across
// it by a single Fixed unit over 20 rows. That slope rounds to zero in
// Fixed, so the edge is scanned as a vertical edge on the seam; every row
// must still close to zero coverage and the interior must fill.
func TestRasterizeNearVerticalEdgeOnColumnBoundaryTerminates(t *testing.T) {
	const eps = 1.0 / 65536
	b := figure.NewBuilder()
	b.Add([]flatten.Op{
		flatten.Move{Point: flatten.Pt{X: 5, Y: 0}},
		flatten.Line{Point: flatten.Pt{X: 5 + eps, Y: 20}},
		flatten.Line{Point: flatten.Pt{X: 15, Y: 20}},
		flatten.Line{Point: flatten.Pt{X: 15, Y: 0}},
		flatten.Close{},
	})
	fig := b.Build()

	rows := rasterizeToBytes(fig, 20, 20, NonZero)
	for y, row := range rows {
		if row[len(row)-1] != 0 {
			t.Fatalf("row %d should close to 0 coverage at the right edge, got %d", y, row[len(row)-1])
		}
	}
	if rows[10][10] < 250 {
		t.Errorf("interior pixel (10,10) = %d, want near 255", rows[10][10])
	}
}

func TestRasterizeConcentricOppositeWoundSquaresNonZeroHasHole(t *testing.T) {
	b := figure.NewBuilder()
	// Outer square, clockwise in screen space (Widdershins).
	b.Add([]flatten.Op{
		flatten.Move{Point: flatten.Pt{X: 0, Y: 0}},
		flatten.Line{Point: flatten.Pt{X: 20, Y: 0}},
		flatten.Line{Point: flatten.Pt{X: 20, Y: 20}},
		flatten.Line{Point: flatten.Pt{X: 0, Y: 20}},
		flatten.Close{},
	})
	// Inner square, wound the opposite way (counter-clockwise in screen
	// space), so NonZero cancels it out to a hole.
	b.Add([]flatten.Op{
		flatten.Move{Point: flatten.Pt{X: 5, Y: 5}},
		flatten.Line{Point: flatten.Pt{X: 5, Y: 15}},
		flatten.Line{Point: flatten.Pt{X: 15, Y: 15}},
		flatten.Line{Point: flatten.Pt{X: 15, Y: 5}},
		flatten.Close{},
	})
	fig := b.Build()

	rows := rasterizeToBytes(fig, 20, 20, NonZero)
	if rows[10][10] > 10 {
		t.Errorf("oppositely wound inner square should punch a hole, center = %d", rows[10][10])
	}
	if rows[2][2] < 200 {
		t.Errorf("region only covered by the outer square should stay filled, got %d", rows[2][2])
	}
}
