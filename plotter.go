package footile

import (
	"fmt"
	"math"

	"github.com/DougLau/footile/internal/figure"
	"github.com/DougLau/footile/internal/flatten"
	"github.com/DougLau/footile/internal/raster"
	"github.com/DougLau/footile/internal/stroke"
)

// FillRule selects how overlapping windings combine into final coverage
// (spec §6).
type FillRule int

const (
	// NonZero treats a pixel as covered whenever the winding-signed sum
	// of crossings at that pixel is non-zero.
	NonZero FillRule = iota
	// EvenOdd treats a pixel as covered whenever the number of edge
	// crossings at that pixel is odd, regardless of winding direction.
	EvenOdd
)

// fixedCoordLimit is the largest coordinate magnitude (in matte-space
// units) Fixed can represent; beyond it a coordinate is a fatal
// precondition violation (spec §4.6, §7).
const fixedCoordLimit = 1<<15 - 1

// Plotter rasterizes Paths into a Matte (spec §6). It owns the matte, the
// current transform, and the current stroke configuration; every Fill or
// Stroke call overwrites the whole matte. A Plotter is not safe for
// concurrent use by multiple goroutines (spec §5): rasterize one path at
// a time per Plotter.
type Plotter struct {
	matte     *Matte
	transform Transform
	stroke    Stroke
	tolerance float64

	// scaleX, scaleY map user-space coordinates to matte-space pixels,
	// ahead of transform. Both are 1 unless NewPlotterUserSpace was
	// used to describe the matte in arbitrary logical units
	// (SPEC_FULL.md's user-space supplement).
	scaleX, scaleY float64
}

// NewPlotter allocates a Plotter with a matte of the given pixel size.
// The initial transform is the identity, the initial stroke style is
// DefaultStroke, and the initial curve tolerance is
// internal/flatten.DefaultTolerance (spec §4.3's ~0.5 pixel).
func NewPlotter(width, height int) (*Plotter, error) {
	return NewPlotterUserSpace(width, height, 0, 0)
}

// NewPlotterUserSpace is NewPlotter with an additional user-space to
// matte-space scale: userWidth and userHeight describe the path's
// logical coordinate extent, so callers may author paths in arbitrary
// units instead of pixels. A value of 0 (for either) disables scaling on
// that axis (SPEC_FULL.md's user-space supplement, grounded on
// original_source/src/plotter.rs's PlotterBuilder::user_width/
// user_height).
func NewPlotterUserSpace(width, height int, userWidth, userHeight float64) (*Plotter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("footile: matte size %dx%d invalid: %w", width, height, ErrDimensionInvalid)
	}
	sx, sy := 1.0, 1.0
	if userWidth > 0 {
		sx = float64(width) / userWidth
	}
	if userHeight > 0 {
		sy = float64(height) / userHeight
	}
	return &Plotter{
		matte:     NewMatte(width, height),
		transform: Identity(),
		stroke:    DefaultStroke(),
		tolerance: flatten.DefaultTolerance,
		scaleX:    sx,
		scaleY:    sy,
	}, nil
}

// Matte returns the Plotter's matte. The returned pointer is a borrow:
// it stays valid, and its contents change, across subsequent Fill,
// Stroke, and ClearMatte calls.
func (p *Plotter) Matte() *Matte {
	return p.matte
}

// SetTransform sets the affine transform applied to every path point at
// ingestion, replacing any previously set transform.
func (p *Plotter) SetTransform(t Transform) *Plotter {
	p.transform = t
	return p
}

// ClearTransform resets the transform to the identity.
func (p *Plotter) ClearTransform() *Plotter {
	p.transform = Identity()
	return p
}

// SetJoin sets the join style used by subsequent Stroke calls.
func (p *Plotter) SetJoin(j JoinStyle) *Plotter {
	p.stroke.Join = j
	return p
}

// SetCap sets the cap style used by subsequent Stroke calls.
func (p *Plotter) SetCap(c CapStyle) *Plotter {
	p.stroke.Cap = c
	return p
}

// SetMiterLimit sets the miter limit used by subsequent Stroke calls.
func (p *Plotter) SetMiterLimit(limit float64) *Plotter {
	p.stroke.MiterLimit = limit
	return p
}

// SetPenWidth sets the default pen width used by subsequent Stroke
// calls, for paths that carry no PenWidth op (or before the first one).
func (p *Plotter) SetPenWidth(width float64) *Plotter {
	p.stroke.Width = width
	return p
}

// SetTolerance sets the curve-flattening tolerance, in matte-space
// pixels, used by both Fill and Stroke (SPEC_FULL.md's configurable-
// tolerance supplement; spec §4.3 names ~0.5 as the default).
func (p *Plotter) SetTolerance(px float64) *Plotter {
	if px > 0 {
		p.tolerance = px
	}
	return p
}

// ClearMatte zeros the matte without reallocating it.
func (p *Plotter) ClearMatte() *Plotter {
	p.matte.Clear()
	return p
}

// Fill rasterizes the fill of path under rule into the Plotter's matte,
// fully overwriting it, and returns a borrow of the matte (spec §6).
func (p *Plotter) Fill(path *Path, rule FillRule) (*Matte, error) {
	ops, err := p.toFlattenOps(path)
	if err != nil {
		return nil, err
	}
	flat := flatten.Flatten(ops, p.tolerance)
	return p.rasterize(flat, toRasterRule(rule))
}

// Stroke expands path into its stroke outline using the Plotter's
// current join, cap, miter limit, and pen width, then fills that outline
// with the NonZero rule (spec §4.4 step 5). It fully overwrites the
// matte and returns a borrow of it.
func (p *Plotter) Stroke(path *Path) (*Matte, error) {
	elems, err := p.toStrokeElements(path)
	if err != nil {
		return nil, err
	}

	style := stroke.Stroke{
		Width:      p.stroke.Width * p.widthScale(),
		Cap:        toStrokeCap(p.stroke.Cap),
		Join:       toStrokeJoin(p.stroke.Join),
		MiterLimit: p.stroke.MiterLimit,
	}
	expander := stroke.NewStrokeExpander(style)
	expander.SetTolerance(p.tolerance)
	outline := expander.Expand(elems)

	flat := flatten.Flatten(strokeOutlineToFlatten(outline), p.tolerance)
	return p.rasterize(flat, raster.NonZero)
}

// rasterize assembles a Figure from a flattened op stream and scans it
// into the matte. A figure with no surviving subpaths is PathDegenerate
// (spec §4.5, §7): the matte is cleared, a Warn is logged, and no error
// is returned.
func (p *Plotter) rasterize(flat []flatten.Op, rule raster.FillRule) (*Matte, error) {
	b := figure.NewBuilder()
	b.Add(flat)
	fig := b.Build()

	if len(fig.Subpaths) == 0 {
		Logger().Warn("path degenerate, returning empty matte", "err", ErrPathDegenerate)
		p.matte.Clear()
		return p.matte, nil
	}

	w, h := p.matte.Width(), p.matte.Height()
	raster.Rasterize(fig, w, h, rule, func(y int, row []uint8) {
		copy(p.matte.Row(y), row)
	})

	Logger().Debug("rasterized figure",
		"vertices", len(fig.Points),
		"subpaths", len(fig.Subpaths),
	)
	return p.matte, nil
}

// toFlattenOps converts a Path's PathOps into the flattener's input
// sequence, applying the Plotter's user-space scale and transform to
// every point. PenWidth ops carry no geometry and are dropped: pen width
// only matters to Stroke (spec §4.2's failure mode for Line/Quad/Cubic/
// Close before any Move is handled inside internal/figure.Builder).
func (p *Plotter) toFlattenOps(path *Path) ([]flatten.Op, error) {
	ops := path.Ops()
	out := make([]flatten.Op, 0, len(ops))
	for _, op := range ops {
		switch o := op.(type) {
		case Move:
			pt, err := p.toMattePt(o.Point)
			if err != nil {
				return nil, err
			}
			out = append(out, flatten.Move{Point: pt})
		case Line:
			pt, err := p.toMattePt(o.Point)
			if err != nil {
				return nil, err
			}
			out = append(out, flatten.Line{Point: pt})
		case Quad:
			c, err := p.toMattePt(o.Control)
			if err != nil {
				return nil, err
			}
			pt, err := p.toMattePt(o.Point)
			if err != nil {
				return nil, err
			}
			out = append(out, flatten.Quad{Control: c, Point: pt})
		case Cubic:
			c1, err := p.toMattePt(o.Control1)
			if err != nil {
				return nil, err
			}
			c2, err := p.toMattePt(o.Control2)
			if err != nil {
				return nil, err
			}
			pt, err := p.toMattePt(o.Point)
			if err != nil {
				return nil, err
			}
			out = append(out, flatten.Cubic{Control1: c1, Control2: c2, Point: pt})
		case PenWidth:
			// No geometry; fill doesn't use pen width.
		case Close:
			out = append(out, flatten.Close{})
		}
	}
	return out, nil
}

// toStrokeElements converts a Path's PathOps into the stroker's input
// sequence, carrying the active pen width (scaled the same as geometry,
// see widthScale) forward across PenWidth ops (spec §4.4).
func (p *Plotter) toStrokeElements(path *Path) ([]stroke.PathElement, error) {
	widthScale := p.widthScale()
	currentWidth := p.stroke.Width * widthScale

	ops := path.Ops()
	out := make([]stroke.PathElement, 0, len(ops))
	for _, op := range ops {
		switch o := op.(type) {
		case Move:
			pt, err := p.toMattePt(o.Point)
			if err != nil {
				return nil, err
			}
			out = append(out, stroke.MoveTo{Point: toStrokePoint(pt), Width: currentWidth})
		case Line:
			pt, err := p.toMattePt(o.Point)
			if err != nil {
				return nil, err
			}
			out = append(out, stroke.LineTo{Point: toStrokePoint(pt), Width: currentWidth})
		case Quad:
			c, err := p.toMattePt(o.Control)
			if err != nil {
				return nil, err
			}
			pt, err := p.toMattePt(o.Point)
			if err != nil {
				return nil, err
			}
			out = append(out, stroke.QuadTo{Control: toStrokePoint(c), Point: toStrokePoint(pt), Width: currentWidth})
		case Cubic:
			c1, err := p.toMattePt(o.Control1)
			if err != nil {
				return nil, err
			}
			c2, err := p.toMattePt(o.Control2)
			if err != nil {
				return nil, err
			}
			pt, err := p.toMattePt(o.Point)
			if err != nil {
				return nil, err
			}
			out = append(out, stroke.CubicTo{
				Control1: toStrokePoint(c1),
				Control2: toStrokePoint(c2),
				Point:    toStrokePoint(pt),
				Width:    currentWidth,
			})
		case PenWidth:
			currentWidth = o.Width * widthScale
		case Close:
			out = append(out, stroke.Close{})
		}
	}
	return out, nil
}

// toMattePt applies user-space scale then the current transform to pt,
// and range-checks the result against Fixed's representable range.
func (p *Plotter) toMattePt(pt Pt) (flatten.Pt, error) {
	scaled := Pt{X: pt.X * p.scaleX, Y: pt.Y * p.scaleY}
	t := p.transform.Apply(scaled)
	if !t.Finite() || math.Abs(t.X) > fixedCoordLimit || math.Abs(t.Y) > fixedCoordLimit {
		return flatten.Pt{}, fmt.Errorf("footile: point (%g, %g): %w", t.X, t.Y, ErrCoordinateOverflow)
	}
	return flatten.Pt{X: t.X, Y: t.Y}, nil
}

// widthScale is the uniform scale factor applied to pen widths: the
// user-space scale composed with the geometric mean of the transform's
// singular values (sqrt of the absolute determinant), since the stroker
// only supports a circular pen footprint and has no notion of
// non-uniform width scaling.
func (p *Plotter) widthScale() float64 {
	det := p.transform.A*p.transform.E - p.transform.B*p.transform.D
	s := math.Sqrt(math.Abs(det))
	if s == 0 {
		s = 1
	}
	return s * math.Sqrt(p.scaleX*p.scaleY)
}

func toStrokePoint(pt flatten.Pt) stroke.Point {
	return stroke.Point{X: pt.X, Y: pt.Y}
}

func toRasterRule(r FillRule) raster.FillRule {
	if r == EvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}

func toStrokeCap(c CapStyle) stroke.LineCap {
	switch c {
	case RoundCap:
		return stroke.LineCapRound
	case Square:
		return stroke.LineCapSquare
	default:
		return stroke.LineCapButt
	}
}

func toStrokeJoin(j JoinStyle) stroke.LineJoin {
	switch j {
	case Bevel:
		return stroke.LineJoinBevel
	case Round:
		return stroke.LineJoinRound
	default:
		return stroke.LineJoinMiter
	}
}

// strokeOutlineToFlatten converts the stroker's output PathElements (a
// closed fill outline, possibly still carrying Quad/Cubic arcs from
// round joins and caps) into the flattener's input op stream.
func strokeOutlineToFlatten(elems []stroke.PathElement) []flatten.Op {
	out := make([]flatten.Op, 0, len(elems))
	for _, el := range elems {
		switch e := el.(type) {
		case stroke.MoveTo:
			out = append(out, flatten.Move{Point: flatten.Pt{X: e.Point.X, Y: e.Point.Y}})
		case stroke.LineTo:
			out = append(out, flatten.Line{Point: flatten.Pt{X: e.Point.X, Y: e.Point.Y}})
		case stroke.QuadTo:
			out = append(out, flatten.Quad{
				Control: flatten.Pt{X: e.Control.X, Y: e.Control.Y},
				Point:   flatten.Pt{X: e.Point.X, Y: e.Point.Y},
			})
		case stroke.CubicTo:
			out = append(out, flatten.Cubic{
				Control1: flatten.Pt{X: e.Control1.X, Y: e.Control1.Y},
				Control2: flatten.Pt{X: e.Control2.X, Y: e.Control2.Y},
				Point:    flatten.Pt{X: e.Point.X, Y: e.Point.Y},
			})
		case stroke.Close:
			out = append(out, flatten.Close{})
		}
	}
	return out
}
