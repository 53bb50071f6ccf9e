// Package figure assembles a flattened polyline stream into the subpath
// structure the scan rasterizer walks: one Fixed-point vertex list per
// subpath plus a winding direction, and a single y,x-sorted vertex order
// shared across all subpaths (spec §4.5).
//
// Like internal/flatten, this package keeps its own local Pt mirror (built
// on internal/fixed) to avoid an import cycle with the root package.
package figure

import (
	"sort"

	"github.com/DougLau/footile/internal/fixed"
	"github.com/DougLau/footile/internal/flatten"
)

// Vid identifies a vertex by its index into Figure.Points.
type Vid int32

// Wind is a subpath's winding direction, determined once at build time
// from the orientation of its extremal vertex.
type Wind int

const (
	// Normal is a counter-clockwise-appearing subpath in the y-down
	// coordinate system (non-positive cross product at its lowest-y,
	// leftmost-x vertex).
	Normal Wind = iota
	// Widdershins is the opposite winding.
	Widdershins
)

// Pt is a vertex in Fixed-point matte space.
type Pt struct {
	X, Y fixed.Fixed
}

// Subpath is a contiguous run of vertices in Figure.Points, closed back to
// its own start.
type Subpath struct {
	Start, End Vid // half-open range [Start, End) into Figure.Points
	Wind       Wind
}

// Figure is the fully assembled, winding-resolved input to the scan
// rasterizer.
type Figure struct {
	Points   []Pt
	Subpaths []Subpath
	// Sorted lists every Vid across every subpath ordered by (y, x),
	// the order the scan rasterizer introduces edges in.
	Sorted []Vid
}

// Next returns the vertex following v within its subpath, wrapping around
// to Start after End-1.
func (f *Figure) Next(v Vid, sp Subpath) Vid {
	n := v + 1
	if n >= sp.End {
		return sp.Start
	}
	return n
}

// Prev returns the vertex preceding v within its subpath, wrapping around
// to End-1 before Start.
func (f *Figure) Prev(v Vid, sp Subpath) Vid {
	if v > sp.Start {
		return v - 1
	}
	return sp.End - 1
}

// Builder incrementally assembles a Figure from a flattened Move/Line/Close
// op stream.
type Builder struct {
	points    []Pt
	subpaths  []Subpath
	subStart  int
	hasOpen   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{points: make([]Pt, 0, 64)}
}

// Add feeds a flattened op stream (the output of flatten.Flatten) into the
// builder.
func (b *Builder) Add(ops []flatten.Op) {
	for _, op := range ops {
		switch o := op.(type) {
		case flatten.Move:
			b.closeCurrent()
			b.startSubpath(o.Point)
		case flatten.Line:
			b.appendPoint(o.Point)
		case flatten.Close:
			b.closeCurrent()
		}
	}
}

func (b *Builder) startSubpath(p flatten.Pt) {
	b.subStart = len(b.points)
	b.points = append(b.points, toFixedPt(p))
	b.hasOpen = true
}

func (b *Builder) appendPoint(p flatten.Pt) {
	if !b.hasOpen {
		// A Line with no preceding Move; treat it as starting a
		// degenerate subpath at the origin rather than panicking.
		b.startSubpath(flatten.Pt{})
	}
	fp := toFixedPt(p)
	if n := len(b.points); n > b.subStart && b.points[n-1] == fp {
		return // drop consecutive duplicate vertices
	}
	b.points = append(b.points, fp)
}

// closeCurrent finalizes the in-progress subpath, discarding it if it has
// fewer than 3 distinct points (spec §4.5).
func (b *Builder) closeCurrent() {
	if !b.hasOpen {
		return
	}
	b.hasOpen = false

	start := Vid(b.subStart)
	end := Vid(len(b.points))
	// Drop a final point that duplicates the subpath's start (an
	// explicit Close back to Move).
	if end-start > 1 && b.points[end-1] == b.points[start] {
		b.points = b.points[:end-1]
		end--
	}
	if end-start < 3 {
		b.points = b.points[:start]
		return
	}

	sp := Subpath{Start: start, End: end}
	sp.Wind = windingOf(b.points, sp)
	b.subpaths = append(b.subpaths, sp)
}

// Build finalizes any in-progress subpath and returns the assembled Figure.
func (b *Builder) Build() *Figure {
	b.closeCurrent()

	fig := &Figure{
		Points:   b.points,
		Subpaths: b.subpaths,
	}
	fig.Sorted = sortedVids(fig)
	return fig
}

func toFixedPt(p flatten.Pt) Pt {
	return Pt{X: fixed.FromFloat64(p.X), Y: fixed.FromFloat64(p.Y)}
}

// windingOf determines a subpath's winding by examining its lowest-y,
// leftmost-x vertex and the signed cross product of its two incident
// edges (spec §4.5).
func windingOf(points []Pt, sp Subpath) Wind {
	extreme := sp.Start
	for v := sp.Start + 1; v < sp.End; v++ {
		p, e := points[v], points[extreme]
		if p.Y < e.Y || (p.Y == e.Y && p.X < e.X) {
			extreme = v
		}
	}

	prev := extreme - 1
	if prev < sp.Start {
		prev = sp.End - 1
	}
	next := extreme + 1
	if next >= sp.End {
		next = sp.Start
	}

	p, v, n := points[prev], points[extreme], points[next]
	e1x, e1y := v.X-p.X, v.Y-p.Y
	e2x, e2y := n.X-v.X, n.Y-v.Y
	cross := e1x.Mul(e2y) - e1y.Mul(e2x)

	if cross > 0 {
		return Widdershins
	}
	return Normal
}

// sortedVids returns every vertex across every subpath ordered by (y, x),
// the order the scan rasterizer introduces edges in.
func sortedVids(fig *Figure) []Vid {
	ids := make([]Vid, len(fig.Points))
	for i := range ids {
		ids[i] = Vid(i)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := fig.Points[ids[i]], fig.Points[ids[j]]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return ids
}
