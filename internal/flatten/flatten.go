// Package flatten converts quadratic and cubic Bezier splines into runs of
// line segments via adaptive recursive subdivision (spec §4.3).
//
// It defines its own local Pt/Op mirror of the root package's Pt/PathOp to
// avoid an import cycle: the root package imports flatten, so flatten
// cannot import the root package back. Callers convert at the boundary.
package flatten

import "math"

// Pt is a 2D point in user or matte space.
type Pt struct {
	X, Y float64
}

func (p Pt) sub(q Pt) Pt       { return Pt{p.X - q.X, p.Y - q.Y} }
func (p Pt) add(q Pt) Pt       { return Pt{p.X + q.X, p.Y + q.Y} }
func (p Pt) mul(s float64) Pt  { return Pt{p.X * s, p.Y * s} }
func (p Pt) dot(q Pt) float64  { return p.X*q.X + p.Y*q.Y }
func (p Pt) length() float64   { return math.Sqrt(p.dot(p)) }
func (p Pt) lerp(q Pt, t float64) Pt {
	return Pt{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Op is a single flattener input operation: the geometric subset of
// footile.PathOp the flattener cares about (PenWidth carries no geometry
// and never reaches this package).
type Op interface{ isOp() }

type Move struct{ Point Pt }
type Line struct{ Point Pt }
type Quad struct{ Control, Point Pt }
type Cubic struct{ Control1, Control2, Point Pt }
type Close struct{}

func (Move) isOp()  {}
func (Line) isOp()  {}
func (Quad) isOp()  {}
func (Cubic) isOp() {}
func (Close) isOp() {}

// maxDepth bounds De Casteljau recursion so a pathological input (e.g. a
// control point at infinity) cannot blow the stack, and since both halves
// recurse, one curve never yields more than 2^maxDepth chords. Beyond this
// depth the current chord is emitted regardless of remaining error
// (spec §4.3).
const maxDepth = 16

// DefaultTolerance is the default maximum perpendicular distance, in
// output-space units, between a subdivided chord and the true curve.
const DefaultTolerance = 0.5

// Flatten converts ops into a pure polyline sequence of Move, Line, and
// Close (every Quad and Cubic is replaced by a run of Line segments). The
// start point of each curve is the path's current point; it is not
// re-emitted.
func Flatten(ops []Op, tolerance float64) []Op {
	out := make([]Op, 0, len(ops))
	var current Pt

	for _, op := range ops {
		switch o := op.(type) {
		case Move:
			current = o.Point
			out = append(out, o)
		case Line:
			current = o.Point
			out = append(out, o)
		case Quad:
			out = appendQuad(out, current, o.Control, o.Point, tolerance, 0)
			current = o.Point
		case Cubic:
			out = appendCubic(out, current, o.Control1, o.Control2, o.Point, tolerance, 0)
			current = o.Point
		case Close:
			out = append(out, o)
		}
	}

	return out
}

func appendQuad(out []Op, p0, p1, p2 Pt, tol float64, depth int) []Op {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) <= tol {
		return append(out, Line{Point: p2})
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	mid := q0.lerp(q1, 0.5)

	out = appendQuad(out, p0, q0, mid, tol, depth+1)
	return appendQuad(out, mid, q1, p2, tol, depth+1)
}

func appendCubic(out []Op, p0, p1, p2, p3 Pt, tol float64, depth int) []Op {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if depth >= maxDepth || math.Max(d1, d2) <= tol {
		return append(out, Line{Point: p3})
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	mid := r0.lerp(r1, 0.5)

	out = appendCubic(out, p0, q0, r0, mid, tol, depth+1)
	return appendCubic(out, mid, r1, q2, p3, tol, depth+1)
}

// distanceToLine returns the perpendicular distance from p to the line
// through a and b (or the distance to a if a == b).
func distanceToLine(p, a, b Pt) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen < 1e-10 {
		return p.sub(a).length()
	}
	// |ab x ap| / |ab| is the perpendicular distance.
	ap := p.sub(a)
	cross := ab.X*ap.Y - ab.Y*ap.X
	return math.Abs(cross) / abLen
}
