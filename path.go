package footile

// PathOp is a single path operation (spec §3). The concrete cases are
// Move, Line, Quad, Cubic, PenWidth, and Close.
type PathOp interface {
	isPathOp()
}

// Move starts a new subpath at Point.
type Move struct{ Point Pt }

func (Move) isPathOp() {}

// Line draws a straight segment from the current point to Point.
type Line struct{ Point Pt }

func (Line) isPathOp() {}

// Quad draws a quadratic Bezier spline with one control point.
type Quad struct{ Control, Point Pt }

func (Quad) isPathOp() {}

// Cubic draws a cubic Bezier spline with two control points.
type Cubic struct{ Control1, Control2, Point Pt }

func (Cubic) isPathOp() {}

// PenWidth changes the active pen width for every op from this point
// forward, until the next PenWidth.
type PenWidth struct{ Width float64 }

func (PenWidth) isPathOp() {}

// Close closes the current subpath with a straight segment back to its
// start point.
type Close struct{}

func (Close) isPathOp() {}

// Path is an ordered, immutable sequence of PathOp. A Path is built with
// a PathBuilder and consumed as a restartable, finite sequence: the
// Flattener and Stroker may each iterate the same Path independently
// (spec §4.2).
type Path struct {
	ops []PathOp
}

// Ops returns the path's operations. The returned slice is owned by the
// Path and must not be mutated by the caller.
func (p *Path) Ops() []PathOp {
	return p.ops
}

// Empty reports whether the path has no operations.
func (p *Path) Empty() bool {
	return len(p.ops) == 0
}
