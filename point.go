package footile

import "math"

// Pt is a 2D point or vector: a pair of coordinates used as path input
// and transform output (spec §3).
type Pt struct {
	X, Y float64
}

// Point is an alias for Pt retained for readability at call sites that
// think of a value as a point rather than a coordinate pair.
type Point = Pt

// Pt2 is a convenience constructor.
func Pt2(x, y float64) Pt {
	return Pt{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Pt) Add(q Pt) Pt {
	return Pt{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Pt) Sub(q Pt) Pt {
	return Pt{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Pt) Mul(s float64) Pt {
	return Pt{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Pt) Div(s float64) Pt {
	return Pt{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Pt) Dot(q Pt) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (the z-component of the 3D cross
// product of the two vectors extended into the plane).
func (p Pt) Cross(q Pt) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Pt) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Pt) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Pt) Distance(q Pt) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction, or the zero
// vector if p has zero length.
func (p Pt) Normalize() Pt {
	length := p.Length()
	if length == 0 {
		return Pt{}
	}
	return Pt{X: p.X / length, Y: p.Y / length}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Pt) Rotate(angle float64) Pt {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Pt{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Pt) Lerp(q Pt, t float64) Pt {
	return Pt{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Finite reports whether both coordinates are finite, per spec §3's
// Figure invariant that Pt coordinates are finite.
func (p Pt) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// WidePt is a Pt paired with a pen width (spec §3). The stroker in
// internal/stroke keeps its own WidePt type and does not use this one.
type WidePt struct {
	Pt
	Width float64
}

// WidePt2 is a convenience constructor.
func WidePt2(x, y, width float64) WidePt {
	return WidePt{Pt: Pt{X: x, Y: y}, Width: width}
}

// LerpWidth linearly interpolates both position and width between two
// WidePts (spec §4.4's "variable-width interpolation... linear along
// the path parameter").
func (p WidePt) LerpWidth(q WidePt, t float64) WidePt {
	return WidePt{
		Pt:    p.Pt.Lerp(q.Pt, t),
		Width: p.Width + (q.Width-p.Width)*t,
	}
}
