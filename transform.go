package footile

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Transform is a 2D affine transformation matrix, stored as a 2x3
// row-major matrix (spec §3):
//
//	| a  b  c |
//	| d  e  f |
//
// representing
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate returns a translation transform.
func Translate(x, y float64) Transform {
	return Transform{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale returns a scaling transform.
func Scale(x, y float64) Transform {
	return Transform{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate returns a rotation transform (angle in radians).
func Rotate(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// SkewX returns a transform that shears along the x axis by angle
// radians.
func SkewX(angle float64) Transform {
	return Transform{
		A: 1, B: math.Tan(angle), C: 0,
		D: 0, E: 1, F: 0,
	}
}

// SkewY returns a transform that shears along the y axis by angle
// radians.
func SkewY(angle float64) Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: math.Tan(angle), E: 1, F: 0,
	}
}

// Compose returns the transform that applies other first, then t
// (spec §4.1: "Transform composes right-to-left").
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// Apply returns p transformed by t.
func (t Transform) Apply(p Pt) Pt {
	return Pt{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// ApplyVector applies t to p as a vector, ignoring translation.
func (t Transform) ApplyVector(p Pt) Pt {
	return Pt{
		X: t.A*p.X + t.B*p.Y,
		Y: t.D*p.X + t.E*p.Y,
	}
}

// Invert returns the inverse of t, or the identity transform if t is
// not invertible.
func (t Transform) Invert() Transform {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	invDet := 1.0 / det
	return Transform{
		A: t.E * invDet,
		B: -t.B * invDet,
		C: (t.B*t.F - t.C*t.E) * invDet,
		D: -t.D * invDet,
		E: t.A * invDet,
		F: (t.C*t.D - t.A*t.F) * invDet,
	}
}

// IsIdentity reports whether t is the identity transform.
func (t Transform) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 &&
		t.D == 0 && t.E == 1 && t.F == 0
}

// ToAff3 converts t to golang.org/x/image/math/f64's affine-transform
// representation, for interop with x/image-based tooling (e.g.
// x/image/draw).
func (t Transform) ToAff3() f64.Aff3 {
	return f64.Aff3{t.A, t.B, t.C, t.D, t.E, t.F}
}

// FromAff3 builds a Transform from an x/image/math/f64.Aff3.
func FromAff3(m f64.Aff3) Transform {
	return Transform{
		A: m[0], B: m[1], C: m[2],
		D: m[3], E: m[4], F: m[5],
	}
}
