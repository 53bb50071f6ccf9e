package footile

// JoinStyle is the shape used where two stroked segments meet (spec §6).
type JoinStyle int

const (
	// Miter extends the outer edges until they meet, falling back to
	// Bevel when the miter length would exceed the miter limit.
	Miter JoinStyle = iota
	// Bevel connects the outer corners with a straight segment.
	Bevel
	// Round connects the outer corners with a circular arc.
	Round
)

// CapStyle is the shape drawn at the unjoined end of an open subpath
// (spec §6).
type CapStyle int

const (
	// Butt ends the stroke flush with the final point, no extension.
	Butt CapStyle = iota
	// RoundCap ends the stroke with a semicircle centered on the final point.
	RoundCap
	// Square ends the stroke with a square extension of half the pen width.
	Square
)

// Stroke configures how a Path is converted to an outline (spec §4.4 and
// §6: SetJoin, SetCap, SetMiterLimit, SetPenWidth).
type Stroke struct {
	// Width is the default pen width in user-space units, used where a
	// Path carries no PenWidth op. Default: 1.0
	Width float64

	// Cap is the shape of unjoined subpath ends. Default: Butt
	Cap CapStyle

	// Join is the shape of segment joins. Default: Miter
	Join JoinStyle

	// MiterLimit bounds how far a Miter join may extend before it falls
	// back to Bevel. Default: 4.0 (matches SVG).
	MiterLimit float64
}

// DefaultStroke returns a Stroke with default settings: a solid 1-unit
// line with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        Butt,
		Join:       Miter,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given cap style.
func (s Stroke) WithCap(cap CapStyle) Stroke {
	s.Cap = cap
	return s
}

// WithJoin returns a copy of the Stroke with the given join style.
func (s Stroke) WithJoin(join JoinStyle) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// Thin returns a thin stroke (0.5 units).
func Thin() Stroke {
	return DefaultStroke().WithWidth(0.5)
}

// Thick returns a thick stroke (3 units).
func Thick() Stroke {
	return DefaultStroke().WithWidth(3.0)
}

// Bold returns a bold stroke (5 units).
func Bold() Stroke {
	return DefaultStroke().WithWidth(5.0)
}

// RoundStroke returns a stroke with round caps and joins.
func RoundStroke() Stroke {
	return DefaultStroke().WithCap(RoundCap).WithJoin(Round)
}

// SquareStroke returns a stroke with square caps.
func SquareStroke() Stroke {
	return DefaultStroke().WithCap(Square)
}
