package footile

import "errors"

// Sentinel errors for the conditions spec §7 names. Callers distinguish
// them with errors.Is; NewPlotter and Fill/Stroke wrap the offending
// value onto these with fmt.Errorf("...: %w", ...).
var (
	// ErrDimensionInvalid is returned by NewPlotter when width or
	// height is <= 0.
	ErrDimensionInvalid = errors.New("footile: matte width and height must be positive")

	// ErrCoordinateOverflow is returned by Fill or Stroke when a
	// transformed coordinate falls outside the range Fixed can
	// represent (roughly +-32767). Every coordinate is checked before
	// rasterization starts, so the matte is left unchanged; there is no
	// partial retry.
	ErrCoordinateOverflow = errors.New("footile: coordinate exceeds Fixed range")

	// ErrPathDegenerate is never returned to a caller. Spec.md treats
	// a path whose every subpath flattens to fewer than 3 distinct
	// vertices as non-fatal: Fill and Stroke log it at Warn and return
	// an empty matte with a nil error instead.
	ErrPathDegenerate = errors.New("footile: path has no fillable area")
)
