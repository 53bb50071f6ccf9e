// Package stroke provides stroke expansion algorithms for converting stroked paths to filled outlines.
//
// This package follows tiny-skia and kurbo patterns for offsetting a path.
// The algorithm converts a path plus a stroke style into a filled path
// suitable for the scanline rasterizer in internal/raster.
//
// # Algorithm Overview
//
// Stroke expansion works by building two parallel offset paths:
//   - Forward path: Offset by +width/2 perpendicular to the tangent
//   - Backward path: Offset by -width/2 perpendicular to the tangent
//
// The final filled path is constructed by:
//  1. Forward path goes forward
//  2. End cap connects forward to backward
//  3. Backward path is reversed
//  4. Start cap connects backward to forward and closes
//
// # Line Caps
//
// Line caps define the shape of stroke endpoints:
//   - LineCapButt: Flat cap ending exactly at the endpoint
//   - LineCapRound: Semicircular cap with radius = width/2
//   - LineCapSquare: Square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
// Line joins define how stroke segments connect:
//   - LineJoinMiter: Sharp corner (limited by miter limit)
//   - LineJoinRound: Circular arc at corners
//   - LineJoinBevel: Straight line across the corner
//
// # Variable Width
//
// Every PathElement carries the pen width in effect at its endpoint.
// Width varies linearly along the path parameter between a vertex and
// the next, including across a flattened Quad or Cubic: since width is
// a linear function of the curve parameter, bisecting it alongside the
// de Casteljau geometric subdivision reproduces the exact width at every
// emitted vertex without tracking the parameter separately.
//
// # Usage
//
//	style := stroke.Stroke{
//	    Width:      2.0,
//	    Cap:        stroke.LineCapRound,
//	    Join:       stroke.LineJoinMiter,
//	    MiterLimit: 4.0,
//	}
//
//	expander := stroke.NewStrokeExpander(style)
//	expander.SetTolerance(0.1) // Optional: adjust curve flattening
//
//	inputPath := []stroke.PathElement{
//	    stroke.MoveTo{Point: stroke.Point{X: 0, Y: 0}, Width: 2.0},
//	    stroke.LineTo{Point: stroke.Point{X: 100, Y: 0}, Width: 2.0},
//	    stroke.LineTo{Point: stroke.Point{X: 100, Y: 100}, Width: 6.0},
//	}
//
//	filledPath := expander.Expand(inputPath)
//
// # References
//
// The algorithm is based on:
//   - tiny-skia (Rust): path/src/stroker.rs
//   - kurbo (Rust): src/stroke.rs
package stroke
