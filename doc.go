// Package footile is a Pure Go 2D vector graphics rasterizer.
//
// # Overview
//
// footile converts paths (lines, quadratic and cubic Bezier splines) into
// an anti-aliased coverage matte: a single-channel alpha buffer ready for
// compositing. It fills or strokes a Path and writes the result into a
// Matte using a single-threaded, non-suspending scanline pipeline:
//
//	Path -> (Stroker, if stroking) -> Flattener -> Figure -> scan rasterizer -> Accumulator -> Matte
//
// # Quick Start
//
//	p := footile.NewPathBuilder().
//		Move(10, 10).
//		Line(90, 10).
//		Line(50, 90).
//		Close().
//		Build()
//
//	plot, err := footile.NewPlotter(100, 100)
//	matte, err := plot.Fill(p, footile.NonZero)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Plotter, Path, PathBuilder, Transform, Matte, Pt, WidePt
//   - internal/flatten: adaptive recursive subdivision of Bezier splines
//   - internal/stroke: stroke-to-outline conversion (joins, caps)
//   - internal/figure: subpath assembly and winding determination
//   - internal/raster: active-edge-table scanline rasterization and coverage accumulation
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Pixel centers are at integer + 0.5
//
// # Scope
//
// footile rasterizes coverage; it does not encode images, composite layers,
// shape text, or offload to a GPU. Those concerns live above this package.
package footile
