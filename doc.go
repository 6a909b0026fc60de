// Package tin implements a greedy Delaunay terrain-mesh simplifier.
//
// 🏔️ What is tin?
//
//	Given a regular rectangular grid of height samples, tin incrementally
//	builds a triangulated irregular network (TIN) that approximates the
//	height field to within a caller-specified maximum vertical error, using
//	as few vertices as possible. The algorithm maintains a Delaunay
//	triangulation of the selected sample points and, at each step, splits
//	the triangle with the worst rasterized pixel error.
//
// ✨ Why choose tin?
//
//   - Minimal API    — construct a Mesh from a Sampler, call Run or Refine.
//   - Deterministic  — a fixed input grid always yields the same mesh.
//   - Pure Go core   — the refinement engine has no third-party dependency.
//
// Under the hood:
//
//	geom.go    — orient/inCircle integer predicates
//	mesh.go    — half-edge triangle mesh, edge-flip legalization
//	raster.go  — per-triangle worst-pixel error rasterizer
//	queue.go   — container/heap-based max-error priority queue
//	pending.go — set of triangles awaiting rasterization
//	delatin.go — the step/refine/run driver and public façade
//	grid.go    — HeightGrid, a minimal Sampler over a row-major slice
//	export.go  — OBJ mesh writer
//	stats.go   — error histogram and density accessors
//
// See cmd/tinmesh for a CLI wrapper around the public API.
//
//	go get github.com/katalvlaran/tin
package tin
