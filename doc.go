// Package getme2d smooths the corners out of a 2D polygonal mesh.
//
// 🚀 What is getme2d?
//
//	A small, dependency-light toolkit for improving the geometric quality
//	of planar polygonal meshes — the GETMe family of element-transformation
//	smoothers, plus the Laplacian baselines they're measured against.
//
// ✨ What's inside:
//
//   - vec2/polygon/mesh  — the plane, its polygons, and the fixed-node mesh
//     built from them
//   - transform/quality  — the generalized-polygon transformation and the
//     mean-ratio quality measure it's tuned against
//   - smoothing          — basic/smart Laplace, basic/full GETMe
//     simultaneous, GETMe sequential, and the combined two-phase GETMe run
//   - meshgen/distortion — synthetic meshes and reproducible local
//     perturbation, for exercising the smoothers without a file on disk
//   - meshio/report      — a plain-text mesh file format and structured
//     run reporting
//   - cmd/getme2d        — a CLI wiring all of the above into
//     smooth/quality/distort subcommands
//
// Quick shape: a fixed hexagonal rim, one free interior node, six
// triangles meeting at the center — the one-liner mesh
// meshgen.RegularPolygonFan(6) builds, and the smallest thing worth
// smoothing.
//
//	go get github.com/katalvlaran/getme2d
package getme2d
