// Package meshgen builds deterministic synthetic planar polygonal meshes for
// use by examples, benchmarks, and property tests that need meshes larger
// than the single literal scenario mesh the smoothing package's golden
// tests exercise.
//
// Every constructor returns a *mesh.PolygonalMesh built through
// mesh.New, so callers get the same validation and derived-topology
// guarantees as a hand-authored mesh. Constructors never panic; structural
// errors (too few rim nodes, too few grid rows or columns) are returned, not
// raised. Functional options follow the same validate-and-panic-on-
// construction convention used throughout this module: an option
// constructor panics immediately on a meaningless literal (a non-positive
// radius or cell size) since that is a programmer error, never a runtime
// one.
package meshgen
