// Package smoothing implements the six mesh smoothing algorithms of the
// GETMe book (Laplacian and GETMe variants), plus the shared primitives they
// are built from: edge-length-preserving polygon transformation, the
// node-reset-on-invalidation loop that keeps a simultaneous update valid, and
// the regularizing-transformation-table builder.
//
// Every algorithm takes a *mesh.PolygonalMesh and returns it, transformed, as
// part of a Result. Callers must treat the input mesh as consumed: its node
// positions are mutated in place, and ownership transfers into the algorithm
// and back out via the result. Only non-fixed node positions are ever
// written.
//
// Basic Laplacian and basic GETMe simultaneous tolerate an invalid starting
// mesh. Smart Laplacian, GETMe simultaneous, GETMe sequential and combined
// GETMe require a valid starting mesh and fail fast with ErrInvalidMesh
// otherwise.
package smoothing
