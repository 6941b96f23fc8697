// Package meshio reads and writes the plain-text "planar_polygonal_mesh"
// mesh file format: a header line, a nodes block, a polygons block, a fixed
// node indices block, and an optional polygon mean-ratio quality block.
// Floating point values round-trip bit-exactly through the shortest decimal
// representation that reads back to the same float64.
package meshio
