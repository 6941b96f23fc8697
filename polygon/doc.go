// Package polygon defines the Polygon type: an ordered sequence of pairwise
// distinct node indices interpreted as a closed loop.
//
// Polygons never store coordinates themselves: they index into a shared
// node slice owned by a mesh.PolygonalMesh, so moving a node never requires
// touching the polygons referencing it.
package polygon
