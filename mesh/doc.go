// Package mesh represents a planar polygonal mesh: a fixed topology of
// polygons over a mutable set of node positions, together with the
// node/polygon adjacency derived from that topology once at construction
// time.
//
// Complexity:
//
//	– New:      O(sum of polygon sizes) time and space to derive topology.
//	– SetNodes: O(n) time to replace positions, topology unchanged.
package mesh
