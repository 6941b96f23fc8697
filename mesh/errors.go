package mesh

import "errors"

// Sentinel errors returned by mesh construction and mutation.
var (
	// ErrNodeIndexOutOfRange indicates a polygon references a node index not
	// present in the mesh's node slice.
	ErrNodeIndexOutOfRange = errors.New("mesh: node index out of range")

	// ErrTooManyFixedNodes indicates more fixed node indices were supplied
	// than the mesh has nodes.
	ErrTooManyFixedNodes = errors.New("mesh: number of fixed nodes exceeds number of nodes")

	// ErrFixedNodeIndexOutOfRange indicates a fixed node index is not present
	// in the mesh's node slice.
	ErrFixedNodeIndexOutOfRange = errors.New("mesh: fixed node index out of range")

	// ErrNodeCountMismatch indicates SetNodes was called with a slice whose
	// length differs from the mesh's existing node count.
	ErrNodeCountMismatch = errors.New("mesh: replacement node slice has different length")
)
