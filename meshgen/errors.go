package meshgen

import "errors"

// Sentinel errors returned by meshgen constructors.
var (
	// ErrTooFewRimNodes indicates a fan or ring was requested with fewer
	// rim nodes than the minimum needed to form a valid polygon ring.
	ErrTooFewRimNodes = errors.New("meshgen: too few rim nodes")

	// ErrTooFewGridCells indicates a grid was requested with fewer than two
	// rows or two columns of nodes.
	ErrTooFewGridCells = errors.New("meshgen: too few grid rows or columns")
)
