package smoothing

import "errors"

// Sentinel errors returned by configuration builders and smoothing
// algorithms.
var (
	// ErrMaxPolygonSizeTooSmall indicates a transformation table was
	// requested for a maximal polygon size below three.
	ErrMaxPolygonSizeTooSmall = errors.New("smoothing: max polygon size must be at least 3")

	// ErrInvalidTransformationSet indicates a supplied transformation table
	// is too short, or contains a non-regularizing entry for some n >= 3.
	ErrInvalidTransformationSet = errors.New("smoothing: invalid transformation set")

	// ErrInvalidMesh indicates an algorithm that requires a valid starting
	// mesh (smart Laplace, GETMe simultaneous, GETMe sequential, combined
	// GETMe) was given one containing an invalid polygon.
	ErrInvalidMesh = errors.New("smoothing: algorithm requires a valid initial mesh")

	// ErrCycleLengthTooLarge indicates GetmeSequentialConfig's quality
	// evaluation cycle length is not strictly less than its max iterations.
	ErrCycleLengthTooLarge = errors.New("smoothing: quality evaluation cycle length must be less than max iterations")
)
