package transform

import "errors"

// Sentinel errors returned by transform constructors.
var (
	// ErrInvalidLambda indicates that lambda was outside the open interval (0,1).
	ErrInvalidLambda = errors.New("transform: lambda must be in (0,1)")

	// ErrInvalidTheta indicates that theta was outside the open interval (0,pi/2).
	ErrInvalidTheta = errors.New("transform: theta must be in (0,pi/2)")
)
