package smoothing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/transform"
)

// TransformationSet selects which regularizing transformation table
// RegularizingTransformations builds.
type TransformationSet int

const (
	// GenericTransformations uses lambda=1/2, theta=pi/n for every polygon
	// size n.
	GenericTransformations TransformationSet = iota

	// BookExampleTransformations is identical to GenericTransformations
	// except it overrides theta=pi/4 for triangles (n=3) and theta=pi/6 for
	// quadrilaterals (n=4), matching the examples chapter of the GETMe book.
	BookExampleTransformations
)

// RegularizingTransformations builds a table of regularizing
// transformations, indexed by polygon node count from 0 up to and including
// maxPolygonSize. Entries at index 0, 1 and 2 are placeholders: no polygon
// has fewer than three nodes, so they are never applied.
func RegularizingTransformations(maxPolygonSize int, set TransformationSet) ([]transform.Transformation, error) {
	if maxPolygonSize < 3 {
		return nil, fmt.Errorf("smoothing: maxPolygonSize=%d: %w", maxPolygonSize, ErrMaxPolygonSizeTooSmall)
	}

	transformations := make([]transform.Transformation, maxPolygonSize+1)
	for n := 0; n <= maxPolygonSize; n++ {
		t, err := transform.ForPolygonSize(n)
		if err != nil {
			return nil, err
		}
		transformations[n] = t
	}

	if set == BookExampleTransformations {
		triangle, err := transform.New(0.5, math.Pi/4.0)
		if err != nil {
			return nil, err
		}
		transformations[3] = triangle

		if maxPolygonSize >= 4 {
			quad, err := transform.New(0.5, math.Pi/6.0)
			if err != nil {
				return nil, err
			}
			transformations[4] = quad
		}
	}
	return transformations, nil
}

// CheckTransformations validates that transformations carries an entry for
// every polygon size up to maxPolygonSize, and that every entry for n >= 3
// satisfies the regularity predicate for that n.
func CheckTransformations(maxPolygonSize int, transformations []transform.Transformation) error {
	if len(transformations) <= maxPolygonSize {
		return fmt.Errorf("smoothing: need entries up to index %d, got %d: %w", maxPolygonSize, len(transformations), ErrInvalidTransformationSet)
	}
	for n := 3; n <= maxPolygonSize; n++ {
		if !transformations[n].IsRegularizing(n) {
			return fmt.Errorf("smoothing: transformation for n=%d is not regularizing: %w", n, ErrInvalidTransformationSet)
		}
	}
	return nil
}

// checkTransformationsForMesh validates transformations against m's maximal
// polygon size.
func checkTransformationsForMesh(m *mesh.PolygonalMesh, transformations []transform.Transformation) error {
	return CheckTransformations(m.MaximalPolygonSize(), transformations)
}
