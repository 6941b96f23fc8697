package smoothing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularizingTransformationsRejectsTooSmallMax(t *testing.T) {
	_, err := RegularizingTransformations(2, GenericTransformations)
	assert.ErrorIs(t, err, ErrMaxPolygonSizeTooSmall)
}

func TestRegularizingTransformationsGenericUsesPiOverN(t *testing.T) {
	transformations, err := RegularizingTransformations(6, GenericTransformations)
	require.NoError(t, err)
	require.Len(t, transformations, 7)
	assert.InDelta(t, math.Pi/3.0, transformations[3].Theta(), 1e-12)
	assert.InDelta(t, math.Pi/4.0, transformations[4].Theta(), 1e-12)
	assert.InDelta(t, math.Pi/6.0, transformations[6].Theta(), 1e-12)
}

func TestRegularizingTransformationsBookExamplesOverridesTriangleAndQuad(t *testing.T) {
	transformations, err := RegularizingTransformations(5, BookExampleTransformations)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4.0, transformations[3].Theta(), 1e-12)
	assert.InDelta(t, math.Pi/6.0, transformations[4].Theta(), 1e-12)
	assert.InDelta(t, math.Pi/5.0, transformations[5].Theta(), 1e-12)
}

func TestRegularizingTransformationsBookExamplesSkipsQuadOverrideWhenMaxBelowFour(t *testing.T) {
	transformations, err := RegularizingTransformations(3, BookExampleTransformations)
	require.NoError(t, err)
	require.Len(t, transformations, 4)
	assert.InDelta(t, math.Pi/4.0, transformations[3].Theta(), 1e-12)
}

func TestCheckTransformationsAcceptsDefaultTable(t *testing.T) {
	transformations, err := RegularizingTransformations(8, GenericTransformations)
	require.NoError(t, err)
	assert.NoError(t, CheckTransformations(8, transformations))
}

func TestCheckTransformationsRejectsShortTable(t *testing.T) {
	transformations, err := RegularizingTransformations(4, GenericTransformations)
	require.NoError(t, err)
	assert.ErrorIs(t, CheckTransformations(6, transformations), ErrInvalidTransformationSet)
}
