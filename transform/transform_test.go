package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/vec2"
)

func TestNewRejectsOutOfRangeLambda(t *testing.T) {
	_, err := New(0.0, math.Pi/4)
	assert.ErrorIs(t, err, ErrInvalidLambda)

	_, err = New(1.0, math.Pi/4)
	assert.ErrorIs(t, err, ErrInvalidLambda)
}

func TestNewRejectsOutOfRangeTheta(t *testing.T) {
	_, err := New(0.5, 0.0)
	assert.ErrorIs(t, err, ErrInvalidTheta)

	_, err = New(0.5, math.Pi/2)
	assert.ErrorIs(t, err, ErrInvalidTheta)
}

func TestEigenvalueZeroIsAlwaysOne(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6, 12} {
		tr, err := ForPolygonSize(n)
		require.NoError(t, err)

		eigenvalues := tr.Eigenvalues(n)
		assert.InDelta(t, 1.0, eigenvalues[0], 1e-12)
	}
}

func TestIsRegularizingIntervalAtHalfLambda(t *testing.T) {
	const n = 6
	// With lambda=1/2, the regularizing interval is theta in [pi/(2n), 3*pi/(2n)].
	lower := math.Pi / (2 * n)
	upper := 3 * math.Pi / (2 * n)

	inside, err := New(0.5, (lower+upper)/2)
	require.NoError(t, err)
	assert.True(t, inside.IsRegularizing(n))

	below, err := New(0.5, lower/2)
	require.NoError(t, err)
	assert.False(t, below.IsRegularizing(n))
}

func TestForPolygonSizeDefault(t *testing.T) {
	tr, err := ForPolygonSize(6)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, tr.Lambda(), 1e-12)
	assert.InDelta(t, math.Pi/6, tr.Theta(), 1e-12)
}

func TestForPolygonSizeToleratesDegenerateN(t *testing.T) {
	tr, err := ForPolygonSize(1)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, tr.Theta(), 1e-12)
}

func TestTransformPreservesRectangleCentroid(t *testing.T) {
	p, err := polygon.New([]int{0, 1, 2, 3})
	require.NoError(t, err)

	nodes := []vec2.Vector2{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 1},
		{X: 0, Y: 1},
	}

	tr, err := ForPolygonSize(4)
	require.NoError(t, err)

	transformed := tr.Transform(p, nodes)
	require.Len(t, transformed, 4)

	centroidBefore := vec2.Centroid(nodes)
	centroidAfter := vec2.Centroid(transformed)
	assert.InDelta(t, centroidBefore.X, centroidAfter.X, 1e-9)
	assert.InDelta(t, centroidBefore.Y, centroidAfter.Y, 1e-9)
}
