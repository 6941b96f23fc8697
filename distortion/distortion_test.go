package distortion

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/getme2d/meshgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomVectorPanicsOnNilRng(t *testing.T) {
	assert.Panics(t, func() { RandomVector(nil, 1.0) })
}

func TestRandomVectorPanicsOnNegativeMaxLength(t *testing.T) {
	assert.Panics(t, func() { RandomVector(rand.New(rand.NewSource(1)), -1.0) })
}

func TestRandomVectorStaysWithinMaxLength(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		v := RandomVector(rng, 2.5)
		assert.LessOrEqual(t, v.Length(), 2.5+1e-12)
	}
}

func TestDistortNodesLocallyLeavesFixedNodesUntouched(t *testing.T) {
	m, err := meshgen.RegularPolygonFan(6, meshgen.WithOuterRadius(2.0))
	require.NoError(t, err)

	fixedSnapshot := make(map[int][2]float64)
	for i, n := range m.Nodes() {
		if m.IsNodeFixed(i) {
			fixedSnapshot[i] = [2]float64{n.X, n.Y}
		}
	}

	rng := rand.New(rand.NewSource(7))
	require.NoError(t, DistortNodesLocally(m, rng, 0.1))

	after := m.Nodes()
	for i, want := range fixedSnapshot {
		assert.Equal(t, want[0], after[i].X)
		assert.Equal(t, want[1], after[i].Y)
	}
	assert.NotEqual(t, [2]float64{0, 0}, [2]float64{after[0].X, after[0].Y}, "sanity: free hub node moved off the origin")
}

func TestDistortNodesLocallyIsReproducibleForTheSameSeed(t *testing.T) {
	buildAndDistort := func(seed int64) []float64 {
		m, err := meshgen.RegularPolygonFan(6, meshgen.WithOuterRadius(2.0))
		require.NoError(t, err)
		require.NoError(t, DistortNodesLocally(m, rand.New(rand.NewSource(seed)), 0.3))
		flat := make([]float64, 0, 2*m.NumberOfNodes())
		for _, n := range m.Nodes() {
			flat = append(flat, n.X, n.Y)
		}
		return flat
	}

	first := buildAndDistort(99)
	second := buildAndDistort(99)
	assert.Equal(t, first, second)
}
