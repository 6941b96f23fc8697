package heap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noneFixed(int) bool { return false }

func TestNewOrdersByQuality(t *testing.T) {
	h := New([]float64{0.8, 0.1, 0.5, 0.9}, noneFixed)
	require.True(t, h.IsConsistent())
	assert.Equal(t, 1, h.TopIndex())
}

func TestFixedPolygonsSortAfterNonFixed(t *testing.T) {
	isFixed := func(i int) bool { return i == 0 }
	// Polygon 0 has the best raw quality but is fixed; it must never surface
	// as the top pick.
	h := New([]float64{0.99, 0.5, 0.2}, isFixed)
	require.True(t, h.IsConsistent())
	assert.Equal(t, 2, h.TopIndex())
	assert.False(t, h.IsAllFixed())
}

func TestIsAllFixed(t *testing.T) {
	h := New([]float64{0.5, 0.8}, func(int) bool { return true })
	assert.True(t, h.IsAllFixed())
	_, err := h.QMinStar()
	assert.ErrorIs(t, err, ErrAllFixedMesh)
}

func TestUpdateQualityIfNotFixedReordersHeap(t *testing.T) {
	h := New([]float64{0.8, 0.1, 0.5}, noneFixed)
	require.Equal(t, 1, h.TopIndex())

	h.UpdateQualityIfNotFixed(1, 0.99)
	require.True(t, h.IsConsistent())
	assert.Equal(t, 2, h.TopIndex())
}

func TestUpdateQualityIfNotFixedSkipsFixedPolygon(t *testing.T) {
	isFixed := func(i int) bool { return i == 0 }
	h := New([]float64{0.1, 0.5}, isFixed)
	h.UpdateQualityIfNotFixed(0, -5.0)
	qMinStar, err := h.QMinStar()
	require.NoError(t, err)
	assert.Equal(t, 0.5, qMinStar)
}

func TestAddPenaltyClampsAtZero(t *testing.T) {
	h := New([]float64{0.5}, noneFixed)
	h.AddPenalty(0, -10.0)
	require.True(t, h.IsConsistent())
	// Penalty sum cannot go negative, so penalty-corrected quality equals raw quality.
	qMinStar, err := h.QMinStar()
	require.NoError(t, err)
	assert.Equal(t, 0.5, qMinStar)
}

func TestUpdateQualityAndPenaltyTogether(t *testing.T) {
	h := New([]float64{0.5, 0.5}, noneFixed)
	h.UpdateQualityAndPenalty(0, 0.5, 1.0)
	require.True(t, h.IsConsistent())
	assert.Equal(t, 1, h.TopIndex())
}

func TestContainsInvalid(t *testing.T) {
	h := New([]float64{0.5, -1.0, 0.8}, noneFixed)
	assert.True(t, h.ContainsInvalid())

	clean := New([]float64{0.5, 0.2, 0.8}, noneFixed)
	assert.False(t, clean.ContainsInvalid())
}

func TestRandomizedUpdatesStayConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 50
	ratios := make([]float64, n)
	for i := range ratios {
		ratios[i] = rng.Float64()
	}
	isFixed := func(i int) bool { return i%7 == 0 }
	h := New(ratios, isFixed)
	require.True(t, h.IsConsistent())

	for i := 0; i < 500; i++ {
		polygonIndex := rng.Intn(n)
		switch rng.Intn(3) {
		case 0:
			h.UpdateQualityIfNotFixed(polygonIndex, rng.Float64())
		case 1:
			h.AddPenalty(polygonIndex, rng.Float64()-0.5)
		case 2:
			h.UpdateQualityAndPenalty(polygonIndex, rng.Float64(), rng.Float64()-0.5)
		}
		require.True(t, h.IsConsistent())
	}
}

func TestSnapshotReportsEveryPolygonInIndexOrder(t *testing.T) {
	isFixed := func(i int) bool { return i == 2 }
	h := New([]float64{0.8, 0.1, 0.5}, isFixed)
	h.AddPenalty(1, 0.25)
	require.Equal(t, 3, h.Len())

	entries := h.Snapshot()
	require.Len(t, entries, 3)
	for polygonIndex, e := range entries {
		assert.Equal(t, polygonIndex, e.PolygonIndex)
	}
	assert.True(t, entries[2].IsFixedPolygon)
	assert.Equal(t, 0.25, entries[1].PenaltySum)
	assert.Equal(t, 0.1+0.25, entries[1].PenaltyCorrected)
}
