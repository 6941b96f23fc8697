package smoothing

import (
	"context"
	"testing"

	"github.com/katalvlaran/getme2d/vec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetmeSequentialRejectsCycleLengthAtOrAboveMaxIterations(t *testing.T) {
	m := buildMixedSampleMesh(t)
	cfg, err := NewGetmeSequentialConfig(m.MaximalPolygonSize(), GenericTransformations,
		WithGetmeSequentialMaxIterations(10), WithGetmeSequentialQualityEvaluationCycleLength(10))
	require.NoError(t, err)

	_, err = GetmeSequential(context.Background(), m, cfg)
	assert.ErrorIs(t, err, ErrCycleLengthTooLarge)
}

func TestGetmeSequentialRejectsInvalidStartingMesh(t *testing.T) {
	m := buildMixedSampleMesh(t)
	nodes := m.Nodes()
	// Drag node 9 far below the mesh so triangle {1,9,10} flips orientation.
	nodes[9] = vec2.Vector2{X: 3, Y: -5}
	require.NoError(t, m.SetNodes(nodes))

	cfg, err := NewGetmeSequentialConfig(m.MaximalPolygonSize(), GenericTransformations)
	require.NoError(t, err)

	_, err = GetmeSequential(context.Background(), m, cfg)
	assert.ErrorIs(t, err, ErrInvalidMesh)
}

func TestGetmeSequentialPreservesFixedNodesAndStaysValid(t *testing.T) {
	m := buildMixedSampleMesh(t)
	before := m.Nodes()
	fixedSnapshot := make(map[int][2]float64)
	for i, n := range before {
		if m.IsNodeFixed(i) {
			fixedSnapshot[i] = [2]float64{n.X, n.Y}
		}
	}

	cfg, err := NewGetmeSequentialConfig(m.MaximalPolygonSize(), BookExampleTransformations,
		WithGetmeSequentialMaxIterations(200), WithGetmeSequentialQualityEvaluationCycleLength(20))
	require.NoError(t, err)

	result, err := GetmeSequential(context.Background(), m, cfg)
	require.NoError(t, err)
	assert.True(t, result.MeshQuality.IsValid())

	after := result.Mesh.Nodes()
	for i, want := range fixedSnapshot {
		assert.Equal(t, want[0], after[i].X, "fixed node %d must never move", i)
		assert.Equal(t, want[1], after[i].Y, "fixed node %d must never move", i)
	}
}
