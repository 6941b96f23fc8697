package smoothing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetmeAggregatesBothPhasesIterationsAndWallClock(t *testing.T) {
	m := buildMixedSampleMesh(t)
	cfg, err := NewGetmeConfig(m.MaximalPolygonSize(), BookExampleTransformations)
	require.NoError(t, err)

	result, err := Getme(context.Background(), m, cfg)
	require.NoError(t, err)

	assert.Greater(t, result.SimultaneousIterations, 0)
	assert.Greater(t, result.SequentialIterations, 0)
	assert.GreaterOrEqual(t, result.WallClockSeconds, 0.0)
	assert.True(t, result.MeshQuality.IsValid())
}

func TestGetmePropagatesSequentialPhaseErrors(t *testing.T) {
	m := buildMixedSampleMesh(t)
	simCfg, err := NewGetmeSimultaneousConfig(m.MaximalPolygonSize(), GenericTransformations,
		WithGetmeSimultaneousMaxIterations(1))
	require.NoError(t, err)
	seqCfg, err := NewGetmeSequentialConfig(m.MaximalPolygonSize(), GenericTransformations,
		WithGetmeSequentialMaxIterations(10), WithGetmeSequentialQualityEvaluationCycleLength(10))
	require.NoError(t, err)

	_, err = Getme(context.Background(), m, NewGetmeConfigFromParts(simCfg, seqCfg))
	assert.ErrorIs(t, err, ErrCycleLengthTooLarge)
}
