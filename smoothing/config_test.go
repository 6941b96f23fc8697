package smoothing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBasicLaplaceConfigSquaresThreshold(t *testing.T) {
	cfg := NewBasicLaplaceConfig(2.0)
	assert.Equal(t, 4.0, cfg.MaxSquaredNodeRelocationDistanceThreshold)
	assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)
}

func TestWithBasicLaplaceMaxIterationsPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { WithBasicLaplaceMaxIterations(0) })
}

func TestNewSmartLaplaceConfigDefaults(t *testing.T) {
	cfg := NewSmartLaplaceConfig()
	assert.Equal(t, DefaultQMeanImprovementThreshold, cfg.QMeanImprovementThreshold)
	assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)
}

func TestNewGetmeSimultaneousConfigDefaults(t *testing.T) {
	cfg, err := NewGetmeSimultaneousConfig(6, BookExampleTransformations)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.WeightExponentEta)
	assert.Equal(t, 1.0, cfg.RelaxationParameterRho)
	assert.Len(t, cfg.PolygonTransformations, 7)
}

func TestWithGetmeSimultaneousRelaxationParameterRhoPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { WithGetmeSimultaneousRelaxationParameterRho(0.0) })
	assert.Panics(t, func() { WithGetmeSimultaneousRelaxationParameterRho(1.5) })
}

func TestNewGetmeSequentialConfigDefaults(t *testing.T) {
	cfg, err := NewGetmeSequentialConfig(6, GenericTransformations)
	require.NoError(t, err)
	assert.Equal(t, DefaultSequentialRelaxationParameterRho, cfg.RelaxationParameterRho)
	assert.Equal(t, DefaultSequentialMaxIterations, cfg.MaxIterations)
	assert.Equal(t, DefaultQualityEvaluationCycleLength, cfg.QualityEvaluationCycleLength)
	assert.Equal(t, DefaultMaxNoImprovementCycles, cfg.MaxNoImprovementCycles)
}

func TestWithGetmeSequentialPenaltiesOverridesAllThree(t *testing.T) {
	cfg, err := NewGetmeSequentialConfig(4, GenericTransformations, WithGetmeSequentialPenalties(0.1, 0.2, 0.3))
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.PenaltyInvalid)
	assert.Equal(t, 0.2, cfg.PenaltyRepeated)
	assert.Equal(t, 0.3, cfg.PenaltySuccess)
}

func TestNewGetmeConfigSharesTransformationSet(t *testing.T) {
	cfg, err := NewGetmeConfig(5, BookExampleTransformations)
	require.NoError(t, err)
	assert.Len(t, cfg.Simultaneous.PolygonTransformations, 6)
	assert.Len(t, cfg.Sequential.PolygonTransformations, 6)
}

func TestNewGetmeConfigRejectsTooSmallMax(t *testing.T) {
	_, err := NewGetmeConfig(2, GenericTransformations)
	assert.ErrorIs(t, err, ErrMaxPolygonSizeTooSmall)
}
