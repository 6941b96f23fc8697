package report

import (
	"github.com/katalvlaran/getme2d/quality"
	"github.com/katalvlaran/getme2d/smoothing"
	"github.com/rs/zerolog"
)

// Quality logs a mesh quality snapshot as structured fields: qmin, qmean,
// qmin* (if defined), and the invalid-element count.
func Quality(log zerolog.Logger, label string, q quality.MeshQuality) {
	event := log.Info().
		Str("label", label).
		Float64("q_min", q.QMin()).
		Float64("q_mean", q.QMean()).
		Int("n_invalid", q.NumberOfInvalidElements())
	if qMinStar, ok := q.QMinStar(); ok {
		event = event.Float64("q_min_star", qMinStar)
	}
	event.Msg("mesh quality")
}

// SmoothingResult logs a single-phase smoothing run's outcome.
func SmoothingResult(log zerolog.Logger, result smoothing.Result) {
	log.Info().
		Str("algorithm", result.AlgorithmName).
		Int("iterations", result.Iterations).
		Float64("wall_clock_seconds", result.WallClockSeconds).
		Msg("smoothing run complete")
	Quality(log, result.AlgorithmName, result.MeshQuality)
}

// GetmeResult logs the combined GETMe algorithm's two-phase outcome.
func GetmeResult(log zerolog.Logger, result smoothing.GetmeResult) {
	log.Info().
		Str("algorithm", "Combined GETMe").
		Int("simultaneous_iterations", result.SimultaneousIterations).
		Int("sequential_iterations", result.SequentialIterations).
		Float64("wall_clock_seconds", result.WallClockSeconds).
		Msg("smoothing run complete")
	Quality(log, "Combined GETMe", result.MeshQuality)
}
