package smoothing

import (
	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/quality"
)

// Result is the outcome of one smoothing algorithm invocation: a single
// flat record, no base type.
type Result struct {
	// AlgorithmName identifies which algorithm produced this result, e.g.
	// "Basic Laplace" or "GETMe sequential".
	AlgorithmName string

	// Mesh is the smoothed mesh. It is the same mesh instance the algorithm
	// was given, mutated in place; callers must not hold on to the input
	// mesh afterward.
	Mesh *mesh.PolygonalMesh

	// MeshQuality aggregates Mesh's per-polygon mean-ratio quality numbers.
	MeshQuality quality.MeshQuality

	// WallClockSeconds is the algorithm's measured wall-clock running time.
	WallClockSeconds float64

	// Iterations is the number of smoothing iterations actually performed.
	Iterations int
}

// GetmeResult is the outcome of the combined Getme algorithm: GetmeSimultaneous
// run to completion, then GetmeSequential run on its output mesh. It is a
// sibling record to Result rather than a subtype of it; both phases'
// iteration counts are kept distinct and wall-clock time is summed.
type GetmeResult struct {
	// Mesh is GetmeSequential's output mesh.
	Mesh *mesh.PolygonalMesh

	// MeshQuality aggregates Mesh's per-polygon mean-ratio quality numbers.
	MeshQuality quality.MeshQuality

	// SimultaneousIterations is the number of iterations GetmeSimultaneous
	// performed during the first phase.
	SimultaneousIterations int

	// SequentialIterations is the number of iterations GetmeSequential
	// performed during the second phase.
	SequentialIterations int

	// WallClockSeconds is the sum of both phases' measured wall-clock
	// running times.
	WallClockSeconds float64
}

func newResult(algorithmName string, m *mesh.PolygonalMesh, wallClockSeconds float64, iterations int) Result {
	return Result{
		AlgorithmName:    algorithmName,
		Mesh:             m,
		MeshQuality:      m.Quality(),
		WallClockSeconds: wallClockSeconds,
		Iterations:       iterations,
	}
}
