package smoothing

import (
	"context"

	"github.com/katalvlaran/getme2d/mesh"
)

// Getme runs the combined GETMe algorithm: GetmeSimultaneous to completion,
// then GetmeSequential on its output mesh. The result aggregates both
// phases' iteration counts and sums their wall-clock times. ctx cancellation
// is forwarded to whichever phase is currently running; on cancellation the
// phase's own best-mesh-so-far is returned alongside ctx.Err(), and the
// other phase never starts.
func Getme(ctx context.Context, m *mesh.PolygonalMesh, cfg GetmeConfig) (GetmeResult, error) {
	simultaneousResult, err := GetmeSimultaneous(ctx, m, cfg.Simultaneous)
	if err != nil {
		if simultaneousResult.Mesh == nil {
			return GetmeResult{}, err
		}
		return GetmeResult{
			Mesh:                   simultaneousResult.Mesh,
			MeshQuality:            simultaneousResult.MeshQuality,
			SimultaneousIterations: simultaneousResult.Iterations,
			WallClockSeconds:       simultaneousResult.WallClockSeconds,
		}, err
	}

	sequentialResult, err := GetmeSequential(ctx, simultaneousResult.Mesh, cfg.Sequential)
	if err != nil && sequentialResult.Mesh == nil {
		return GetmeResult{}, err
	}

	return GetmeResult{
		Mesh:                   sequentialResult.Mesh,
		MeshQuality:            sequentialResult.MeshQuality,
		SimultaneousIterations: simultaneousResult.Iterations,
		SequentialIterations:   sequentialResult.Iterations,
		WallClockSeconds:       simultaneousResult.WallClockSeconds + sequentialResult.WallClockSeconds,
	}, err
}
