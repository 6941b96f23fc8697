package quality

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/vec2"
)

// ComputeMeanRatios computes the mean-ratio quality number of every polygon
// in polygons against the shared nodes slice. The work is split into
// contiguous chunks and processed by a bounded pool of goroutines, each
// chunk writing into its own fixed slot range of the result slice; the
// result is therefore bit-identical to the sequential computation
// regardless of how many goroutines ran it.
func ComputeMeanRatios(polygons []polygon.Polygon, nodes []vec2.Vector2) []float64 {
	meanRatios := make([]float64, len(polygons))
	if len(polygons) == 0 {
		return meanRatios
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(polygons) {
		workers = len(polygons)
	}
	if workers <= 1 {
		for i, p := range polygons {
			meanRatios[i] = MeanRatio(p, nodes)
		}
		return meanRatios
	}

	chunkSize := (len(polygons) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(polygons); start += chunkSize {
		end := start + chunkSize
		if end > len(polygons) {
			end = len(polygons)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				meanRatios[i] = MeanRatio(polygons[i], nodes)
			}
		}(start, end)
	}
	wg.Wait()
	return meanRatios
}
