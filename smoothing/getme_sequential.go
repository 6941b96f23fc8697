package smoothing

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/quality"
	"github.com/katalvlaran/getme2d/smoothing/heap"
	"github.com/katalvlaran/getme2d/vec2"
)

// neighborQuality pairs a neighbor polygon index with its recomputed
// mean-ratio quality number, as gathered by assessLocalQuality.
type neighborQuality struct {
	polygonIndex int
	meanRatio    float64
}

// localQualityResult is the outcome of tentatively transforming one polygon:
// whether the transformed polygon and every one of its neighbor polygons
// remain valid under the tentative node positions, the transformed polygon's
// own new quality number, and each checked neighbor's new quality number (in
// neighbor-iteration order, truncated at the first invalid one found).
type localQualityResult struct {
	areAllElementsValid        bool
	transformedElementMeanRatio float64
	neighborQualities           []neighborQuality
}

// getmeSequentialRunner holds all state for one GETMe sequential smoothing
// run: the mesh being smoothed, its configuration, the penalty-corrected
// quality min-heap driving polygon selection, a fixed-node bitmap, and the
// scratch node array used to assess a tentative transformation before it is
// committed. The algorithm carries more helper state than a single function
// signature can comfortably hold, so it gets a dedicated runner.
type getmeSequentialRunner struct {
	ctx  context.Context
	mesh *mesh.PolygonalMesh
	cfg  GetmeSequentialConfig

	minHeap        *heap.PolygonQualityMinHeap
	isNodeFixed    []bool
	temporaryNodes []vec2.Vector2
}

// GetmeSequential repeatedly selects the polygon with the lowest
// penalty-corrected mean-ratio quality number, tentatively transforms it
// (edge-length-scaled and relaxed), and commits the transformation only if
// it and every neighbor polygon remain valid afterward; rejected and
// repeated selections accumulate a penalty that discourages the heap from
// returning the same unproductive polygon indefinitely. It tracks the best
// q_min* seen across fixed-length evaluation cycles and restores that node
// array on termination. Requires a valid starting mesh. ctx is checked once
// per iteration; cancellation stops the loop early and restores the best
// mesh found so far, returned alongside ctx.Err().
func GetmeSequential(ctx context.Context, m *mesh.PolygonalMesh, cfg GetmeSequentialConfig) (Result, error) {
	runner, err := newGetmeSequentialRunner(ctx, m, cfg)
	if err != nil {
		return Result{}, err
	}
	return runner.run()
}

func newGetmeSequentialRunner(ctx context.Context, m *mesh.PolygonalMesh, cfg GetmeSequentialConfig) (*getmeSequentialRunner, error) {
	if cfg.QualityEvaluationCycleLength >= cfg.MaxIterations {
		return nil, fmt.Errorf("smoothing: GetmeSequential: cycleLen=%d maxIterations=%d: %w", cfg.QualityEvaluationCycleLength, cfg.MaxIterations, ErrCycleLengthTooLarge)
	}
	if err := checkTransformationsForMesh(m, cfg.PolygonTransformations); err != nil {
		return nil, err
	}

	meanRatios := m.MeanRatioQualityNumbers()
	minHeap := heap.New(meanRatios, m.IsFixedPolygon)
	if minHeap.ContainsInvalid() {
		return nil, fmt.Errorf("smoothing: GetmeSequential: %w", ErrInvalidMesh)
	}

	isNodeFixed := make([]bool, m.NumberOfNodes())
	for nodeIndex := range isNodeFixed {
		isNodeFixed[nodeIndex] = m.IsNodeFixed(nodeIndex)
	}

	return &getmeSequentialRunner{
		ctx:            ctx,
		mesh:           m,
		cfg:            cfg,
		minHeap:        minHeap,
		isNodeFixed:    isNodeFixed,
		temporaryNodes: append([]vec2.Vector2(nil), m.Nodes()...),
	}, nil
}

func (r *getmeSequentialRunner) run() (Result, error) {
	bestQMinStar, err := r.minHeap.QMinStar()
	if err != nil {
		return Result{}, err
	}
	bestNodes := append([]vec2.Vector2(nil), r.mesh.Nodes()...)
	noImproveCycles := 0
	lastTransformedPolygonIndex := -1

	iteration := 0
	start := time.Now()
	for {
		select {
		case <-r.ctx.Done():
			if err := r.mesh.SetNodes(bestNodes); err != nil {
				return Result{}, err
			}
			return newResult("GETMe sequential", r.mesh, time.Since(start).Seconds(), iteration), r.ctx.Err()
		default:
		}

		iteration++
		transformedPolygonIndex := r.minHeap.TopIndex()

		if transformedPolygonIndex == lastTransformedPolygonIndex {
			r.minHeap.AddPenalty(transformedPolygonIndex, r.cfg.PenaltyRepeated)
		}

		r.transformPolygonAndSetTemporaryNodes(r.mesh.Polygons()[transformedPolygonIndex])
		localQuality := r.assessLocalQuality(transformedPolygonIndex)
		if !localQuality.areAllElementsValid {
			r.copyNodes(transformedPolygonIndex, r.mesh.Nodes(), r.temporaryNodes)
			r.minHeap.AddPenalty(transformedPolygonIndex, r.cfg.PenaltyInvalid)
		} else {
			r.copyNodes(transformedPolygonIndex, r.temporaryNodes, r.mesh.Nodes())
			r.minHeap.UpdateQualityAndPenalty(transformedPolygonIndex, localQuality.transformedElementMeanRatio, -r.cfg.PenaltySuccess)
			for _, neighbor := range localQuality.neighborQualities {
				r.minHeap.UpdateQualityIfNotFixed(neighbor.polygonIndex, neighbor.meanRatio)
			}
		}
		lastTransformedPolygonIndex = transformedPolygonIndex

		if iteration%r.cfg.QualityEvaluationCycleLength == 0 {
			qMinStar, err := r.minHeap.QMinStar()
			if err != nil {
				return Result{}, err
			}
			if qMinStar > bestQMinStar {
				bestQMinStar = qMinStar
				copy(bestNodes, r.mesh.Nodes())
				noImproveCycles = 0
			} else {
				noImproveCycles++
			}
		}

		if iteration == r.cfg.MaxIterations || noImproveCycles == r.cfg.MaxNoImprovementCycles {
			break
		}
	}
	elapsed := time.Since(start).Seconds()

	if err := r.mesh.SetNodes(bestNodes); err != nil {
		return Result{}, err
	}
	return newResult("GETMe sequential", r.mesh, elapsed, iteration), nil
}

// transformPolygonAndSetTemporaryNodes writes p's transformed, edge-scaled
// and relaxed corner positions into the runner's scratch node array, for
// every corner whose node is not fixed.
func (r *getmeSequentialRunner) transformPolygonAndSetTemporaryNodes(p polygon.Polygon) {
	transformedNodes := transformScaleAndRelaxElement(r.cfg.PolygonTransformations[p.NumberOfNodes()], r.cfg.RelaxationParameterRho, p, r.mesh.Nodes())
	for nodeNumber, nodeIndex := range p.NodeIndices() {
		if !r.isNodeFixed[nodeIndex] {
			r.temporaryNodes[nodeIndex] = transformedNodes[nodeNumber]
		}
	}
}

// assessLocalQuality recomputes transformedPolygonIndex's own quality number
// and, if that remains valid, every one of its neighbor polygons' quality
// numbers under the runner's tentative scratch node array, stopping at the
// first invalid polygon found.
func (r *getmeSequentialRunner) assessLocalQuality(transformedPolygonIndex int) localQualityResult {
	polygons := r.mesh.Polygons()
	result := localQualityResult{transformedElementMeanRatio: -1.0}

	result.transformedElementMeanRatio = quality.MeanRatio(polygons[transformedPolygonIndex], r.temporaryNodes)
	if result.transformedElementMeanRatio <= 0.0 {
		return result
	}

	for neighborPolygonIndex := range r.mesh.NeighborPolygonIndices(transformedPolygonIndex) {
		neighborMeanRatio := quality.MeanRatio(polygons[neighborPolygonIndex], r.temporaryNodes)
		if neighborMeanRatio <= 0.0 {
			return result
		}
		result.neighborQualities = append(result.neighborQualities, neighborQuality{polygonIndex: neighborPolygonIndex, meanRatio: neighborMeanRatio})
	}
	result.areAllElementsValid = true
	return result
}

// copyNodes copies polygonIndex's node positions from source into target.
// Calling it with r.mesh.Nodes() as target mutates the mesh's node array
// directly (the mesh's mutable-access lifecycle), with no SetNodes call
// needed for intra-run updates.
func (r *getmeSequentialRunner) copyNodes(polygonIndex int, source, target []vec2.Vector2) {
	for _, nodeIndex := range r.mesh.Polygons()[polygonIndex].NodeIndices() {
		target[nodeIndex] = source[nodeIndex]
	}
}
