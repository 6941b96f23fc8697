package smoothing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/quality"
	"github.com/katalvlaran/getme2d/vec2"
)

// sortedIndices returns set's members in ascending order. Floating-point sums
// over node or polygon sets must not depend on map iteration order, so both
// Laplace variants accumulate over this ordering.
func sortedIndices(set map[int]struct{}) []int {
	indices := make([]int, 0, len(set))
	for index := range set {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}

func arithmeticMeanOfEdgeConnectedNodes(m *mesh.PolygonalMesh, nodeIndex int) vec2.Vector2 {
	nodes := m.Nodes()
	connected := sortedIndices(m.EdgeConnectedNodeIndices(nodeIndex))
	sum := vec2.Vector2{}
	for _, connectedNodeIndex := range connected {
		sum = sum.Add(nodes[connectedNodeIndex])
	}
	return sum.Div(float64(len(connected)))
}

// BasicLaplace repeatedly relocates every non-fixed node to the arithmetic
// mean of its edge-connected neighbors, committing all relocations
// simultaneously each iteration. It does not consider element quality and
// tolerates an invalid starting mesh. ctx is checked once per iteration;
// cancellation stops the loop early and returns the mesh as last committed,
// alongside ctx.Err().
func BasicLaplace(ctx context.Context, m *mesh.PolygonalMesh, cfg BasicLaplaceConfig) (Result, error) {
	iteration := 0
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return newResult("Basic Laplace", m, time.Since(start).Seconds(), iteration), ctx.Err()
		default:
		}

		iteration++
		maxSquaredRelocationDistance := 0.0
		oldNodes := m.Nodes()
		newNodePositions := make([]vec2.Vector2, len(oldNodes))
		copy(newNodePositions, oldNodes)

		for _, nodeIndex := range m.NonFixedNodeIndices() {
			newPosition := arithmeticMeanOfEdgeConnectedNodes(m, nodeIndex)
			newNodePositions[nodeIndex] = newPosition
			updateMaxSquaredNodeRelocationDistance(oldNodes[nodeIndex], newPosition, &maxSquaredRelocationDistance)
		}
		_ = m.SetNodes(newNodePositions) // lengths always match: same mesh, same node count

		if iteration == cfg.MaxIterations || maxSquaredRelocationDistance <= cfg.MaxSquaredNodeRelocationDistanceThreshold {
			break
		}
	}

	return newResult("Basic Laplace", m, time.Since(start).Seconds(), iteration), nil
}

// updateNodePositionIfQualityIsImproved tentatively relocates nodeIndex to
// the arithmetic mean of its edge-connected neighbors (written into
// temporaryNodePositions, which the caller restores afterward) and commits
// the relocation into finalNodePositions only if doing so strictly increases
// the sum of mean-ratio quality over nodeIndex's attached polygons without
// invalidating any of them.
func updateNodePositionIfQualityIsImproved(m *mesh.PolygonalMesh, meanRatios []float64, nodeIndex int, temporaryNodePositions, finalNodePositions []vec2.Vector2) {
	newPosition := arithmeticMeanOfEdgeConnectedNodes(m, nodeIndex)
	temporaryNodePositions[nodeIndex] = newPosition

	oldSum := 0.0
	newSum := 0.0
	for _, attachedPolygonIndex := range sortedIndices(m.AttachedPolygonIndices(nodeIndex)) {
		oldSum += meanRatios[attachedPolygonIndex]
		newQ := quality.MeanRatio(m.Polygons()[attachedPolygonIndex], temporaryNodePositions)
		if newQ <= 0.0 {
			return
		}
		newSum += newQ
	}
	if newSum > oldSum {
		finalNodePositions[nodeIndex] = newPosition
	}
}

// SmartLaplace is BasicLaplace restricted to node relocations that strictly
// improve the sum of mean-ratio quality over the relocated node's attached
// polygons without invalidating any of them, followed each iteration by
// node-reset-on-invalidation to restore global validity. It tracks the best
// mean element quality seen across iterations and restores that node array
// on termination. Requires a valid starting mesh. ctx is checked once per
// iteration; cancellation stops the loop early and restores the best mesh
// found so far, returned alongside ctx.Err().
func SmartLaplace(ctx context.Context, m *mesh.PolygonalMesh, cfg SmartLaplaceConfig) (Result, error) {
	meanRatios := m.MeanRatioQualityNumbers()
	oldMeshQuality := quality.FromMeanRatiosWithFixed(meanRatios, m.IsFixedPolygon)
	if !oldMeshQuality.IsValid() {
		return Result{}, fmt.Errorf("smoothing: SmartLaplace: %w", ErrInvalidMesh)
	}

	newNodePositions := append([]vec2.Vector2(nil), m.Nodes()...)
	temporaryNodePositions := append([]vec2.Vector2(nil), m.Nodes()...)
	bestQMean := oldMeshQuality.QMean()
	bestQMeanNodes := append([]vec2.Vector2(nil), m.Nodes()...)

	iteration := 0
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			if err := m.SetNodes(bestQMeanNodes); err != nil {
				return Result{}, err
			}
			return newResult("Smart Laplace", m, time.Since(start).Seconds(), iteration), ctx.Err()
		default:
		}

		iteration++
		for _, nodeIndex := range m.NonFixedNodeIndices() {
			updateNodePositionIfQualityIsImproved(m, meanRatios, nodeIndex, temporaryNodePositions, newNodePositions)
			temporaryNodePositions[nodeIndex] = m.Nodes()[nodeIndex]
		}

		newMeshQuality, err := iterativelyResetInvalidElements(newNodePositions, meanRatios, m)
		if err != nil {
			return Result{}, err
		}
		if newMeshQuality.QMean() > bestQMean {
			bestQMean = newMeshQuality.QMean()
			copy(bestQMeanNodes, m.Nodes())
		}

		qMeanImprovement := newMeshQuality.QMean() - oldMeshQuality.QMean()
		if iteration == cfg.MaxIterations || qMeanImprovement <= cfg.QMeanImprovementThreshold {
			break
		}
		oldMeshQuality = newMeshQuality
		copy(newNodePositions, m.Nodes())
		copy(temporaryNodePositions, m.Nodes())
	}
	elapsed := time.Since(start).Seconds()

	if err := m.SetNodes(bestQMeanNodes); err != nil {
		return Result{}, err
	}
	return newResult("Smart Laplace", m, elapsed, iteration), nil
}
