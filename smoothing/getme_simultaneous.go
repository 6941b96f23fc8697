package smoothing

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/quality"
	"github.com/katalvlaran/getme2d/vec2"
)

// BasicGetmeSimultaneous transforms every polygon with its regularizing
// transformation, edge-length-scaled, and relocates each non-fixed node to
// the average of the transformed positions contributed by its attached
// polygons, committing all relocations simultaneously each iteration. It
// does not consider element quality and tolerates an invalid starting mesh.
// ctx is checked once per iteration; cancellation stops the loop early and
// returns the mesh as last committed, alongside ctx.Err().
func BasicGetmeSimultaneous(ctx context.Context, m *mesh.PolygonalMesh, cfg BasicGetmeSimultaneousConfig) (Result, error) {
	if err := checkTransformationsForMesh(m, cfg.PolygonTransformations); err != nil {
		return Result{}, err
	}

	polygons := m.Polygons()
	nodeSums := make([]vec2.Vector2, m.NumberOfNodes())

	iteration := 0
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return newResult("Basic GETMe simultaneous", m, time.Since(start).Seconds(), iteration), ctx.Err()
		default:
		}

		for _, p := range polygons {
			n := p.NumberOfNodes()
			transformedNodes := transformAndScaleElement(cfg.PolygonTransformations[n], p, m.Nodes())
			for nodeNumber := 0; nodeNumber < n; nodeNumber++ {
				nodeIndex := p.NodeIndex(nodeNumber)
				nodeSums[nodeIndex] = nodeSums[nodeIndex].Add(transformedNodes[nodeNumber])
			}
		}

		maxSquaredRelocationDistance := 0.0
		oldNodes := m.Nodes()
		newNodePositions := append([]vec2.Vector2(nil), oldNodes...)
		for _, nodeIndex := range m.NonFixedNodeIndices() {
			newPosition := nodeSums[nodeIndex].Div(float64(len(m.AttachedPolygonIndices(nodeIndex))))
			updateMaxSquaredNodeRelocationDistance(oldNodes[nodeIndex], newPosition, &maxSquaredRelocationDistance)
			newNodePositions[nodeIndex] = newPosition
		}
		if err := m.SetNodes(newNodePositions); err != nil {
			return Result{}, err
		}

		iteration++
		if iteration == cfg.MaxIterations || maxSquaredRelocationDistance <= cfg.MaxSquaredNodeRelocationDistanceThreshold {
			break
		}
		for i := range nodeSums {
			nodeSums[i] = vec2.Vector2{}
		}
	}

	return newResult("Basic GETMe simultaneous", m, time.Since(start).Seconds(), iteration), nil
}

// GetmeSimultaneous transforms every polygon with its regularizing
// transformation, edge-length-scaled and relaxed, and relocates each
// non-fixed node to the quality-weighted average of the transformed
// positions contributed by its attached polygons. Each iteration's candidate
// node array is committed through node-reset-on-invalidation, preserving
// mesh validity. It tracks the best mean element quality seen across
// iterations and restores that node array on termination. Requires a valid
// starting mesh. ctx is checked once per iteration; cancellation stops the
// loop early and restores the best mesh found so far, returned alongside
// ctx.Err().
func GetmeSimultaneous(ctx context.Context, m *mesh.PolygonalMesh, cfg GetmeSimultaneousConfig) (Result, error) {
	if err := checkTransformationsForMesh(m, cfg.PolygonTransformations); err != nil {
		return Result{}, err
	}

	polygons := m.Polygons()
	meanRatios := m.MeanRatioQualityNumbers()
	oldMeshQuality := quality.FromMeanRatiosWithFixed(meanRatios, m.IsFixedPolygon)
	if !oldMeshQuality.IsValid() {
		return Result{}, fmt.Errorf("smoothing: GetmeSimultaneous: %w", ErrInvalidMesh)
	}

	transformedNodeSums := make([]vec2.Vector2, m.NumberOfNodes())
	nodeWeightSums := make([]float64, m.NumberOfNodes())
	newNodePositions := append([]vec2.Vector2(nil), m.Nodes()...)
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
			return newResult("GETMe simultaneous", m, time.Since(start).Seconds(), iteration), ctx.Err()
		default:
		}

		for polygonIndex, p := range polygons {
			n := p.NumberOfNodes()
			transformedNodes := transformScaleAndRelaxElement(cfg.PolygonTransformations[n], cfg.RelaxationParameterRho, p, m.Nodes())

			weight := 1.0
			if cfg.WeightExponentEta != 0.0 {
				weight = math.Pow(1.0-meanRatios[polygonIndex], cfg.WeightExponentEta)
			}
			for nodeNumber := 0; nodeNumber < n; nodeNumber++ {
				nodeIndex := p.NodeIndex(nodeNumber)
				transformedNodeSums[nodeIndex] = transformedNodeSums[nodeIndex].Add(transformedNodes[nodeNumber].Scale(weight))
				nodeWeightSums[nodeIndex] += weight
			}
		}

		for _, nodeIndex := range m.NonFixedNodeIndices() {
			if nodeWeightSums[nodeIndex] > 0.0 {
				newNodePositions[nodeIndex] = transformedNodeSums[nodeIndex].Div(nodeWeightSums[nodeIndex])
			}
		}

		newMeshQuality, err := iterativelyResetInvalidElements(newNodePositions, meanRatios, m)
		if err != nil {
			return Result{}, err
		}
		if newMeshQuality.QMean() > bestQMean {
			bestQMean = newMeshQuality.QMean()
			copy(bestQMeanNodes, m.Nodes())
		}

		iteration++
		qMeanImprovement := newMeshQuality.QMean() - oldMeshQuality.QMean()
		if iteration == cfg.MaxIterations || qMeanImprovement <= cfg.QMeanImprovementThreshold {
			break
		}
		oldMeshQuality = newMeshQuality
		for i := range transformedNodeSums {
			transformedNodeSums[i] = vec2.Vector2{}
			nodeWeightSums[i] = 0.0
		}
		copy(newNodePositions, m.Nodes())
	}
	elapsed := time.Since(start).Seconds()

	if err := m.SetNodes(bestQMeanNodes); err != nil {
		return Result{}, err
	}
	return newResult("GETMe simultaneous", m, elapsed, iteration), nil
}
