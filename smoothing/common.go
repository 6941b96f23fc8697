package smoothing

import (
	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/quality"
	"github.com/katalvlaran/getme2d/transform"
	"github.com/katalvlaran/getme2d/vec2"
)

// applyEdgeLengthScaling implements Definition 5.5 of the GETMe book: it
// scales transformedNodes (in polygon-local order) toward p's centroid in
// originalMeshNodes so that the transformed polygon's perimeter matches the
// original polygon's perimeter, preventing element shrinkage from the
// transformation alone. transformedNodes is updated in place.
func applyEdgeLengthScaling(p polygon.Polygon, originalMeshNodes []vec2.Vector2, transformedNodes []vec2.Vector2) {
	n := p.NumberOfNodes()

	centroid := vec2.Vector2{}
	originalLength := 0.0
	transformedLength := 0.0
	previousMeshNodeIndex := p.NodeIndex(n - 1)
	previousLocalIndex := n - 1
	for nodeNumber := 0; nodeNumber < n; nodeNumber++ {
		meshNodeIndex := p.NodeIndex(nodeNumber)
		centroid = centroid.Add(originalMeshNodes[meshNodeIndex])
		originalLength += originalMeshNodes[meshNodeIndex].Sub(originalMeshNodes[previousMeshNodeIndex]).Length()
		previousMeshNodeIndex = meshNodeIndex

		transformedLength += transformedNodes[nodeNumber].Sub(transformedNodes[previousLocalIndex]).Length()
		previousLocalIndex = nodeNumber
	}
	centroid = centroid.Div(float64(n))

	scalingFactor := originalLength / transformedLength
	oneMinusScalingFactor := 1.0 - scalingFactor
	for nodeNumber := 0; nodeNumber < n; nodeNumber++ {
		transformedNodes[nodeNumber] = centroid.Scale(oneMinusScalingFactor).Add(transformedNodes[nodeNumber].Scale(scalingFactor))
	}
}

// transformAndScaleElement applies t to p and restores its original edge
// length budget via applyEdgeLengthScaling.
func transformAndScaleElement(t transform.Transformation, p polygon.Polygon, meshNodes []vec2.Vector2) []vec2.Vector2 {
	transformedNodes := t.Transform(p, meshNodes)
	applyEdgeLengthScaling(p, meshNodes, transformedNodes)
	return transformedNodes
}

// transformScaleAndRelaxElement additionally blends transformAndScaleElement's
// output with the current node positions at relaxation factor rho, per
// Definition 5.6 of the GETMe book. rho == 1.0 disables relaxation (the
// common case) and skips the blend entirely.
func transformScaleAndRelaxElement(t transform.Transformation, rho float64, p polygon.Polygon, meshNodes []vec2.Vector2) []vec2.Vector2 {
	newNodes := transformAndScaleElement(t, p, meshNodes)
	if rho == 1.0 {
		return newNodes
	}
	oneMinusRho := 1.0 - rho
	for nodeNumber := 0; nodeNumber < p.NumberOfNodes(); nodeNumber++ {
		newNodes[nodeNumber] = meshNodes[p.NodeIndex(nodeNumber)].Scale(oneMinusRho).Add(newNodes[nodeNumber].Scale(rho))
	}
	return newNodes
}

// updateMaxSquaredNodeRelocationDistance raises *maxSquaredDistance to the
// squared distance between oldPosition and newPosition if that is larger.
func updateMaxSquaredNodeRelocationDistance(oldPosition, newPosition vec2.Vector2, maxSquaredDistance *float64) {
	if d := newPosition.Sub(oldPosition).LengthSquared(); d > *maxSquaredDistance {
		*maxSquaredDistance = d
	}
}

// iterativelyResetInvalidElements commits newNodePositions to m, first
// resetting to their original position any node attached to a polygon whose
// mean-ratio quality number is non-positive, and recomputing the quality
// numbers of affected polygons, repeating until no invalid polygon remains.
// meanRatios is first overwritten with every polygon's quality number under
// newNodePositions, so its incoming contents are not read. Termination is guaranteed because m's previous
// node positions were valid, so resetting every node eventually restores
// validity. meanRatios is updated in place and m.SetNodes is called exactly
// once, with the final, valid node positions.
func iterativelyResetInvalidElements(newNodePositions []vec2.Vector2, meanRatios []float64, m *mesh.PolygonalMesh) (quality.MeshQuality, error) {
	polygons := m.Polygons()
	copy(meanRatios, quality.ComputeMeanRatios(polygons, newNodePositions))

	for {
		nodesToReset := make(map[int]struct{})
		for polygonIndex, q := range meanRatios {
			if q <= 0.0 {
				for _, nodeIndex := range polygons[polygonIndex].NodeIndices() {
					nodesToReset[nodeIndex] = struct{}{}
				}
			}
		}
		if len(nodesToReset) == 0 {
			break
		}

		originalNodes := m.Nodes()
		affectedPolygons := make(map[int]struct{})
		for nodeIndex := range nodesToReset {
			newNodePositions[nodeIndex] = originalNodes[nodeIndex]
			for attachedPolygonIndex := range m.AttachedPolygonIndices(nodeIndex) {
				affectedPolygons[attachedPolygonIndex] = struct{}{}
			}
		}
		for polygonIndex := range affectedPolygons {
			meanRatios[polygonIndex] = quality.MeanRatio(polygons[polygonIndex], newNodePositions)
		}
	}

	if err := m.SetNodes(newNodePositions); err != nil {
		return quality.MeshQuality{}, err
	}
	return quality.FromMeanRatiosWithFixed(meanRatios, m.IsFixedPolygon), nil
}
