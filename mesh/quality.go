package mesh

import (
	"github.com/katalvlaran/getme2d/quality"
	"github.com/katalvlaran/getme2d/vec2"
)

// MeanRatioQualityNumbers computes the mean-ratio quality number of every
// polygon in the mesh against its current node positions.
func (m *PolygonalMesh) MeanRatioQualityNumbers() []float64 {
	return quality.ComputeMeanRatios(m.polygons, m.nodes)
}

// Quality aggregates the mesh's per-polygon mean-ratio quality numbers into
// mesh-wide statistics, including qMinStar restricted to non-fixed
// polygons.
func (m *PolygonalMesh) Quality() quality.MeshQuality {
	return quality.FromMeanRatiosWithFixed(m.MeanRatioQualityNumbers(), m.IsFixedPolygon)
}

// Equal reports whether first and second have the same polygons, the same fixed
// node indices, and node positions equal up to tolerance.
func Equal(first, second *PolygonalMesh, nodesEqualTolerance float64) bool {
	if len(first.nodes) != len(second.nodes) {
		return false
	}
	if !vec2.SliceAreEqual(first.nodes, second.nodes, nodesEqualTolerance) {
		return false
	}
	if len(first.polygons) != len(second.polygons) {
		return false
	}
	for i := range first.polygons {
		if !first.polygons[i].Equal(second.polygons[i]) {
			return false
		}
	}
	if len(first.fixedNodeIndices) != len(second.fixedNodeIndices) {
		return false
	}
	for idx := range first.fixedNodeIndices {
		if _, ok := second.fixedNodeIndices[idx]; !ok {
			return false
		}
	}
	return true
}
