package smoothing

import (
	"testing"

	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/vec2"
	"github.com/stretchr/testify/require"
)

// buildMixedSampleMesh builds the eleven-node, seven-polygon mesh used by
// every end-to-end scenario test: a ring of quadrilaterals and triangles
// around a pentagon, with the outer boundary (node indices 0 through 8)
// fixed and only the two interior nodes (9 and 10) free to move.
func buildMixedSampleMesh(t *testing.T) *mesh.PolygonalMesh {
	t.Helper()

	nodes := []vec2.Vector2{
		{X: 0, Y: 0}, {X: 5, Y: -1}, {X: 7, Y: -2}, {X: 9, Y: 0}, {X: 9, Y: 2},
		{X: 9, Y: 5}, {X: 6, Y: 5}, {X: 3, Y: 5}, {X: 0, Y: 3}, {X: 6, Y: 2},
		{X: 3, Y: 1},
	}
	nodeIndexLists := [][]int{
		{0, 1, 10},
		{1, 9, 10},
		{1, 2, 3, 4, 9},
		{4, 5, 6, 9},
		{9, 6, 10},
		{6, 7, 8, 10},
		{0, 10, 8},
	}
	polygons := make([]polygon.Polygon, len(nodeIndexLists))
	for i, indices := range nodeIndexLists {
		p, err := polygon.New(indices)
		require.NoError(t, err)
		polygons[i] = p
	}
	fixed := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}

	m, err := mesh.New(nodes, polygons, fixed)
	require.NoError(t, err)
	return m
}
