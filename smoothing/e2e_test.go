package smoothing

import (
	"context"
	"testing"

	"github.com/katalvlaran/getme2d/vec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioE1MixedSampleMeshQuality verifies the mixed sample mesh's
// element mean-ratio quality numbers and aggregate mesh quality before any
// smoothing is applied.
func TestScenarioE1MixedSampleMeshQuality(t *testing.T) {
	m := buildMixedSampleMesh(t)

	expectedMeanRatios := []float64{
		0.62983665729777, 0.98974331861079, 0.91416344852770, 1.0,
		0.70856623945999, 0.78044556063132, 0.97427857925749,
	}
	meanRatios := m.MeanRatioQualityNumbers()
	require.Len(t, meanRatios, len(expectedMeanRatios))
	for i, want := range expectedMeanRatios {
		assert.InDelta(t, want, meanRatios[i], 1e-11, "polygon %d", i)
	}

	q := m.Quality()
	assert.InDelta(t, 0.62983665729777, q.QMin(), 1e-11)
	qMinStar, hasQMinStar := q.QMinStar()
	require.True(t, hasQMinStar)
	assert.InDelta(t, 0.62983665729777, qMinStar, 1e-11)
	assert.InDelta(t, 0.85671911482644, q.QMean(), 1e-11)
	assert.Equal(t, 0, q.NumberOfInvalidElements())
}

// TestScenarioE2BasicGetmeSimultaneous reproduces five fixed iterations of
// basic GETMe simultaneous on the mixed sample mesh with book-example
// transformations and relocation-distance termination disabled.
func TestScenarioE2BasicGetmeSimultaneous(t *testing.T) {
	m := buildMixedSampleMesh(t)
	cfg, err := NewBasicGetmeSimultaneousConfig(0.0, m.MaximalPolygonSize(), BookExampleTransformations,
		WithBasicGetmeSimultaneousMaxIterations(5))
	require.NoError(t, err)

	result, err := BasicGetmeSimultaneous(context.Background(), m, cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Iterations)

	nodes := result.Mesh.Nodes()
	assertVectorApprox(t, vec2.Vector2{X: 6.2852970146975231, Y: 1.826704003984736}, nodes[9], 1e-6)
	assertVectorApprox(t, vec2.Vector2{X: 3.3274646701939128, Y: 1.875503321745196}, nodes[10], 1e-6)
}

// TestScenarioE3GetmeSimultaneous reproduces GETMe simultaneous on the
// mixed sample mesh with default config and a 0.01 q-mean threshold,
// expected to terminate after exactly three iterations.
func TestScenarioE3GetmeSimultaneous(t *testing.T) {
	m := buildMixedSampleMesh(t)
	cfg, err := NewGetmeSimultaneousConfig(m.MaximalPolygonSize(), BookExampleTransformations,
		WithGetmeSimultaneousQMeanThreshold(0.01))
	require.NoError(t, err)

	result, err := GetmeSimultaneous(context.Background(), m, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Iterations)

	nodes := result.Mesh.Nodes()
	assertVectorApprox(t, vec2.Vector2{X: 6.2295311988930937, Y: 1.8091846592883019}, nodes[9], 1e-6)
	assertVectorApprox(t, vec2.Vector2{X: 3.2460592185108261, Y: 1.7207683695711489}, nodes[10], 1e-6)
}

// TestScenarioE4GetmeSequential reproduces GETMe sequential on the mixed
// sample mesh with default config, expected to terminate after exactly
// 3800 iterations.
func TestScenarioE4GetmeSequential(t *testing.T) {
	m := buildMixedSampleMesh(t)
	cfg, err := NewGetmeSequentialConfig(m.MaximalPolygonSize(), BookExampleTransformations)
	require.NoError(t, err)

	result, err := GetmeSequential(context.Background(), m, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3800, result.Iterations)

	nodes := result.Mesh.Nodes()
	assertVectorApprox(t, vec2.Vector2{X: 6.2060523653413071, Y: 1.9112677103218558}, nodes[9], 1e-4)
	assertVectorApprox(t, vec2.Vector2{X: 3.9772068085161578, Y: 1.5627349353413904}, nodes[10], 1e-4)
}

// TestScenarioE5CombinedGetme reproduces the combined GETMe algorithm on the
// mixed sample mesh with default book-example configuration.
func TestScenarioE5CombinedGetme(t *testing.T) {
	m := buildMixedSampleMesh(t)
	cfg, err := NewGetmeConfig(m.MaximalPolygonSize(), BookExampleTransformations)
	require.NoError(t, err)

	result, err := Getme(context.Background(), m, cfg)
	require.NoError(t, err)
	assert.Equal(t, 10, result.SimultaneousIterations)
	assert.Equal(t, 3800, result.SequentialIterations)

	nodes := result.Mesh.Nodes()
	assertVectorApprox(t, vec2.Vector2{X: 6.3356720528397403, Y: 1.8744625909694248}, nodes[9], 1e-4)
	assertVectorApprox(t, vec2.Vector2{X: 3.9787712483994113, Y: 1.5627335182809372}, nodes[10], 1e-4)
}

// TestScenarioE6SmartLaplace reproduces two iterations of smart Laplacian
// smoothing on the mixed sample mesh: node 10 relocates to the edge-neighbor
// centroid of the initial mesh, while node 9's candidate relocation is
// rejected because it would decrease its attached polygons' quality sum.
func TestScenarioE6SmartLaplace(t *testing.T) {
	m := buildMixedSampleMesh(t)
	initialNode9 := m.Nodes()[9]
	initialCentroidOfNode10Neighbors := vec2.Centroid([]vec2.Vector2{
		m.Nodes()[0], m.Nodes()[1], m.Nodes()[9], m.Nodes()[6], m.Nodes()[8],
	})

	cfg := NewSmartLaplaceConfig(WithSmartLaplaceMaxIterations(2), WithSmartLaplaceQMeanThreshold(0.0))
	result, err := SmartLaplace(context.Background(), m, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Iterations)

	nodes := result.Mesh.Nodes()
	assertVectorApprox(t, initialNode9, nodes[9], 1e-12)
	assertVectorApprox(t, initialCentroidOfNode10Neighbors, nodes[10], 1e-9)
}

func assertVectorApprox(t *testing.T, want, got vec2.Vector2, tolerance float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance)
	assert.InDelta(t, want.Y, got.Y, tolerance)
}
