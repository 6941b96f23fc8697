package smoothing_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/getme2d/meshgen"
	"github.com/katalvlaran/getme2d/smoothing"
	"github.com/katalvlaran/getme2d/vec2"
)

// ExampleBasicLaplace smooths a triangle fan whose hub node has been pulled
// off-center: one averaging pass relocates the hub to the rim's centroid,
// the second detects convergence.
func ExampleBasicLaplace() {
	m, _ := meshgen.RegularPolygonFan(8)
	nodes := append([]vec2.Vector2(nil), m.Nodes()...)
	nodes[0] = vec2.Vector2{X: 0.3, Y: 0.2}
	_ = m.SetNodes(nodes)
	before := m.Quality().QMean()

	result, _ := smoothing.BasicLaplace(context.Background(), m, smoothing.NewBasicLaplaceConfig(1e-6))

	fmt.Println("iterations:", result.Iterations)
	fmt.Println("improved:", result.MeshQuality.QMean() > before)

	// Output:
	// iterations: 2
	// improved: true
}
