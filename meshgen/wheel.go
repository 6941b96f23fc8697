package meshgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/vec2"
)

const minFanRimNodes = 3

// RegularPolygonFan builds a wheel of triangles: one interior hub node
// (index 0) surrounded by numberOfRimNodes evenly spaced rim nodes (indices
// 1..numberOfRimNodes), each consecutive pair of rim nodes forming a
// triangle with the hub. Mirrors the hub-plus-ring shape of a builder
// wheel topology, adapted to place vertices on a circle rather than
// connect abstract graph nodes.
func RegularPolygonFan(numberOfRimNodes int, opts ...Option) (*mesh.PolygonalMesh, error) {
	if numberOfRimNodes < minFanRimNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", "RegularPolygonFan", numberOfRimNodes, minFanRimNodes, ErrTooFewRimNodes)
	}
	cfg := resolve(opts)

	nodes := make([]vec2.Vector2, numberOfRimNodes+1)
	nodes[0] = cfg.center
	for i := 0; i < numberOfRimNodes; i++ {
		angle := 2.0 * math.Pi * float64(i) / float64(numberOfRimNodes)
		nodes[i+1] = cfg.center.Add(vec2.Vector2{X: cfg.outerRadius * math.Cos(angle), Y: cfg.outerRadius * math.Sin(angle)})
	}

	polygons := make([]polygon.Polygon, numberOfRimNodes)
	for i := 0; i < numberOfRimNodes; i++ {
		next := (i + 1) % numberOfRimNodes
		p, err := polygon.New([]int{0, i + 1, next + 1})
		if err != nil {
			return nil, err
		}
		polygons[i] = p
	}

	var fixed []int
	if cfg.fixedBoundary {
		fixed = make([]int, numberOfRimNodes)
		for i := range fixed {
			fixed[i] = i + 1
		}
	}

	return mesh.New(nodes, polygons, fixed)
}
