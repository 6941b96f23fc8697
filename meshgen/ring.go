package meshgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/vec2"
)

const minRingSides = 3

// PolygonRing builds an annulus of quadrilaterals between an outer regular
// numberOfSides-gon (fixed, radius outerRadius) and an inner regular
// numberOfSides-gon (free, radius innerRadius): outer node i is index i,
// inner node i is index numberOfSides+i. Mirrors the fixed-ring-plus-free-
// interior shape a Platonic-solid-with-center builder topology produces,
// adapted to a planar annulus instead of a 3D solid.
func PolygonRing(numberOfSides int, opts ...Option) (*mesh.PolygonalMesh, error) {
	if numberOfSides < minRingSides {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", "PolygonRing", numberOfSides, minRingSides, ErrTooFewRimNodes)
	}
	cfg := resolve(opts)

	nodes := make([]vec2.Vector2, 2*numberOfSides)
	for i := 0; i < numberOfSides; i++ {
		angle := 2.0 * math.Pi * float64(i) / float64(numberOfSides)
		direction := vec2.Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
		nodes[i] = cfg.center.Add(direction.Scale(cfg.outerRadius))
		nodes[numberOfSides+i] = cfg.center.Add(direction.Scale(cfg.innerRadius))
	}

	polygons := make([]polygon.Polygon, numberOfSides)
	for i := 0; i < numberOfSides; i++ {
		next := (i + 1) % numberOfSides
		p, err := polygon.New([]int{i, next, numberOfSides + next, numberOfSides + i})
		if err != nil {
			return nil, err
		}
		polygons[i] = p
	}

	var fixed []int
	if cfg.fixedBoundary {
		fixed = make([]int, numberOfSides)
		for i := range fixed {
			fixed[i] = i
		}
	}

	return mesh.New(nodes, polygons, fixed)
}
