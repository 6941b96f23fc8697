package meshgen

import (
	"fmt"

	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/vec2"
)

const minGridNodesPerSide = 2

// RectangularGrid builds a rows-by-cols rectangular grid of quadrilaterals,
// nodes laid out row-major (index r*cols+c) at (c,r)*cellSize offset from
// the configured center, with the outer ring of nodes (row 0, row
// rows-1, column 0, column cols-1) marked fixed by default. Mirrors the
// row-major ID scheme and 4-neighborhood connectivity of a builder grid
// topology, adapted from an abstract graph grid to a quad mesh grid.
func RectangularGrid(rows, cols int, opts ...Option) (*mesh.PolygonalMesh, error) {
	if rows < minGridNodesPerSide || cols < minGridNodesPerSide {
		return nil, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", "RectangularGrid", rows, cols, minGridNodesPerSide, ErrTooFewGridCells)
	}
	cfg := resolve(opts)

	nodes := make([]vec2.Vector2, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			nodes[r*cols+c] = cfg.center.Add(vec2.Vector2{
				X: float64(c) * cfg.cellSize,
				Y: float64(r) * cfg.cellSize,
			})
		}
	}

	var polygons []polygon.Polygon
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			bottomLeft := r*cols + c
			bottomRight := r*cols + c + 1
			topRight := (r+1)*cols + c + 1
			topLeft := (r+1)*cols + c
			p, err := polygon.New([]int{bottomLeft, bottomRight, topRight, topLeft})
			if err != nil {
				return nil, err
			}
			polygons = append(polygons, p)
		}
	}

	var fixed []int
	if cfg.fixedBoundary {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
					fixed = append(fixed, r*cols+c)
				}
			}
		}
	}

	return mesh.New(nodes, polygons, fixed)
}
