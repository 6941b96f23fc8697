package distortion

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/vec2"
)

// RandomVector samples a vector whose direction is uniform over [0,2π) and
// whose length is uniform over [0,maxLength], via polar sampling. Panics if
// rng is nil or maxLength is negative, matching this module's convention
// that a caller-supplied option/argument that can never be satisfied is a
// programmer error, not a runtime one.
func RandomVector(rng *rand.Rand, maxLength float64) vec2.Vector2 {
	if rng == nil {
		panic("distortion: RandomVector(nil rng)")
	}
	if maxLength < 0.0 {
		panic("distortion: RandomVector(maxLength<0)")
	}

	angle := rng.Float64() * 2.0 * math.Pi
	length := rng.Float64() * maxLength
	return vec2.Vector2{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

// DistortNodesLocally adds an independent RandomVector(rng, maxRadius)
// displacement to every non-fixed node of m, committing all displacements
// through a single SetNodes call. Fixed nodes are left untouched, since
// they anchor the mesh's boundary and are never meant to move.
func DistortNodesLocally(m *mesh.PolygonalMesh, rng *rand.Rand, maxRadius float64) error {
	nodes := append([]vec2.Vector2(nil), m.Nodes()...)
	for _, nodeIndex := range m.NonFixedNodeIndices() {
		nodes[nodeIndex] = nodes[nodeIndex].Add(RandomVector(rng, maxRadius))
	}
	return m.SetNodes(nodes)
}
