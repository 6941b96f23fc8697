package mesh

import (
	"fmt"

	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/vec2"
)

// PolygonalMesh represents a planar polygonal mesh with fixed topology
// (which nodes belong to which polygons, in which order) but adjustable
// node positions. Some nodes may be marked fixed, meaning no smoothing
// algorithm is allowed to move them.
//
// PolygonalMesh derives its adjacency structures once, at construction, and
// is not safe for concurrent mutation: ownership of a mesh transfers to
// whichever smoothing algorithm is actively running, so no internal locking
// is carried (unlike graph-shaped containers elsewhere in the ecosystem,
// which do guard concurrent readers/writers with a mutex).
type PolygonalMesh struct {
	nodes           []vec2.Vector2
	polygons        []polygon.Polygon
	fixedNodeIndices map[int]struct{}

	nonFixedNodeIndices     []int
	isPolygonAllFixed       []bool
	edgeConnectedNodeIndices []map[int]struct{}
	attachedPolygonIndices  []map[int]struct{}
	neighborPolygonIndices  []map[int]struct{}
	maxPolygonSize          int
}

// New constructs a PolygonalMesh from nodes, polygons, and the set of fixed
// node indices. Every node index referenced by any polygon, and every fixed
// node index, must lie within [0, len(nodes)).
func New(nodes []vec2.Vector2, polygons []polygon.Polygon, fixedNodeIndices []int) (*PolygonalMesh, error) {
	if len(fixedNodeIndices) > len(nodes) {
		return nil, fmt.Errorf("mesh: %d fixed nodes for %d nodes: %w", len(fixedNodeIndices), len(nodes), ErrTooManyFixedNodes)
	}

	fixedSet := make(map[int]struct{}, len(fixedNodeIndices))
	for _, idx := range fixedNodeIndices {
		if idx < 0 || idx >= len(nodes) {
			return nil, fmt.Errorf("mesh: fixed node index %d: %w", idx, ErrFixedNodeIndexOutOfRange)
		}
		fixedSet[idx] = struct{}{}
	}

	storedNodes := make([]vec2.Vector2, len(nodes))
	copy(storedNodes, nodes)
	storedPolygons := make([]polygon.Polygon, len(polygons))
	copy(storedPolygons, polygons)

	m := &PolygonalMesh{
		nodes:                    storedNodes,
		polygons:                 storedPolygons,
		fixedNodeIndices:         fixedSet,
		isPolygonAllFixed:        make([]bool, len(storedPolygons)),
		edgeConnectedNodeIndices: make([]map[int]struct{}, len(storedNodes)),
		attachedPolygonIndices:   make([]map[int]struct{}, len(storedNodes)),
		neighborPolygonIndices:   make([]map[int]struct{}, len(storedPolygons)),
	}
	for i := range m.edgeConnectedNodeIndices {
		m.edgeConnectedNodeIndices[i] = make(map[int]struct{})
		m.attachedPolygonIndices[i] = make(map[int]struct{})
	}
	for i := range m.neighborPolygonIndices {
		m.neighborPolygonIndices[i] = make(map[int]struct{})
	}

	m.setNonFixedNodeIndices()
	if err := m.setFixedPolygonAndNodeTopologyData(); err != nil {
		return nil, err
	}
	m.setNeighborPolygonIndices()

	return m, nil
}

func (m *PolygonalMesh) setNonFixedNodeIndices() {
	m.nonFixedNodeIndices = make([]int, 0, len(m.nodes)-len(m.fixedNodeIndices))
	for nodeIndex := 0; nodeIndex < len(m.nodes); nodeIndex++ {
		if _, fixed := m.fixedNodeIndices[nodeIndex]; !fixed {
			m.nonFixedNodeIndices = append(m.nonFixedNodeIndices, nodeIndex)
		}
	}
}

func (m *PolygonalMesh) setFixedPolygonAndNodeTopologyData() error {
	for polygonIndex, p := range m.polygons {
		allFixed := true
		for _, nodeIndex := range p.NodeIndices() {
			if _, fixed := m.fixedNodeIndices[nodeIndex]; !fixed {
				allFixed = false
				break
			}
		}
		m.isPolygonAllFixed[polygonIndex] = allFixed

		numberOfPolygonNodes := p.NumberOfNodes()
		if numberOfPolygonNodes > m.maxPolygonSize {
			m.maxPolygonSize = numberOfPolygonNodes
		}

		for nodeNumber := 0; nodeNumber < numberOfPolygonNodes; nodeNumber++ {
			predecessorNodeIndex := p.PredecessorNodeIndex(nodeNumber)
			currentNodeIndex := p.NodeIndex(nodeNumber)
			successorNodeIndex := p.SuccessorNodeIndex(nodeNumber)

			if currentNodeIndex < 0 || currentNodeIndex >= len(m.nodes) {
				return fmt.Errorf("mesh: polygon %d node %d: %w", polygonIndex, currentNodeIndex, ErrNodeIndexOutOfRange)
			}

			m.edgeConnectedNodeIndices[currentNodeIndex][predecessorNodeIndex] = struct{}{}
			m.edgeConnectedNodeIndices[currentNodeIndex][successorNodeIndex] = struct{}{}
			m.attachedPolygonIndices[currentNodeIndex][polygonIndex] = struct{}{}
		}
	}
	return nil
}

func (m *PolygonalMesh) setNeighborPolygonIndices() {
	for polygonIndex, p := range m.polygons {
		for _, nodeIndex := range p.NodeIndices() {
			for attached := range m.attachedPolygonIndices[nodeIndex] {
				m.neighborPolygonIndices[polygonIndex][attached] = struct{}{}
			}
		}
		delete(m.neighborPolygonIndices[polygonIndex], polygonIndex)
	}
}

// Nodes returns the mesh's current node positions. The returned slice must
// not be mutated by the caller; use SetNodes to replace positions.
func (m *PolygonalMesh) Nodes() []vec2.Vector2 { return m.nodes }

// SetNodes replaces the mesh's node positions. newNodes must have the same
// length as the mesh's existing node slice; topology is unaffected.
func (m *PolygonalMesh) SetNodes(newNodes []vec2.Vector2) error {
	if len(newNodes) != len(m.nodes) {
		return fmt.Errorf("mesh: got %d nodes, want %d: %w", len(newNodes), len(m.nodes), ErrNodeCountMismatch)
	}
	copy(m.nodes, newNodes)
	return nil
}

// NumberOfNodes returns the number of nodes in the mesh.
func (m *PolygonalMesh) NumberOfNodes() int { return len(m.nodes) }

// Polygons returns the mesh's polygons in construction order.
func (m *PolygonalMesh) Polygons() []polygon.Polygon { return m.polygons }

// NumberOfPolygons returns the number of polygons in the mesh.
func (m *PolygonalMesh) NumberOfPolygons() int { return len(m.polygons) }

// FixedNodeIndices returns the set of node indices marked fixed. The
// returned map must not be mutated by the caller.
func (m *PolygonalMesh) FixedNodeIndices() map[int]struct{} { return m.fixedNodeIndices }

// IsNodeFixed reports whether nodeIndex is marked fixed.
func (m *PolygonalMesh) IsNodeFixed(nodeIndex int) bool {
	_, fixed := m.fixedNodeIndices[nodeIndex]
	return fixed
}

// NonFixedNodeIndices returns the node indices that are not fixed, in
// ascending order.
func (m *PolygonalMesh) NonFixedNodeIndices() []int { return m.nonFixedNodeIndices }

// IsFixedPolygon reports whether every node of the polygon at polygonIndex
// is fixed.
func (m *PolygonalMesh) IsFixedPolygon(polygonIndex int) bool {
	return m.isPolygonAllFixed[polygonIndex]
}

// EdgeConnectedNodeIndices returns the set of node indices connected to
// nodeIndex by a polygon edge. The returned map must not be mutated by the
// caller.
func (m *PolygonalMesh) EdgeConnectedNodeIndices(nodeIndex int) map[int]struct{} {
	return m.edgeConnectedNodeIndices[nodeIndex]
}

// AttachedPolygonIndices returns the set of polygon indices that reference
// nodeIndex. The returned map must not be mutated by the caller.
func (m *PolygonalMesh) AttachedPolygonIndices(nodeIndex int) map[int]struct{} {
	return m.attachedPolygonIndices[nodeIndex]
}

// NeighborPolygonIndices returns the set of polygon indices sharing a node
// with the polygon at polygonIndex, excluding polygonIndex itself. The
// returned map must not be mutated by the caller.
func (m *PolygonalMesh) NeighborPolygonIndices(polygonIndex int) map[int]struct{} {
	return m.neighborPolygonIndices[polygonIndex]
}

// MaximalPolygonSize returns the largest number of nodes among the mesh's
// polygons.
func (m *PolygonalMesh) MaximalPolygonSize() int { return m.maxPolygonSize }
