package heap

import "math"

// PolygonQualityMinHeap is a min-heap over penalty-corrected polygon
// quality numbers, used by GETMe sequential to repeatedly pick the
// worst-quality improvable polygon to transform.
type PolygonQualityMinHeap struct {
	tree  []entry
	where []int // polygonIndex -> index into tree
}

// New builds a PolygonQualityMinHeap from meanRatios, one entry per polygon
// index, using isFixedPolygon to mark polygons that must never be selected.
func New(meanRatios []float64, isFixedPolygon func(polygonIndex int) bool) *PolygonQualityMinHeap {
	h := &PolygonQualityMinHeap{
		tree:  make([]entry, len(meanRatios)),
		where: make([]int, len(meanRatios)),
	}
	for polygonIndex, meanRatio := range meanRatios {
		h.tree[polygonIndex] = newEntry(polygonIndex, meanRatio, isFixedPolygon(polygonIndex), 0.0)
		h.where[polygonIndex] = polygonIndex
	}
	for polygonIndex := range meanRatios {
		h.reheapify(polygonIndex)
	}
	return h
}

func (h *PolygonQualityMinHeap) swap(firstEntryIndex, secondEntryIndex int) {
	h.tree[firstEntryIndex], h.tree[secondEntryIndex] = h.tree[secondEntryIndex], h.tree[firstEntryIndex]
	h.where[h.tree[firstEntryIndex].polygonIndex] = firstEntryIndex
	h.where[h.tree[secondEntryIndex].polygonIndex] = secondEntryIndex
}

// reheapify restores heap order around the entry belonging to polygonIndex
// after it has been modified in place: a bounded sift-up followed by a
// sift-down, since the entry's new key can only have grown or shrunk in one
// direction relative to its old neighbors.
func (h *PolygonQualityMinHeap) reheapify(polygonIndex int) {
	entryIndex := h.where[polygonIndex]

	for entryIndex > 0 {
		parentEntryIndex := (entryIndex - 1) / 2
		if less(h.tree[parentEntryIndex], h.tree[entryIndex]) {
			break
		}
		h.swap(parentEntryIndex, entryIndex)
		entryIndex = parentEntryIndex
	}

	n := len(h.tree)
	for {
		leftChildIndex := 2*entryIndex + 1
		rightChildIndex := leftChildIndex + 1
		hasLeft := leftChildIndex < n
		hasRight := rightChildIndex < n

		if hasLeft && hasRight && less(h.tree[rightChildIndex], h.tree[leftChildIndex]) {
			leftChildIndex, rightChildIndex = rightChildIndex, leftChildIndex
			hasLeft, hasRight = hasRight, hasLeft
		}

		switch {
		case hasLeft && less(h.tree[leftChildIndex], h.tree[entryIndex]):
			h.swap(leftChildIndex, entryIndex)
			entryIndex = leftChildIndex
		case hasRight && less(h.tree[rightChildIndex], h.tree[entryIndex]):
			h.swap(rightChildIndex, entryIndex)
			entryIndex = rightChildIndex
		default:
			return
		}
	}
}

// TopIndex returns the polygon index of the lowest penalty-corrected quality
// entry.
func (h *PolygonQualityMinHeap) TopIndex() int {
	return h.tree[0].polygonIndex
}

// UpdateQualityIfNotFixed refreshes polygonIndex's mean-ratio quality
// number, leaving its penalty sum untouched, and re-heapifies. Fixed
// polygons are silently left unchanged.
func (h *PolygonQualityMinHeap) UpdateQualityIfNotFixed(polygonIndex int, newMeanRatio float64) {
	entryIndex := h.where[polygonIndex]
	if h.tree[entryIndex].isFixedPolygon {
		return
	}
	h.tree[entryIndex].updateMeanRatio(newMeanRatio)
	h.reheapify(polygonIndex)
}

// UpdateQualityAndPenalty refreshes polygonIndex's mean-ratio quality number
// and adds penaltyChange to its penalty sum (clamped to stay non-negative),
// then re-heapifies.
func (h *PolygonQualityMinHeap) UpdateQualityAndPenalty(polygonIndex int, newMeanRatio, penaltyChange float64) {
	entryIndex := h.where[polygonIndex]
	h.tree[entryIndex].updateMeanRatioAndAddPenalty(newMeanRatio, penaltyChange)
	h.reheapify(polygonIndex)
}

// AddPenalty adds penaltyChange to polygonIndex's penalty sum (clamped to
// stay non-negative) without touching its mean-ratio quality number, then
// re-heapifies.
func (h *PolygonQualityMinHeap) AddPenalty(polygonIndex int, penaltyChange float64) {
	entryIndex := h.where[polygonIndex]
	h.tree[entryIndex].addPenalty(penaltyChange)
	h.reheapify(polygonIndex)
}

// IsAllFixed reports whether every polygon in the heap is fixed. Since fixed
// polygons always sort to the end, checking the root entry suffices.
func (h *PolygonQualityMinHeap) IsAllFixed() bool {
	return h.tree[0].isFixedPolygon
}

// QMinStar returns the lowest mean-ratio quality number among non-fixed
// polygons. It returns ErrAllFixedMesh if every polygon is fixed.
func (h *PolygonQualityMinHeap) QMinStar() (float64, error) {
	if h.IsAllFixed() {
		return 0, ErrAllFixedMesh
	}
	qMinStar := math.Inf(1)
	for _, e := range h.tree {
		if !e.isFixedPolygon && e.meanRatio < qMinStar {
			qMinStar = e.meanRatio
		}
	}
	return qMinStar, nil
}

// ContainsInvalid reports whether any polygon's mean-ratio quality number is
// negative.
func (h *PolygonQualityMinHeap) ContainsInvalid() bool {
	for _, e := range h.tree {
		if e.meanRatio < 0.0 {
			return true
		}
	}
	return false
}

// Len returns the number of polygon entries in the heap.
func (h *PolygonQualityMinHeap) Len() int { return len(h.tree) }

// Snapshot returns a copy of every polygon's current heap record, ordered by
// polygon index. It is a diagnostics/test accessor and takes no part in the
// smoothing hot path.
func (h *PolygonQualityMinHeap) Snapshot() []Entry {
	entries := make([]Entry, len(h.where))
	for polygonIndex, entryIndex := range h.where {
		e := h.tree[entryIndex]
		entries[polygonIndex] = Entry{
			PolygonIndex:     e.polygonIndex,
			IsFixedPolygon:   e.isFixedPolygon,
			MeanRatio:        e.meanRatio,
			PenaltySum:       e.penaltySum,
			PenaltyCorrected: e.penaltyCorrected,
		}
	}
	return entries
}

// IsConsistent reports whether the heap invariant holds and the reverse
// index map agrees with the tree. It is intended for use in tests, not in
// the hot path.
func (h *PolygonQualityMinHeap) IsConsistent() bool {
	if len(h.tree) != len(h.where) {
		return false
	}
	for polygonIndex, entryIndex := range h.where {
		if h.tree[entryIndex].polygonIndex != polygonIndex {
			return false
		}
	}
	seen := make([]bool, len(h.where))
	for _, entryIndex := range h.where {
		if entryIndex < 0 || entryIndex >= len(seen) || seen[entryIndex] {
			return false
		}
		seen[entryIndex] = true
	}

	n := len(h.tree)
	for entryIndex := 0; entryIndex < n; entryIndex++ {
		leftChildIndex := 2*entryIndex + 1
		if leftChildIndex < n && less(h.tree[leftChildIndex], h.tree[entryIndex]) {
			return false
		}
		rightChildIndex := leftChildIndex + 1
		if rightChildIndex < n && less(h.tree[rightChildIndex], h.tree[entryIndex]) {
			return false
		}
	}
	return true
}
