package heap

// Entry is a read-only view of one polygon's heap record, as returned by
// Snapshot.
type Entry struct {
	PolygonIndex     int
	IsFixedPolygon   bool
	MeanRatio        float64
	PenaltySum       float64
	PenaltyCorrected float64
}

// entry is one polygon's heap record. Its zero-penalty quality number
// (meanRatio) and the penalty-corrected number actually used for ordering
// (penaltyCorrected) are tracked separately so that a penalty can be added
// or a quality refreshed without losing the other.
type entry struct {
	isFixedPolygon   bool
	penaltyCorrected float64
	meanRatio        float64
	penaltySum       float64
	polygonIndex     int
}

func newEntry(polygonIndex int, initialMeanRatio float64, isFixedPolygon bool, initialPenaltySum float64) entry {
	penaltySum := max(0.0, initialPenaltySum)
	return entry{
		isFixedPolygon:   isFixedPolygon,
		penaltyCorrected: initialMeanRatio + penaltySum,
		meanRatio:        initialMeanRatio,
		penaltySum:       penaltySum,
		polygonIndex:     polygonIndex,
	}
}

// less orders entries lexicographically by (isFixedPolygon, penaltyCorrected,
// meanRatio, penaltySum, polygonIndex), so that non-fixed polygons (false)
// always sort before fixed ones (true) regardless of quality.
func less(a, b entry) bool {
	if a.isFixedPolygon != b.isFixedPolygon {
		return !a.isFixedPolygon
	}
	if a.penaltyCorrected != b.penaltyCorrected {
		return a.penaltyCorrected < b.penaltyCorrected
	}
	if a.meanRatio != b.meanRatio {
		return a.meanRatio < b.meanRatio
	}
	if a.penaltySum != b.penaltySum {
		return a.penaltySum < b.penaltySum
	}
	return a.polygonIndex < b.polygonIndex
}

func (e *entry) updateMeanRatio(newMeanRatio float64) {
	e.meanRatio = newMeanRatio
	e.penaltyCorrected = newMeanRatio + e.penaltySum
}

func (e *entry) updateMeanRatioAndAddPenalty(newMeanRatio, penaltyChange float64) {
	e.meanRatio = newMeanRatio
	e.penaltySum = max(0.0, e.penaltySum+penaltyChange)
	e.penaltyCorrected = e.meanRatio + e.penaltySum
}

func (e *entry) addPenalty(penaltyChange float64) {
	e.penaltySum = max(0.0, e.penaltySum+penaltyChange)
	e.penaltyCorrected = e.meanRatio + e.penaltySum
}
