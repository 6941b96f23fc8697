package quality

import "math"

// MeshQuality aggregates per-polygon mean-ratio quality numbers into
// mesh-wide statistics: the minimum quality number (qMin), the minimum over
// non-fixed polygons only (qMinStar, when tracked), the mean quality number
// (qMean), and a count of invalid (non-positive quality) polygons.
//
// qMin and qMean are both exactly -1.0 whenever at least one polygon is
// invalid, mirroring the "terminate on invalid" contract of the GETMe book's
// quality reporting.
type MeshQuality struct {
	qMin                    float64
	qMinStar                float64
	hasQMinStar             bool
	qMean                   float64
	numberOfInvalidElements int
}

// FromMeanRatios aggregates meanRatios into a MeshQuality that also reports
// the number of invalid polygons, without an early abort: every entry is
// visited regardless of invalid ones encountered along the way. qMinStar is
// not tracked (no fixed/non-fixed distinction is available).
func FromMeanRatios(meanRatios []float64) MeshQuality {
	return fromMeanRatios(meanRatios, nil)
}

// FromMeanRatiosWithFixed aggregates meanRatios the same way as
// FromMeanRatios, and additionally tracks qMinStar, the minimum quality
// number restricted to polygons for which isFixedPolygon(polygonIndex)
// returns false. qMinStar is reported only if no polygon is invalid and the
// resulting value is at most 1.0.
func FromMeanRatiosWithFixed(meanRatios []float64, isFixedPolygon func(polygonIndex int) bool) MeshQuality {
	return fromMeanRatios(meanRatios, isFixedPolygon)
}

func fromMeanRatios(meanRatios []float64, isFixedPolygon func(int) bool) MeshQuality {
	qMin := math.Inf(1)
	qMinStar := math.Inf(1)
	hasQMinStar := false
	sum := 0.0
	numberOfInvalid := 0

	for polygonIndex, meanRatioNumber := range meanRatios {
		if meanRatioNumber <= 0.0 {
			numberOfInvalid++
		}
		sum += meanRatioNumber
		if meanRatioNumber < qMin {
			qMin = meanRatioNumber
		}
		if isFixedPolygon != nil && !isFixedPolygon(polygonIndex) && meanRatioNumber < qMinStar {
			qMinStar = meanRatioNumber
		}
	}

	if numberOfInvalid > 0 {
		return MeshQuality{qMin: -1.0, qMean: -1.0, numberOfInvalidElements: numberOfInvalid}
	}
	if isFixedPolygon != nil && qMinStar <= 1.0 {
		hasQMinStar = true
	}
	return MeshQuality{
		qMin:        qMin,
		qMinStar:    qMinStar,
		hasQMinStar: hasQMinStar,
		qMean:       sum / float64(len(meanRatios)),
	}
}

// FromMeanRatiosFastAbort aggregates meanRatios into qMin and qMean only,
// without counting invalid polygons: as soon as a non-positive quality
// number is seen, -1.0/-1.0 is returned without visiting the remainder.
func FromMeanRatiosFastAbort(meanRatios []float64) MeshQuality {
	qMin := math.Inf(1)
	sum := 0.0
	for _, meanRatioNumber := range meanRatios {
		if meanRatioNumber <= 0.0 {
			return MeshQuality{qMin: -1.0, qMean: -1.0}
		}
		if meanRatioNumber < qMin {
			qMin = meanRatioNumber
		}
		sum += meanRatioNumber
	}
	return MeshQuality{qMin: qMin, qMean: sum / float64(len(meanRatios))}
}

// QMin returns the minimum mean-ratio quality number over all polygons.
func (q MeshQuality) QMin() float64 { return q.qMin }

// IsValid reports whether the aggregated mesh contains no invalid (mean-ratio
// quality number <= 0) polygon. Both FromMeanRatios* constructors encode an
// invalid mesh as qMin == -1.0, so that sentinel is checked directly.
func (q MeshQuality) IsValid() bool { return q.qMin != -1.0 }

// QMinStar returns the minimum mean-ratio quality number over non-fixed
// polygons, and whether such a value was tracked and is reportable.
func (q MeshQuality) QMinStar() (float64, bool) { return q.qMinStar, q.hasQMinStar }

// QMean returns the arithmetic mean of all polygons' mean-ratio quality
// numbers.
func (q MeshQuality) QMean() float64 { return q.qMean }

// NumberOfInvalidElements returns the number of polygons whose mean-ratio
// quality number is non-positive.
func (q MeshQuality) NumberOfInvalidElements() int { return q.numberOfInvalidElements }
