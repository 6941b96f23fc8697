package quality

import (
	"math"

	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/vec2"
)

// meanRatioSummand computes one summand of Equation (2.6) of the GETMe book:
//
//	q(E) := (2/n) * sum_{k=0}^{n-1} det(S_k) / trace(S_k^T S_k)
//
// with S_k := D(T_k) W^-1, comparing the corner triangle at polygonNodeNumber
// against the corresponding corner of a regular numberOfPolygonNodes-gon. A
// negative result signals an invalid (negatively oriented or degenerate)
// corner triangle.
func meanRatioSummand(p polygon.Polygon, polygonNodeNumber int, nodes []vec2.Vector2, numberOfPolygonNodes int) float64 {
	predecessor := nodes[p.PredecessorNodeIndex(polygonNodeNumber)]
	center := nodes[p.NodeIndex(polygonNodeNumber)]
	successor := nodes[p.SuccessorNodeIndex(polygonNodeNumber)]

	// Reference triangle of a regular n-gon with centroid (0,0), radius 1:
	// predecessor = (cos(2pi/n), -sin(2pi/n)), center = (1,0),
	// successor = (cos(2pi/n), sin(2pi/n)). W := [successor-center,
	// predecessor-center] = [[a,a],[b,-b]].
	regularPolygonAngle := 2.0 * math.Pi / float64(numberOfPolygonNodes)
	a := math.Cos(regularPolygonAngle) - 1.0
	b := math.Sin(regularPolygonAngle)

	diffSuccessorCenter := successor.Sub(center)
	diffPredecessorCenter := predecessor.Sub(center)

	// D(T_k) := [successor-center, predecessor-center] = [[d11,d12],[d21,d22]].
	d11 := diffSuccessorCenter.X
	d12 := diffPredecessorCenter.X
	d21 := diffSuccessorCenter.Y
	d22 := diffPredecessorCenter.Y

	// det(S_k) = det(D(T_k)) / det(W).
	detS := (d12*d21 - d11*d22) / (2.0 * a * b)
	if detS <= 0.0 {
		return -1.0
	}

	trace := ((d11-d12)*(d11-d12)+(d21-d22)*(d21-d22))/(4.0*b*b) +
		((d11+d12)*(d11+d12)+(d21+d22)*(d21+d22))/(4.0*a*a)

	return detS / trace
}

// MeanRatio computes the mean-ratio quality number of p given the shared node
// slice nodes, per Equation (2.6) of the GETMe book. The result lies in
// (-infinity, 1], where 1.0 is enforced as an exact upper bound to absorb
// numerical noise, and any negative or degenerate corner yields exactly -1.0.
func MeanRatio(p polygon.Polygon, nodes []vec2.Vector2) float64 {
	numberOfNodes := p.NumberOfNodes()
	if numberOfNodes == 3 {
		// Special case triangle: every corner triangle is the same, so one
		// summand suffices and there is no division by three.
		summand := meanRatioSummand(p, 0, nodes, numberOfNodes)
		if summand < 0.0 {
			return -1.0
		}
		return math.Min(1.0, 2.0*summand)
	}

	sum := 0.0
	for nodeNumber := 0; nodeNumber < numberOfNodes; nodeNumber++ {
		summand := meanRatioSummand(p, nodeNumber, nodes, numberOfNodes)
		if summand < 0.0 {
			return -1.0
		}
		sum += summand
	}
	return math.Min(1.0, 2.0*sum/float64(numberOfNodes))
}
