package transform

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/getme2d/polygon"
	"github.com/katalvlaran/getme2d/vec2"
)

// Transformation is a generalized planar polygon transformation
// parameterized by lambda and theta, per Definition 5.4 of the GETMe book.
// It is an immutable value type; its derived coefficients c1, c2, c3 are
// cached at construction.
type Transformation struct {
	lambda float64
	theta  float64
	c1     float64
	c2     float64
	c3     float64
}

// New constructs a Transformation for explicit lambda in (0,1) and theta in
// (0, pi/2).
func New(lambda, theta float64) (Transformation, error) {
	if lambda <= 0.0 || lambda >= 1.0 {
		return Transformation{}, fmt.Errorf("transform: lambda=%g: %w", lambda, ErrInvalidLambda)
	}
	if theta <= 0.0 || theta >= math.Pi/2.0 {
		return Transformation{}, fmt.Errorf("transform: theta=%g: %w", theta, ErrInvalidTheta)
	}
	c1 := (1.0 - lambda) * math.Tan(theta)
	c2 := lambda*(1.0-lambda) - c1*c1
	c3 := 1.0 - 2.0*c2
	return Transformation{lambda: lambda, theta: theta, c1: c1, c2: c2, c3: c3}, nil
}

// ForPolygonSize constructs the default transformation for polygons with
// numberOfNodes nodes: lambda=1/2, theta=pi/numberOfNodes, the midpoint of
// the regularizing interval per Lemma 5.7 of the GETMe book.
//
// For numberOfNodes < 3 (never exercised by any smoothing algorithm, which
// all require n>=3) a neutral fallback theta=pi/4 is used instead of
// dividing by a degenerate n. This tolerant behavior is intentional and must
// not be "fixed" into an error.
func ForPolygonSize(numberOfNodes int) (Transformation, error) {
	theta := math.Pi / 4.0
	if numberOfNodes >= 3 {
		theta = math.Pi / float64(numberOfNodes)
	}
	return New(0.5, theta)
}

// Lambda returns the transformation's lambda parameter.
func (t Transformation) Lambda() float64 { return t.lambda }

// Theta returns the transformation's theta parameter.
func (t Transformation) Theta() float64 { return t.theta }

// Transform applies the transformation to the given polygon, reading node
// positions from nodes by index, and returns a fresh slice of n positions
// (one per polygon corner, in polygon-local order). It never writes back
// into nodes.
func (t Transformation) Transform(p polygon.Polygon, nodes []vec2.Vector2) []vec2.Vector2 {
	n := p.NumberOfNodes()
	transformed := make([]vec2.Vector2, n)
	for k := 0; k < n; k++ {
		predecessor := nodes[p.PredecessorNodeIndex(k)]
		current := nodes[p.NodeIndex(k)]
		successor := nodes[p.SuccessorNodeIndex(k)]

		// New position according to Equation 5.26 of the GETMe book:
		// p'_k = c1*(p+.y-p-.y, p-.x-p+.x) + c2*(p-+p+) + c3*p.
		rot := vec2.Vector2{X: successor.Y - predecessor.Y, Y: predecessor.X - successor.X}
		transformed[k] = rot.Scale(t.c1).
			Add(predecessor.Add(successor).Scale(t.c2)).
			Add(current.Scale(t.c3))
	}
	return transformed
}

// Eigenvalues computes the eigenvalue spectrum of the circulant polygon
// operator for polygons with numberOfNodes nodes, per Lemma 5.2 of the
// GETMe book. eigenvalues[0] is always exactly 1.
func (t Transformation) Eigenvalues(numberOfNodes int) []float64 {
	w := complex(t.lambda, (1.0-t.lambda)*math.Tan(t.theta))
	wConj := cmplx.Conj(w)
	r := cmplx.Exp(complex(0, 2.0*math.Pi/float64(numberOfNodes)))

	eigenvalues := make([]float64, numberOfNodes)
	rk := complex(1, 0)
	for k := 0; k < numberOfNodes; k++ {
		magnitude := cmplx.Abs(complex(1, 0) - wConj + rk*wConj)
		eigenvalues[k] = magnitude * magnitude
		rk *= r
	}
	return eigenvalues
}

// IsRegularizing reports whether iteratively applying this transformation to
// polygons with numberOfNodes nodes converges to counterclockwise regular
// polygons, i.e. whether mu_k <= mu_1 for every k (Theorem 5.1 of the GETMe
// book).
func (t Transformation) IsRegularizing(numberOfNodes int) bool {
	eigenvalues := t.Eigenvalues(numberOfNodes)
	dominant := eigenvalues[1]
	for _, mu := range eigenvalues {
		if mu > dominant {
			return false
		}
	}
	return true
}
