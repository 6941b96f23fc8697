package vec2

import "math"

// Vector2 represents a 2-D point or vector with double precision
// coordinates. It is an immutable value type: every operation returns a new
// Vector2 rather than mutating the receiver.
type Vector2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by factor.
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: factor * v.X, Y: factor * v.Y}
}

// Div returns v with both components divided by divisor.
func (v Vector2) Div(divisor float64) Vector2 {
	return Vector2{X: v.X / divisor, Y: v.Y / divisor}
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Equal reports whether v and other are exactly equal, component-wise.
func (v Vector2) Equal(other Vector2) bool {
	return v.X == other.X && v.Y == other.Y
}

// AreEqual reports whether first and second are equal up to tolerance,
// measured by Euclidean distance.
func AreEqual(first, second Vector2, tolerance float64) bool {
	return first.Sub(second).LengthSquared() <= tolerance*tolerance
}

// SliceAreEqual reports whether first and second have the same length and
// entries at matching indices are AreEqual up to tolerance.
func SliceAreEqual(first, second []Vector2, tolerance float64) bool {
	if len(first) != len(second) {
		return false
	}
	for i := range first {
		if !AreEqual(first[i], second[i], tolerance) {
			return false
		}
	}
	return true
}

// Centroid returns the arithmetic mean of points. If points is empty, both
// components are NaN (0/0); callers in this module always supply non-empty
// polygons.
func Centroid(points []Vector2) Vector2 {
	sum := Vector2{}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(points)))
}
