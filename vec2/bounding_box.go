package vec2

import (
	"errors"
	"math"
)

// ErrEmptyPointSet indicates that a bounding box was requested for an empty
// point set.
var ErrEmptyPointSet = errors.New("vec2: cannot compute bounding box of an empty point set")

// ErrInvalidBoundingBox indicates that the supplied min/max coordinates do
// not describe a valid axis aligned box (min > max along some axis).
var ErrInvalidBoundingBox = errors.New("vec2: bounding box requires XMin <= XMax and YMin <= YMax")

// BoundingBox is an axis aligned bounding box.
type BoundingBox struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// NewBoundingBox validates and constructs a BoundingBox from explicit bounds.
func NewBoundingBox(xMin, xMax, yMin, yMax float64) (BoundingBox, error) {
	if xMin > xMax || yMin > yMax {
		return BoundingBox{}, ErrInvalidBoundingBox
	}
	return BoundingBox{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}, nil
}

// XDimension returns the width of the box.
func (b BoundingBox) XDimension() float64 { return b.XMax - b.XMin }

// YDimension returns the height of the box.
func (b BoundingBox) YDimension() float64 { return b.YMax - b.YMin }

// GetBoundingBox computes the axis aligned bounding box enclosing points.
func GetBoundingBox(points []Vector2) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, ErrEmptyPointSet
	}
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	return BoundingBox{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}, nil
}
