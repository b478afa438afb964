// Package region provides screen-area membership shapes for
// region-of-interest queries against gaze paths.
package region

import (
	"math"

	"github.com/paulmach/orb"
)

// Rectangle is a closed axis-aligned screen rectangle.
type Rectangle struct {
	Bound orb.Bound
}

// NewRectangle builds a rectangle from two opposite corners, in any order.
func NewRectangle(x1, y1, x2, y2 float64) Rectangle {
	return Rectangle{Bound: orb.Bound{
		Min: orb.Point{math.Min(x1, x2), math.Min(y1, y2)},
		Max: orb.Point{math.Max(x1, x2), math.Max(y1, y2)},
	}}
}

// Contains reports membership, edges included.
func (r Rectangle) Contains(pt orb.Point) bool {
	return r.Bound.Contains(pt)
}

// Ellipse is a closed axis-aligned screen ellipse.
type Ellipse struct {
	Center orb.Point
	RX, RY float64
}

// Contains reports membership, boundary included.
func (e Ellipse) Contains(pt orb.Point) bool {
	if e.RX == 0 || e.RY == 0 {
		return false
	}
	dx := (pt[0] - e.Center[0]) / e.RX
	dy := (pt[1] - e.Center[1]) / e.RY
	return dx*dx+dy*dy <= 1
}
