package gazepoint

import (
	"fmt"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/mat"
)

// Region is a membership capability over screen positions.
// Shapes (rectangles, ellipses, ...) are external collaborators;
// the path only asks them one question.
type Region interface {
	Contains(pt orb.Point) bool
}

// Path is an ordered, finite sequence of Points, ordered by
// acquisition time. Callers supply points pre-sorted; the path never
// re-sorts. Every transformation returns a new Path of independent
// point copies and leaves the receiver untouched, so an original and
// any derived path may be used side by side freely.
type Path struct {
	points []Point
}

// NewPath builds a path over copies of the given points.
// The backing store is always freshly allocated, never shared with
// the argument slice or with another path.
func NewPath(points []Point) *Path {
	cp := make([]Point, len(points))
	for i, p := range points {
		cp[i] = p.Copy()
	}
	return &Path{points: cp}
}

func (pp *Path) Len() int {
	return len(pp.points)
}

// At returns a copy of the i'th point.
func (pp *Path) At(i int) Point {
	return pp.points[i].Copy()
}

// Points returns an independent copy of the member points.
func (pp *Path) Points() []Point {
	cp := make([]Point, len(pp.points))
	for i, p := range pp.points {
		cp[i] = p.Copy()
	}
	return cp
}

// TotalDuration is the sum of member durations, in milliseconds.
func (pp *Path) TotalDuration() float64 {
	total := 0.0
	for _, p := range pp.points {
		total += p.Duration
	}
	return total
}

// Mean returns the duration-weighted centroid of the path.
// A sample that lasted three times longer pulls three times harder.
// The second return is false for an empty path (or one whose
// durations sum to zero), with a zero point standing in.
func (pp *Path) Mean() (orb.Point, bool) {
	var sx, sy, sd float64
	for _, p := range pp.points {
		sx += p.Duration * p.X
		sy += p.Duration * p.Y
		sd += p.Duration
	}
	if sd == 0 {
		return orb.Point{}, false
	}
	return orb.Point{sx / sd, sy / sd}, true
}

// RecenterBy returns a new path with every point translated by (dx, dy).
func (pp *Path) RecenterBy(dx, dy float64) *Path {
	out := pp.Points()
	for i := range out {
		out[i].X += dx
		out[i].Y += dy
	}
	return &Path{points: out}
}

// Clamp pairs a threshold with the value that replaces coordinates
// falling beyond it.
type Clamp struct {
	Threshold   float64
	Replacement float64
}

// Constraint configures ConstrainTo: one clamp per rectangle side.
// Min clamps replace coordinates below their threshold, max clamps
// replace coordinates above theirs. Axes are independent.
type Constraint struct {
	MinX, MinY Clamp
	MaxX, MaxY Clamp
}

// ConstrainTo returns a new path with out-of-bounds coordinates
// replaced per the constraint. Times and durations are untouched.
func (pp *Path) ConstrainTo(c Constraint) *Path {
	out := pp.Points()
	for i := range out {
		if out[i].X < c.MinX.Threshold {
			out[i].X = c.MinX.Replacement
		} else if out[i].X > c.MaxX.Threshold {
			out[i].X = c.MaxX.Replacement
		}
		if out[i].Y < c.MinY.Threshold {
			out[i].Y = c.MinY.Replacement
		} else if out[i].Y > c.MaxY.Threshold {
			out[i].Y = c.MaxY.Replacement
		}
	}
	return &Path{points: out}
}

// PointsWithin returns a new path of only the points the region contains.
func (pp *Path) PointsWithin(r Region) *Path {
	out := make([]Point, 0, len(pp.points))
	for _, p := range pp.points {
		if r.Contains(p.Point()) {
			out = append(out, p.Copy())
		}
	}
	return &Path{points: out}
}

// ValidPoints returns a new path of only the points passing the predicate.
func (pp *Path) ValidPoints(valid ValidFunc) *Path {
	out := make([]Point, 0, len(pp.points))
	for _, p := range pp.points {
		if valid(p) {
			out = append(out, p.Copy())
		}
	}
	return &Path{points: out}
}

// AsMatrix renders the path as a dense numeric matrix, one row per
// point, columns in the requested attribute order. Any name a point's
// Attr method resolves is addressable (x, y, time, duration, plus the
// schema's instrument attributes).
func (pp *Path) AsMatrix(attrs []string) (*mat.Dense, error) {
	if len(pp.points) == 0 || len(attrs) == 0 {
		return nil, fmt.Errorf("empty matrix: %d points, %d attributes", len(pp.points), len(attrs))
	}
	m := mat.NewDense(len(pp.points), len(attrs), nil)
	for i, p := range pp.points {
		for j, name := range attrs {
			v, ok := p.Attr(name)
			if !ok {
				return nil, fmt.Errorf("point %d has no attribute %q", i, name)
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

// TimeIndex returns the index of the last point whose time is <= t
// and whose successor's time is > t. When t falls at or past the last
// point's time (or before the first), it returns Len(), the
// past-the-end sentinel. Ascending time order is assumed.
func (pp *Path) TimeIndex(t float64) int {
	for i := 0; i < len(pp.points)-1; i++ {
		if pp.points[i].Time <= t && pp.points[i+1].Time > t {
			return i
		}
	}
	return len(pp.points)
}

// Extend appends copies of the other path's points to the receiver.
// This is the one mutating operation, for assembling a path from
// partial reads; analysis transforms never use it.
func (pp *Path) Extend(other *Path) {
	for _, p := range other.points {
		pp.points = append(pp.points, p.Copy())
	}
}
