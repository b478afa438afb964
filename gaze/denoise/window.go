package denoise

import (
	"github.com/gazelab/gazed/types/gazepoint"
)

// Window scans a fixed snapshot of a point sequence for runs of
// invalid samples and locates the valid samples bracketing each run.
// It reads only the original values it was built over, so corrected
// points never become brackets for a later run.
type Window struct {
	points []gazepoint.Point
	valid  gazepoint.ValidFunc
	max    int
}

// NewWindow snapshots the path. The predicate decides validity; max
// is the longest run the window will bracket for interpolation.
func NewWindow(path *gazepoint.Path, valid gazepoint.ValidFunc, max int) *Window {
	if valid == nil {
		valid = gazepoint.DefaultValid
	}
	return &Window{
		points: path.Points(),
		valid:  valid,
		max:    max,
	}
}

// PointsToCorrect returns the length of the maximal run of
// consecutive invalid points starting at index i. A valid point at i
// means an empty run. Pure lookahead; nothing before i is consulted.
func (w *Window) PointsToCorrect(i int) int {
	run := 0
	for j := i; j < len(w.points) && !w.valid(w.points[j]); j++ {
		run++
	}
	return run
}

// InterpPoints returns the interpolation anchors for a run of length
// run starting at i: the point immediately before the run and the
// point immediately after it. There is no bracket — ok is false —
// when the run touches the path start (i == 0), when it touches or
// overruns the path end, when the point just past the run is itself
// invalid (the stated run understates the gap), or when the run is
// longer than the configured maximum.
func (w *Window) InterpPoints(i, run int) (before, after gazepoint.Point, ok bool) {
	if i <= 0 || run <= 0 || run > w.max {
		return before, after, false
	}
	end := i + run
	if end >= len(w.points) {
		return before, after, false
	}
	if !w.valid(w.points[end]) || !w.valid(w.points[i-1]) {
		return before, after, false
	}
	return w.points[i-1].Copy(), w.points[end].Copy(), true
}

// Apply performs the per-index correction step against out, which
// must be a same-length working copy of the snapshot. A valid point
// at i is a no-op. Otherwise the whole run starting at i has every
// interpolatable attribute overwritten with a linear blend of the
// bracket values, weighted by each point's time offset between the
// brackets; times and durations stay as they are. An unbracketed run
// (boundary, or too long) is left alone. Returns the number of points
// corrected: the run length, or zero.
func (w *Window) Apply(out []gazepoint.Point, i int) int {
	if w.valid(w.points[i]) {
		return 0
	}
	run := w.PointsToCorrect(i)
	before, after, ok := w.InterpPoints(i, run)
	if !ok {
		return 0
	}
	span := after.Time - before.Time
	for j := i; j < i+run; j++ {
		frac := (w.points[j].Time - before.Time) / span
		vals := make(map[string]float64)
		for name, v0 := range before.InterpValues() {
			v1, found := after.Attr(name)
			if !found {
				continue
			}
			vals[name] = v0 + (v1-v0)*frac
		}
		// Keys are drawn from the shared schema's declared set,
		// so the merge cannot reject them.
		_ = out[j].MergeValues(vals)
	}
	return run
}
