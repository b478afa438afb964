// Package denoise corrects short dropout runs in gaze point paths.
//
// Eye trackers lose the eye for a few samples at a time — blinks,
// glints, head motion — and report junk coordinates until they
// reacquire. Short runs of junk between good samples are noise worth
// repairing by linear interpolation; long runs are genuine signal
// loss and must stay visible to downstream analysis. The filter never
// fails on an uncorrectable run: it leaves it untouched.
package denoise

import (
	"log/slog"

	"github.com/gazelab/gazed/params"
	"github.com/gazelab/gazed/types/gazepoint"
)

// Filter denoises point paths.
type Filter struct {
	// MaxNoiseSamples is the longest invalid run eligible for
	// correction. Zero corrects nothing.
	MaxNoiseSamples int

	// Valid decides sample validity. Nil means gazepoint.DefaultValid.
	Valid gazepoint.ValidFunc
}

// NewFilter returns a filter with the given run limit and predicate.
// A nil predicate selects gazepoint.DefaultValid.
func NewFilter(maxNoiseSamples int, valid gazepoint.ValidFunc) *Filter {
	return &Filter{
		MaxNoiseSamples: maxNoiseSamples,
		Valid:           valid,
	}
}

// NewDefaultFilter returns a filter configured from params defaults.
func NewDefaultFilter() *Filter {
	return NewFilter(params.DefaultDenoiseConfig.MaxNoiseSamples, nil)
}

// Process returns a corrected copy of the path: identical length and
// ordering, valid points untouched, bracketed invalid runs no longer
// than MaxNoiseSamples interpolated. One pass, left to right, always
// against the original values — a corrected run never anchors the
// next one. Durations never change, so the output's TotalDuration
// equals the input's.
func (f *Filter) Process(path *gazepoint.Path) *gazepoint.Path {
	w := NewWindow(path, f.Valid, f.MaxNoiseSamples)
	out := path.Points()
	corrected := 0
	for i := 0; i < len(out); {
		if n := w.Apply(out, i); n > 0 {
			corrected += n
			i += n
			continue
		}
		i++
	}
	slog.Debug("Denoised path", "points", len(out), "corrected", corrected)
	return gazepoint.NewPath(out)
}
