// Package fixstats summarizes fixation point paths: how much of a
// recording was usable gaze, and where on the screen it landed.
package fixstats

import (
	"github.com/gazelab/gazed/common"
	"github.com/gazelab/gazed/gaze/region"
	"github.com/gazelab/gazed/params"
	"github.com/gazelab/gazed/types/gazepoint"
	"github.com/montanaflynn/stats"
)

// Stats is one row of a fixation report.
type Stats struct {
	Presented   string
	Area        string
	TotalPoints int
	StartMS     float64
	EndMS       float64
	ValidStrict int
	ValidLax    int
	PointsIn    int
	PointsOut   int

	DurationMeanMS   float64
	DurationMedianMS float64
	DurationMinMS    float64
	DurationMaxMS    float64
}

// NamedRegion pairs a region of interest with a report label.
type NamedRegion struct {
	Name   string
	Region gazepoint.Region
}

// Analyzer computes fixation statistics over a path against a screen
// geometry. It only queries the path; it never modifies it.
type Analyzer struct {
	Path   *gazepoint.Path
	Screen params.ScreenConfig
}

func NewAnalyzer(path *gazepoint.Path, screen params.ScreenConfig) *Analyzer {
	return &Analyzer{Path: path, Screen: screen}
}

// validWithin builds the screen-membership rule: inside the screen
// widened by slop on every side, and not parked at the origin, which
// is where trackers report a lost eye.
func validWithin(width, height, slop float64) gazepoint.ValidFunc {
	xSlop, ySlop := width*slop, height*slop
	rect := region.NewRectangle(-xSlop, -ySlop, width+xSlop, height+ySlop)
	return func(p gazepoint.Point) bool {
		if p.X == 0 && p.Y == 0 {
			return false
		}
		return rect.Contains(p.Point())
	}
}

// StrictValid admits only points on the screen proper.
func (a *Analyzer) StrictValid(p gazepoint.Point) bool {
	return validWithin(a.Screen.Width, a.Screen.Height, a.Screen.StrictSlop)(p)
}

// LaxValid tolerates gaze hovering just off-screen.
func (a *Analyzer) LaxValid(p gazepoint.Point) bool {
	return validWithin(a.Screen.Width, a.Screen.Height, a.Screen.LaxSlop)(p)
}

// GeneralStats reports on the whole path against the whole screen.
func (a *Analyzer) GeneralStats() Stats {
	s := Stats{
		Presented:   "screen",
		Area:        "all",
		TotalPoints: a.Path.Len(),
	}
	if a.Path.Len() > 0 {
		s.StartMS = a.Path.At(0).Time
		s.EndMS = a.Path.At(a.Path.Len() - 1).Time
	}
	s.ValidStrict = a.Path.ValidPoints(a.StrictValid).Len()
	s.ValidLax = a.Path.ValidPoints(a.LaxValid).Len()
	s.PointsIn = s.ValidStrict
	s.PointsOut = s.TotalPoints - s.ValidStrict
	a.installDurationStats(&s, a.Path)
	return s
}

// RegionStats reports membership counts per region of interest.
func (a *Analyzer) RegionStats(presented string, regions []NamedRegion) []Stats {
	out := make([]Stats, 0, len(regions))
	for _, nr := range regions {
		s := Stats{
			Presented:   presented,
			Area:        nr.Name,
			TotalPoints: a.Path.Len(),
		}
		if a.Path.Len() > 0 {
			s.StartMS = a.Path.At(0).Time
			s.EndMS = a.Path.At(a.Path.Len() - 1).Time
		}
		s.ValidStrict = a.Path.ValidPoints(a.StrictValid).Len()
		s.ValidLax = a.Path.ValidPoints(a.LaxValid).Len()
		within := a.Path.PointsWithin(nr.Region)
		s.PointsIn = within.Len()
		s.PointsOut = s.TotalPoints - s.PointsIn
		a.installDurationStats(&s, within)
		out = append(out, s)
	}
	return out
}

func (a *Analyzer) installDurationStats(s *Stats, path *gazepoint.Path) {
	if path.Len() == 0 {
		return
	}
	durations := make([]float64, 0, path.Len())
	for _, p := range path.Points() {
		durations = append(durations, p.Duration)
	}

	statsMustFloat := func(fn func() (float64, error), def float64) float64 {
		out, err := fn()
		if err != nil {
			return def
		}
		return out
	}

	data := stats.Float64Data(durations)
	s.DurationMeanMS = common.DecimalToFixed(statsMustFloat(data.Mean, 0), 2)
	s.DurationMedianMS = common.DecimalToFixed(statsMustFloat(data.Median, 0), 2)
	s.DurationMinMS = common.DecimalToFixed(statsMustFloat(data.Min, 0), 2)
	s.DurationMaxMS = common.DecimalToFixed(statsMustFloat(data.Max, 0), 2)
}
