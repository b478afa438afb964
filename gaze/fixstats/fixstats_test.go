package fixstats

import (
	"testing"

	"github.com/gazelab/gazed/gaze/region"
	"github.com/gazelab/gazed/params"
	"github.com/gazelab/gazed/types/gazepoint"
)

func testPath() *gazepoint.Path {
	// 800x600 screen: two on-screen points, one lost eye at the
	// origin, one hovering just off-screen (within 10% slop), one far
	// off-screen.
	coords := [][2]float64{
		{400, 300},
		{100, 100},
		{0, 0},
		{-50, 300},
		{2000, 300},
	}
	pts := make([]gazepoint.Point, len(coords))
	for i, c := range coords {
		p := gazepoint.New(gazepoint.Base)
		p.X, p.Y = c[0], c[1]
		p.Time = float64(i) * 100
		p.Duration = 100
		pts[i] = p
	}
	return gazepoint.NewPath(pts)
}

func TestGeneralStats(t *testing.T) {
	a := NewAnalyzer(testPath(), params.DefaultScreenConfig)
	s := a.GeneralStats()

	if s.Presented != "screen" || s.Area != "all" {
		t.Errorf("labels wrong: %q/%q", s.Presented, s.Area)
	}
	if s.TotalPoints != 5 {
		t.Errorf("total points: got %d, want 5", s.TotalPoints)
	}
	if s.StartMS != 0 || s.EndMS != 400 {
		t.Errorf("span: got %v..%v, want 0..400", s.StartMS, s.EndMS)
	}
	if s.ValidStrict != 2 {
		t.Errorf("valid strict: got %d, want 2", s.ValidStrict)
	}
	if s.ValidLax != 3 {
		t.Errorf("valid lax: got %d, want 3", s.ValidLax)
	}
	if s.PointsIn != 2 || s.PointsOut != 3 {
		t.Errorf("in/out: got %d/%d, want 2/3", s.PointsIn, s.PointsOut)
	}
	if s.DurationMeanMS != 100 || s.DurationMedianMS != 100 {
		t.Errorf("duration summary wrong: %+v", s)
	}
}

func TestGeneralStatsEmptyPath(t *testing.T) {
	a := NewAnalyzer(gazepoint.NewPath(nil), params.DefaultScreenConfig)
	s := a.GeneralStats()
	if s.TotalPoints != 0 || s.ValidStrict != 0 || s.PointsOut != 0 {
		t.Errorf("empty path stats not zeroed: %+v", s)
	}
}

func TestRegionStats(t *testing.T) {
	a := NewAnalyzer(testPath(), params.DefaultScreenConfig)
	rows := a.RegionStats("faces", []NamedRegion{
		{Name: "center", Region: region.NewRectangle(300, 200, 500, 400)},
		{Name: "corner", Region: region.NewRectangle(0, 0, 150, 150)},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	center, corner := rows[0], rows[1]
	if center.Presented != "faces" || center.Area != "center" {
		t.Errorf("labels wrong: %q/%q", center.Presented, center.Area)
	}
	if center.PointsIn != 1 || center.PointsOut != 4 {
		t.Errorf("center in/out: got %d/%d, want 1/4", center.PointsIn, center.PointsOut)
	}
	// The corner rectangle is closed, so the (0,0) dropout counts as in.
	if corner.PointsIn != 2 || corner.PointsOut != 3 {
		t.Errorf("corner in/out: got %d/%d, want 2/3", corner.PointsIn, corner.PointsOut)
	}
}

func TestStrictAndLaxValidity(t *testing.T) {
	a := NewAnalyzer(testPath(), params.DefaultScreenConfig)

	origin := gazepoint.New(gazepoint.Base)
	if a.StrictValid(origin) || a.LaxValid(origin) {
		t.Error("origin point must be invalid under both rules")
	}

	hover := gazepoint.New(gazepoint.Base)
	hover.X, hover.Y = -50, 300
	if a.StrictValid(hover) {
		t.Error("off-screen point must fail strict validity")
	}
	if !a.LaxValid(hover) {
		t.Error("slightly off-screen point must pass lax validity")
	}
}
