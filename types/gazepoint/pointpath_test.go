package gazepoint

import (
	"testing"

	"github.com/paulmach/orb"
)

func pathOf(coords ...[4]float64) *Path {
	pts := make([]Point, len(coords))
	for i, c := range coords {
		p := New(Base)
		p.X, p.Y, p.Time, p.Duration = c[0], c[1], c[2], c[3]
		pts[i] = p
	}
	return NewPath(pts)
}

func TestMeanDurationWeighted(t *testing.T) {
	// Two points, durations 1 and 3: the longer sample pulls the
	// centroid to x = (1*0 + 3*4) / 4 = 3.
	p := pathOf(
		[4]float64{0, 0, 0, 1},
		[4]float64{4, 0, 1, 3},
	)
	mean, ok := p.Mean()
	if !ok {
		t.Fatal("mean of non-empty path reported empty")
	}
	if mean[0] != 3 || mean[1] != 0 {
		t.Errorf("mean: got %v, want (3, 0)", mean)
	}
}

func TestMeanEmptyPath(t *testing.T) {
	mean, ok := NewPath(nil).Mean()
	if ok {
		t.Error("empty path mean must report the empty sentinel")
	}
	if mean != (orb.Point{}) {
		t.Errorf("empty sentinel: got %v, want zero point", mean)
	}
}

func TestTotalDuration(t *testing.T) {
	p := pathOf(
		[4]float64{0, 0, 0, 16},
		[4]float64{1, 1, 16, 17},
		[4]float64{2, 2, 33, 17},
	)
	if got := p.TotalDuration(); got != 50 {
		t.Errorf("total duration: got %v, want 50", got)
	}
}

func TestRecenterBy(t *testing.T) {
	orig := pathOf(
		[4]float64{100, 200, 0, 16},
		[4]float64{110, 210, 16, 16},
	)
	moved := orig.RecenterBy(5, -2)

	if orig.At(0).X != 100 || orig.At(0).Y != 200 {
		t.Error("RecenterBy mutated the original")
	}
	if moved.At(0).X != 105 || moved.At(0).Y != 198 {
		t.Errorf("point 0 not shifted: (%v, %v)", moved.At(0).X, moved.At(0).Y)
	}
	if moved.At(1).X != 115 || moved.At(1).Y != 208 {
		t.Errorf("point 1 not shifted: (%v, %v)", moved.At(1).X, moved.At(1).Y)
	}
	if moved.At(0).Time != orig.At(0).Time {
		t.Error("RecenterBy touched time")
	}
}

func TestConstrainTo(t *testing.T) {
	p := pathOf(
		[4]float64{-10, 300, 0, 16},  // below min x
		[4]float64{400, 700, 16, 16}, // above max y
		[4]float64{400, 300, 33, 16}, // in bounds
	)
	c := Constraint{
		MinX: Clamp{Threshold: 0, Replacement: 0},
		MinY: Clamp{Threshold: 0, Replacement: 0},
		MaxX: Clamp{Threshold: 800, Replacement: 799},
		MaxY: Clamp{Threshold: 600, Replacement: 599},
	}
	got := p.ConstrainTo(c)

	if got.At(0).X != 0 || got.At(0).Y != 300 {
		t.Errorf("min-x clamp: got (%v, %v)", got.At(0).X, got.At(0).Y)
	}
	if got.At(1).X != 400 || got.At(1).Y != 599 {
		t.Errorf("max-y clamp: got (%v, %v)", got.At(1).X, got.At(1).Y)
	}
	if got.At(2).X != 400 || got.At(2).Y != 300 {
		t.Error("in-bounds point modified")
	}
	if p.At(0).X != -10 {
		t.Error("ConstrainTo mutated the original")
	}
	for i := 0; i < p.Len(); i++ {
		if got.At(i).Time != p.At(i).Time || got.At(i).Duration != p.At(i).Duration {
			t.Errorf("point %d time/duration modified", i)
		}
	}
}

type circle struct {
	cx, cy, r float64
}

func (c circle) Contains(pt orb.Point) bool {
	dx, dy := pt[0]-c.cx, pt[1]-c.cy
	return dx*dx+dy*dy <= c.r*c.r
}

func TestPointsWithin(t *testing.T) {
	p := pathOf(
		[4]float64{400, 300, 0, 16},
		[4]float64{100, 100, 16, 16},
		[4]float64{405, 305, 33, 16},
	)
	got := p.PointsWithin(circle{400, 300, 10})
	if got.Len() != 2 {
		t.Fatalf("got %d points, want 2", got.Len())
	}
	if got.At(0).Time != 0 || got.At(1).Time != 33 {
		t.Error("membership filter reordered or mischose points")
	}
	if p.Len() != 3 {
		t.Error("PointsWithin mutated the original")
	}
}

func TestValidPoints(t *testing.T) {
	p := pathOf(
		[4]float64{400, 300, 0, 16},
		[4]float64{0, 0, 16, 16},
		[4]float64{410, 310, 33, 16},
	)
	got := p.ValidPoints(DefaultValid)
	if got.Len() != 2 {
		t.Fatalf("got %d points, want 2", got.Len())
	}
	if got.At(1).X != 410 {
		t.Error("wrong points selected")
	}
}

func TestAsMatrix(t *testing.T) {
	p := pathOf(
		[4]float64{400, 300, 0, 16},
		[4]float64{410, 310, 16, 16},
	)
	m, err := p.AsMatrix([]string{"time", "x", "y"})
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := m.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("dims: got %dx%d, want 2x3", rows, cols)
	}
	if m.At(0, 1) != 400 || m.At(1, 2) != 310 || m.At(1, 0) != 16 {
		t.Errorf("matrix values wrong: %v", m.RawMatrix().Data)
	}

	if _, err := p.AsMatrix([]string{"x", "nope"}); err == nil {
		t.Error("unknown attribute must fail")
	}
	if _, err := NewPath(nil).AsMatrix([]string{"x"}); err == nil {
		t.Error("empty path matrix must fail")
	}
}

func TestTimeIndex(t *testing.T) {
	p := pathOf(
		[4]float64{0, 0, 0, 16},
		[4]float64{0, 0, 16, 17},
		[4]float64{0, 0, 33, 17},
		[4]float64{0, 0, 50, 17},
	)
	cases := []struct {
		t    float64
		want int
	}{
		{0, 0}, // exact match: last point with time <= t
		{10, 0},
		{16, 1},
		{20, 1},
		{49.9, 2},
		{50, 4}, // at the last point's time: past the end
		{100, 4},
	}
	for _, c := range cases {
		if got := p.TimeIndex(c.t); got != c.want {
			t.Errorf("TimeIndex(%v): got %d, want %d", c.t, got, c.want)
		}
	}
}

func TestExtend(t *testing.T) {
	a := pathOf([4]float64{1, 1, 0, 16})
	b := pathOf([4]float64{2, 2, 16, 16}, [4]float64{3, 3, 33, 16})
	a.Extend(b)

	if a.Len() != 3 {
		t.Fatalf("got %d points, want 3", a.Len())
	}
	if a.At(2).X != 3 {
		t.Error("extended points out of order")
	}
	if b.Len() != 2 {
		t.Error("Extend mutated the argument")
	}
}

func TestNewPathFreshBackingStore(t *testing.T) {
	pts := []Point{New(Base)}
	p := NewPath(pts)
	pts[0].X = 99
	if p.At(0).X != 0 {
		t.Error("path shares the caller's slice")
	}

	// Two paths built from the same (nil) source never share state.
	a, b := NewPath(nil), NewPath(nil)
	a.Extend(pathOf([4]float64{1, 1, 0, 16}))
	if b.Len() != 0 {
		t.Error("paths share a backing store")
	}
}
