package gazepoint

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Point is one gaze sample an eye makes.
// It is as much a point in time as it is a point on the screen:
// Time marks when the sample (or fixation) began, Duration how long
// it lasted, both in milliseconds from the start of the recording.
// Extra instrument attributes (pupil size, corneal reflex, ...) live
// in Attrs, keyed by the names the point's Schema declares.
type Point struct {
	X, Y     float64
	Time     float64
	Duration float64
	Set      string
	Attrs    map[string]float64
	Schema   *Schema
}

// ValidFunc decides whether a point is a usable measurement.
// Points failing it mark sensor dropout or noise.
type ValidFunc func(Point) bool

// DefaultValid is the stock dropout rule: trackers report samples at
// or below the origin when the eye is lost.
func DefaultValid(p Point) bool {
	return p.X > 0 && p.Y > 0
}

// New creates a Point of the given kind with a fresh attribute store.
func New(schema *Schema) Point {
	if schema == nil {
		schema = Base
	}
	return Point{
		Attrs:  make(map[string]float64),
		Schema: schema,
	}
}

func (p Point) schema() *Schema {
	if p.Schema == nil {
		return Base
	}
	return p.Schema
}

// Copy returns an independent copy of the point.
// The attribute store is cloned, so mutating the copy never reaches
// back into the original.
func (p Point) Copy() Point {
	cp := p
	if p.Attrs != nil {
		cp.Attrs = make(map[string]float64, len(p.Attrs))
		for k, v := range p.Attrs {
			cp.Attrs[k] = v
		}
	}
	return cp
}

// Point returns the sample's screen position.
func (p Point) Point() orb.Point {
	return orb.Point{p.X, p.Y}
}

// Within reports whether the sample lies in the closed rectangle b,
// edges included.
func (p Point) Within(b orb.Bound) bool {
	return b.Contains(p.Point())
}

// TimeMidpoint returns the instant halfway through the sample's span.
func (p Point) TimeMidpoint() float64 {
	return p.Time + p.Duration/2
}

// End returns the instant the sample's span finishes.
func (p Point) End() float64 {
	return p.Time + p.Duration
}

// Attr returns the named numeric attribute.
// Beyond the schema's interpolatable set, the fixed fields
// x, y, time and duration are addressable by name.
func (p Point) Attr(name string) (float64, bool) {
	switch name {
	case "x":
		return p.X, true
	case "y":
		return p.Y, true
	case "time":
		return p.Time, true
	case "duration":
		return p.Duration, true
	}
	v, ok := p.Attrs[name]
	return v, ok
}

// InterpValues returns a snapshot of every interpolatable attribute
// the point's schema declares, keyed by name. The map is the caller's.
func (p Point) InterpValues() map[string]float64 {
	s := p.schema()
	vals := make(map[string]float64, len(s.Interp))
	for _, name := range s.Interp {
		if v, ok := p.Attr(name); ok {
			vals[name] = v
		}
	}
	return vals
}

// MergeValues bulk-assigns attribute values onto the point.
// Only attributes the point's schema declares interpolatable are
// assignable; an unknown key rejects the whole merge, untouched.
func (p *Point) MergeValues(vals map[string]float64) error {
	s := p.schema()
	for name := range vals {
		if !s.Declares(name) {
			return fmt.Errorf("attribute rejected: %q not declared by schema %q", name, s.Name)
		}
	}
	for name, v := range vals {
		switch name {
		case "x":
			p.X = v
		case "y":
			p.Y = v
		default:
			if p.Attrs == nil {
				p.Attrs = make(map[string]float64)
			}
			p.Attrs[name] = v
		}
	}
	return nil
}
