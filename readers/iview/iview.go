// Package iview maps raw SMI iView sample rows onto typed gaze points.
//
// Rows are positional: each schema is an ordered field list pairing a
// column name with a typed assignment onto the point under
// construction. The enumeration is explicit per point kind — no
// reflection between column names and struct fields.
package iview

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gazelab/gazed/params"
	"github.com/gazelab/gazed/types/gazepoint"
)

// ErrSchemaMismatch marks a row with fewer columns than the field
// mapping requires.
var ErrSchemaMismatch = errors.New("row shorter than field mapping")

// ConversionError carries the row and column on which a cell refused
// to parse to its declared type.
type ConversionError struct {
	Row   []string
	Field string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert field %q in row %v: %v", e.Field, e.Row, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Field pairs a column name with its typed assignment onto a point.
// A nil Assign skips the column.
type Field struct {
	Name   string
	Assign func(p *gazepoint.Point, raw string) error
}

func floatField(name string, set func(p *gazepoint.Point, v float64)) Field {
	return Field{Name: name, Assign: func(p *gazepoint.Point, raw string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return err
		}
		set(p, v)
		return nil
	}}
}

func attrField(name string) Field {
	return floatField(name, func(p *gazepoint.Point, v float64) {
		p.Attrs[name] = v
	})
}

// SampleFields is the SMI iView raw-sample column order.
func SampleFields() []Field {
	return []Field{
		floatField("time", func(p *gazepoint.Point, v float64) { p.Time = v }),
		{Name: "set", Assign: func(p *gazepoint.Point, raw string) error {
			p.Set = strings.TrimSpace(raw)
			return nil
		}},
		attrField("pupil_h"),
		attrField("pupil_v"),
		attrField("corneal_reflex_h"),
		attrField("corneal_reflex_v"),
		floatField("x", func(p *gazepoint.Point, v float64) { p.X = v }),
		floatField("y", func(p *gazepoint.Point, v float64) { p.Y = v }),
		attrField("diam_h"),
		attrField("diam_v"),
	}
}

// PointsFromRecords converts positional rows into iView points.
// A row shorter than the field list fails with ErrSchemaMismatch; an
// unparseable cell fails with a *ConversionError naming the row and
// field. Neither is recovered here — the caller owns that policy.
func PointsFromRecords(records [][]string, fields []Field) ([]gazepoint.Point, error) {
	points := make([]gazepoint.Point, 0, len(records))
	for _, row := range records {
		if len(row) < len(fields) {
			return nil, fmt.Errorf("%w: row %v has %d fields, mapping needs %d",
				ErrSchemaMismatch, row, len(row), len(fields))
		}
		p := gazepoint.New(gazepoint.IView)
		for i, f := range fields {
			if f.Assign == nil {
				continue
			}
			if err := f.Assign(&p, row[i]); err != nil {
				return nil, &ConversionError{Row: row, Field: f.Name, Err: err}
			}
		}
		points = append(points, p)
	}
	return points, nil
}

// AssignDurations fills each point's duration from the gap to its
// successor. The final point inherits the preceding gap; a
// non-positive gap (or a single-point slice) falls back to the given
// sample period. Points come out satisfying duration > 0.
func AssignDurations(points []gazepoint.Point, fallback float64) {
	if fallback <= 0 {
		fallback = params.DefaultSamplePeriodMS
	}
	for i := range points {
		d := fallback
		if i < len(points)-1 {
			d = points[i+1].Time - points[i].Time
		} else if i > 0 {
			d = points[i-1].Duration
		}
		if d <= 0 {
			d = fallback
		}
		points[i].Duration = d
	}
}

// ReadPoints scans a whitespace-delimited iView export. Blank lines
// and #-comments are skipped, as is a leading column-header line
// (detected by its unparseable time column). Durations are assigned
// from the sample cadence before returning.
func ReadPoints(r io.Reader, fields []Field) ([]gazepoint.Point, error) {
	records := make([][]string, 0)
	sc := bufio.NewScanner(r)
	headerAllowed := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row := strings.Fields(line)
		if headerAllowed {
			headerAllowed = false
			if _, err := strconv.ParseFloat(row[0], 64); err != nil {
				continue
			}
		}
		records = append(records, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	points, err := PointsFromRecords(records, fields)
	if err != nil {
		return nil, err
	}
	AssignDurations(points, params.DefaultSamplePeriodMS)
	return points, nil
}
