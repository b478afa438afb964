// Package delimited writes fixation reports as tab-separated values.
package delimited

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gazelab/gazed/gaze/fixstats"
)

var header = []string{
	"presented", "area",
	"total_points", "start_ms", "end_ms",
	"valid_strict", "valid_lax",
	"points_in", "points_out",
	"dur_mean_ms", "dur_median_ms", "dur_min_ms", "dur_max_ms",
}

// StatsWriter streams fixation stats rows to a TSV sink.
type StatsWriter struct {
	w *csv.Writer
}

func NewStatsWriter(w io.Writer) *StatsWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &StatsWriter{w: cw}
}

func (sw *StatsWriter) WriteHeader() error {
	return sw.w.Write(header)
}

func (sw *StatsWriter) Write(rows []fixstats.Stats) error {
	for _, s := range rows {
		record := []string{
			s.Presented, s.Area,
			strconv.Itoa(s.TotalPoints),
			formatMS(s.StartMS), formatMS(s.EndMS),
			strconv.Itoa(s.ValidStrict), strconv.Itoa(s.ValidLax),
			strconv.Itoa(s.PointsIn), strconv.Itoa(s.PointsOut),
			formatMS(s.DurationMeanMS), formatMS(s.DurationMedianMS),
			formatMS(s.DurationMinMS), formatMS(s.DurationMaxMS),
		}
		if err := sw.w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush pushes buffered rows to the sink.
func (sw *StatsWriter) Flush() error {
	sw.w.Flush()
	return sw.w.Error()
}

func formatMS(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
