// report/report.go

// Package report computes the mean of each curved series and hands it to
// an output sink.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mwiater/scorecurve/curve"
)

// Sink receives one mean per series, in series order.
type Sink interface {
	Emit(name string, mean float64) error
}

// WriterSink prints each mean on its own line.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink returns a Sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes mean followed by a newline. The name is not printed.
func (s *WriterSink) Emit(_ string, mean float64) error {
	_, err := fmt.Fprintln(s.w, FormatMean(mean))
	return err
}

// Entry is one emitted mean.
type Entry struct {
	Name string
	Mean float64
}

// Collector keeps emitted means in memory.
type Collector struct {
	Entries []Entry
}

// Emit appends an Entry.
func (c *Collector) Emit(name string, mean float64) error {
	c.Entries = append(c.Entries, Entry{Name: name, Mean: mean})
	return nil
}

// Means returns the collected values without names.
func (c *Collector) Means() []float64 {
	out := make([]float64, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Mean
	}
	return out
}

// Report emits the mean of every series to sink. It stops at the first
// series whose mean cannot be computed or emitted.
func Report(series []curve.Series, sink Sink) error {
	for _, s := range series {
		m, err := curve.Mean(s.Scores)
		if err != nil {
			return fmt.Errorf("mean of %s: %w", s.Name, err)
		}
		if err := sink.Emit(s.Name, m); err != nil {
			return fmt.Errorf("emitting mean of %s: %w", s.Name, err)
		}
	}
	return nil
}

// FormatMean renders v as the shortest decimal that round-trips, keeping a
// trailing ".0" on whole numbers so every line reads as a float. Magnitudes
// of 1e16 and above, or below 1e-4, use exponent notation (1e+21, 1.5e-05);
// NaN and infinities print as nan, inf and -inf.
func FormatMean(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if a := math.Abs(v); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
