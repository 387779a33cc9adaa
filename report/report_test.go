package report

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/mwiater/scorecurve/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSeries(t *testing.T) []curve.Series {
	t.Helper()
	series, err := curve.Apply(curve.Scores(), curve.DefaultCurves())
	require.NoError(t, err)
	return series
}

func TestReport_WriterSink(t *testing.T) {
	var buf bytes.Buffer
	err := Report(defaultSeries(t), NewWriterSink(&buf))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "75.0", lines[0])
	assert.Equal(t, "80.0", lines[1])
	assert.Equal(t, "85.0", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "86.094"), "got %s", lines[3])
}

func TestReport_CollectorKeepsOrder(t *testing.T) {
	c := &Collector{}
	require.NoError(t, Report(defaultSeries(t), c))

	require.Len(t, c.Entries, 4)
	assert.Equal(t, "raw", c.Entries[0].Name)
	assert.Equal(t, "sqrt", c.Entries[3].Name)

	means := c.Means()
	assert.InDelta(t, 75.0, means[0], 1e-9)
	assert.InDelta(t, 80.0, means[1], 1e-9)
	assert.InDelta(t, 85.0, means[2], 1e-9)
	assert.InDelta(t, 86.094, means[3], 1e-3)
}

func TestReport_EmptySeries(t *testing.T) {
	c := &Collector{}
	err := Report([]curve.Series{{Name: "raw", Scores: []float64{1}}, {Name: "empty"}}, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, curve.ErrEmptyInput)
	assert.Contains(t, err.Error(), "empty")
	assert.Len(t, c.Entries, 1, "means before the failure are still emitted")
}

type failingSink struct{}

func (failingSink) Emit(string, float64) error { return errors.New("sink closed") }

func TestReport_SinkError(t *testing.T) {
	err := Report(defaultSeries(t), failingSink{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink closed")
	assert.Contains(t, err.Error(), "raw")
}

func TestReport_NoSeries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(nil, NewWriterSink(&buf)))
	assert.Empty(t, buf.String())
}

func TestFormatMean(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{75, "75.0"},
		{0, "0.0"},
		{-3, "-3.0"},
		{86.5, "86.5"},
		{0.1, "0.1"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1e21, "1e+21"},
		{-2.5e20, "-2.5e+20"},
		{0.0001, "0.0001"},
		{1.5e-5, "1.5e-05"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMean(tt.in))
		})
	}
}
