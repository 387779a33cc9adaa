// curve/curve.go

// Package curve applies grading curves to test scores and averages the
// results.
package curve

import (
	"math"
	"slices"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// defaultScores is the score sequence the report runs on when nothing else
// is configured.
var defaultScores = []float64{88, 92, 74, 48, 73}

// Scores returns a fresh copy of the default score sequence.
func Scores() []float64 {
	return slices.Clone(defaultScores)
}

// AdditiveShift returns a new slice with n added to every score.
func AdditiveShift(scores []float64, n float64) []float64 {
	out := slices.Clone(scores)
	if out == nil {
		out = []float64{}
	}
	floats.AddConst(n, out)
	return out
}

// SqrtScale returns a new slice holding sqrt(x)*10 for every score.
// A negative score yields a *DomainError naming its index.
func SqrtScale(scores []float64) ([]float64, error) {
	out := make([]float64, len(scores))
	for i, s := range scores {
		if s < 0 {
			return nil, &DomainError{Op: "sqrt_scale", Index: i, Value: s}
		}
		out[i] = math.Sqrt(s)
	}
	floats.Scale(10, out)
	return out, nil
}

// Mean returns the arithmetic mean of scores.
func Mean(scores []float64) (float64, error) {
	if len(scores) == 0 {
		return 0, ErrEmptyInput
	}
	m, err := stats.Mean(stats.Float64Data(scores))
	if err != nil {
		return 0, err
	}
	return m, nil
}
