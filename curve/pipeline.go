// curve/pipeline.go
package curve

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Transform maps a score sequence to a new sequence of the same length.
type Transform func(scores []float64) ([]float64, error)

// Curve is a named Transform.
type Curve struct {
	Name      string
	Transform Transform
}

// Series is the output of one curve applied to a score sequence.
type Series struct {
	Name   string
	Scores []float64
}

// CurveInfo describes a curve kind accepted by ParseCurve.
type CurveInfo struct {
	Spec        string
	Description string
}

// defaultSpecs mirrors the order the report has always printed in.
var defaultSpecs = []string{"raw", "flat:5", "flat:10", "sqrt"}

// DefaultSpecs returns the curve specs used when none are configured.
func DefaultSpecs() []string {
	return slices.Clone(defaultSpecs)
}

// Raw returns the identity curve.
func Raw() Curve {
	return Curve{Name: "raw", Transform: func(scores []float64) ([]float64, error) {
		return slices.Clone(scores), nil
	}}
}

// Flat returns a curve adding n to every score.
func Flat(n float64) Curve {
	return Curve{
		Name: "flat:" + strconv.FormatFloat(n, 'f', -1, 64),
		Transform: func(scores []float64) ([]float64, error) {
			return AdditiveShift(scores, n), nil
		},
	}
}

// Sqrt returns the square-root curve.
func Sqrt() Curve {
	return Curve{Name: "sqrt", Transform: SqrtScale}
}

// DefaultCurves returns raw, flat:5, flat:10 and sqrt.
func DefaultCurves() []Curve {
	return []Curve{Raw(), Flat(5), Flat(10), Sqrt()}
}

// Catalog lists the curve kinds ParseCurve understands.
func Catalog() []CurveInfo {
	return []CurveInfo{
		{Spec: "raw", Description: "Scores as recorded"},
		{Spec: "flat:<n>", Description: "Add n points to every score"},
		{Spec: "sqrt", Description: "Square root of each score, times 10"},
	}
}

// ParseCurve resolves a textual curve spec such as "raw", "sqrt" or "flat:5".
func ParseCurve(spec string) (Curve, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(spec), ":")
	switch strings.ToLower(name) {
	case "raw":
		if hasArg {
			return Curve{}, fmt.Errorf("curve %q takes no argument", spec)
		}
		return Raw(), nil
	case "sqrt":
		if hasArg {
			return Curve{}, fmt.Errorf("curve %q takes no argument", spec)
		}
		return Sqrt(), nil
	case "flat":
		if !hasArg {
			return Curve{}, fmt.Errorf("curve %q requires a shift, e.g. flat:5", spec)
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return Curve{}, fmt.Errorf("parsing shift of curve %q: %w", spec, err)
		}
		return Flat(n), nil
	default:
		return Curve{}, fmt.Errorf("%w: %q", ErrUnknownCurve, spec)
	}
}

// ParseCurves resolves every spec, stopping at the first invalid one.
func ParseCurves(specs []string) ([]Curve, error) {
	curves := make([]Curve, 0, len(specs))
	for _, s := range specs {
		c, err := ParseCurve(s)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}

// Apply runs every curve over scores and returns the series in curve order.
func Apply(scores []float64, curves []Curve) ([]Series, error) {
	out := make([]Series, 0, len(curves))
	for _, c := range curves {
		curved, err := c.Transform(scores)
		if err != nil {
			return nil, fmt.Errorf("applying curve %s: %w", c.Name, err)
		}
		out = append(out, Series{Name: c.Name, Scores: curved})
	}
	return out, nil
}
