// curve/errors.go
package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a mean is requested for an empty sequence.
	ErrEmptyInput = errors.New("mean of empty sequence is undefined")

	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("value outside transform domain")

	// ErrUnknownCurve is returned by ParseCurve for unrecognised curve names.
	ErrUnknownCurve = errors.New("unknown curve")
)

// DomainError reports the element that a transform could not map.
type DomainError struct {
	Op    string  // operation that failed, e.g. "sqrt_scale"
	Index int     // position of the offending element
	Value float64 // the offending element
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: value %v at index %d is outside the domain", e.Op, e.Value, e.Index)
}

// Is makes errors.Is(err, ErrDomain) true for any DomainError.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}
