package fold

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is matched by the error a fold panics with when an
	// integer Divide step has a zero divisor.
	ErrDivideByZero = errors.New("fold: integer division by zero")

	// ErrDepthExceeded is matched by the error a Recursive fold panics with
	// when the range is longer than the configured depth cap.
	ErrDepthExceeded = errors.New("fold: recursion depth exceeded")
)

// DivideByZeroError reports the step of an integer fold whose divisor was
// zero.
type DivideByZeroError struct {
	// Direction is "left" or "right".
	Direction string
	// Index is the array index combined at the failing step.
	Index int
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("fold: %s: integer division by zero at index %d", e.Direction, e.Index)
}

func (e *DivideByZeroError) Unwrap() error {
	return ErrDivideByZero
}
