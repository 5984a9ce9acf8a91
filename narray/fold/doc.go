// Package fold reduces an inclusive index range of a numeric sequence to a
// single value with one of four binary operations.
//
// Left and Right differ in associativity, which matters for Subtract and
// Divide:
//
//	Left(Subtract, 10, []int{1, 2, 3}, 0, 2)  == ((10-1)-2)-3 == 4
//	Right(Subtract, 10, []int{1, 2, 3}, 0, 2) == 1-(2-(3-10)) == -8
//
// Both are defined by recurrences (Left recurses on the upper bound, Right
// on the lower bound) with init as the value of an empty range. The default
// Iterative strategy computes the same result with an accumulator loop;
// WithStrategy(Recursive) evaluates the recurrence directly.
//
// An empty range (from > to) always yields init, whatever the mode. A
// non-empty range with an unrecognized mode yields the zero value.
//
// Arithmetic is native: float64 overflow and division by zero produce
// infinities or NaN, integer overflow wraps. Integer division by zero is a
// fatal error: the fold panics with a *DivideByZeroError, which matches
// ErrDivideByZero under errors.Is. No substitute value is ever produced.
package fold
