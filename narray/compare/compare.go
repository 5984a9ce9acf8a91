// Package compare provides the predicate and comparator vocabulary used by
// the narray transform and sort operations.
//
// Predicates classify a single value. Comparators order two values and
// return a negative, zero or positive int, the contract expected by
// slices.SortFunc. Floating-point values are compared with the ordinary
// relational operators; NaN receives no special treatment and equality is
// exact.
package compare

// Number is the set of element kinds supported by narray.
type Number interface {
	~int | ~float64
}

// Integer is the integer element kind. Parity predicates are defined only
// for integers.
type Integer interface {
	~int
}

// Predicate classifies a single value.
type Predicate[T Number] func(T) bool

// Comparator orders two values: negative if a sorts before b, zero if they
// are equivalent, positive if a sorts after b.
type Comparator[T Number] func(a, b T) int

// Positive reports whether x >= 0. Zero counts as positive.
func Positive[T Number](x T) bool {
	return x >= 0
}

// Negative reports whether x < 0.
func Negative[T Number](x T) bool {
	return x < 0
}

// Zero reports whether x == 0. No tolerance is applied to floats.
func Zero[T Number](x T) bool {
	return x == 0
}

// Even reports whether n is divisible by 2.
func Even[T Integer](n T) bool {
	return n%2 == 0
}

// Odd reports whether n is not divisible by 2.
func Odd[T Integer](n T) bool {
	return n%2 != 0
}

// Ascending orders by value, smallest first.
func Ascending[T Number](a, b T) int {
	if a < b {
		return -1
	}
	if a == b {
		return 0
	}
	return 1
}

// Descending orders by value, largest first.
func Descending[T Number](a, b T) int {
	return Ascending(b, a)
}

// AscendingAbs orders by absolute value, smallest magnitude first.
func AscendingAbs[T Number](a, b T) int {
	// negMag(x) = -|x| is representable for every int, including the most
	// negative one, so the order is inverted instead of taking |x|.
	return Ascending(negMag(b), negMag(a))
}

// DescendingAbs orders by absolute value, largest magnitude first.
func DescendingAbs[T Number](a, b T) int {
	return Ascending(negMag(a), negMag(b))
}

// Not returns the negation of p.
func Not[T Number](p Predicate[T]) Predicate[T] {
	return func(x T) bool {
		return !p(x)
	}
}

// Reverse returns c with its order inverted.
func Reverse[T Number](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

func negMag[T Number](x T) T {
	if x > 0 {
		return -x
	}
	return x
}
