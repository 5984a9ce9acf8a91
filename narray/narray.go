package narray

import (
	"slices"

	"github.com/cwbudde/algo-narray/internal/check"
	"github.com/cwbudde/algo-narray/narray/compare"
)

const pkg = "narray"

// Init sets the first n elements of a to value.
func Init[T compare.Number](a []T, value T, n int) {
	check.Count(pkg, "init", "a", a, n)
	for i := range a[:n] {
		a[i] = value
	}
}

// Equals reports whether the first n elements of a1 and a2 are exactly
// equal. It stops at the first mismatch.
func Equals[T compare.Number](a1, a2 []T, n int) bool {
	check.Count(pkg, "equals", "a1", a1, n)
	check.Count(pkg, "equals", "a2", a2, n)
	for i := 0; i < n; i++ {
		if a1[i] != a2[i] {
			return false
		}
	}
	return true
}

// Copy copies the first n elements of src into dst and returns dst.
// The two slices must not overlap.
func Copy[T compare.Number](dst, src []T, n int) []T {
	check.Count(pkg, "copy", "dst", dst, n)
	check.Count(pkg, "copy", "src", src, n)
	copy(dst[:n], src[:n])
	return dst
}

// Sort sorts the first n elements of a in place using c. The sort is not
// stable: equivalent elements may be reordered.
func Sort[T compare.Number](a []T, n int, c compare.Comparator[T]) {
	check.Count(pkg, "sort", "a", a, n)
	slices.SortFunc(a[:n], c)
}
