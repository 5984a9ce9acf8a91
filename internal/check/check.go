// Package check holds the precondition checks shared by the narray
// packages. A failed check panics before any element is written.
package check

import "fmt"

// Count panics unless 0 <= n <= len(buf).
func Count[T any](pkg, op, name string, buf []T, n int) {
	if n < 0 {
		panic(fmt.Sprintf("%s: %s: negative count %d", pkg, op, n))
	}
	if n > len(buf) {
		panic(fmt.Sprintf("%s: %s: count %d exceeds len(%s)=%d", pkg, op, n, name, len(buf)))
	}
}

// Range panics unless [from, to] is a valid inclusive index range of buf.
// An empty range (from > to) is always valid.
func Range[T any](pkg, op string, buf []T, from, to int) {
	if from > to {
		return
	}
	if from < 0 || to >= len(buf) {
		panic(fmt.Sprintf("%s: %s: range [%d, %d] out of bounds for length %d", pkg, op, from, to, len(buf)))
	}
}

// Index panics unless 0 <= i < n.
func Index(pkg string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("%s: index %d out of range [0, %d)", pkg, i, n))
	}
}
