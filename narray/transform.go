package narray

import (
	"github.com/cwbudde/algo-narray/internal/check"
	"github.com/cwbudde/algo-narray/narray/compare"
)

// Transform maps one value to another of the same kind.
type Transform[T compare.Number] func(T) T

// Map writes fn(source[i]) to result[i] for every i in [0, n) and returns
// n. result may alias source.
func Map[T compare.Number](source, result []T, fn Transform[T], n int) int {
	check.Count(pkg, "map", "source", source, n)
	check.Count(pkg, "map", "result", result, n)
	for i := 0; i < n; i++ {
		result[i] = fn(source[i])
	}
	return n
}

// Filter copies, in order, the elements of source[:n] for which p holds
// into the front of result and returns how many were written. Elements of
// result past the returned count are left untouched. result may alias
// source.
func Filter[T compare.Number](source, result []T, p compare.Predicate[T], n int) int {
	check.Count(pkg, "filter", "source", source, n)
	check.Count(pkg, "filter", "result", result, n)
	j := 0
	for i := 0; i < n; i++ {
		if p(source[i]) {
			result[j] = source[i]
			j++
		}
	}
	return j
}

// Replace writes substitution to result[i] where p(source[i]) holds and
// source[i] everywhere else. It returns the number of substituted
// positions.
func Replace[T compare.Number](source, result []T, p compare.Predicate[T], substitution T, n int) int {
	check.Count(pkg, "replace", "source", source, n)
	check.Count(pkg, "replace", "result", result, n)
	count := 0
	for i := 0; i < n; i++ {
		if p(source[i]) {
			result[i] = substitution
			count++
		} else {
			result[i] = source[i]
		}
	}
	return count
}

// Threshold keeps every source[i] strictly greater than threshold and
// writes substitution everywhere else.
//
// The returned count is the number of elements KEPT above the threshold,
// not the number substituted. This is the opposite convention from
// Replace.
func Threshold[T compare.Number](source, result []T, threshold, substitution T, n int) int {
	check.Count(pkg, "threshold", "source", source, n)
	check.Count(pkg, "threshold", "result", result, n)
	kept := 0
	for i := 0; i < n; i++ {
		if source[i] > threshold {
			result[i] = source[i]
			kept++
		} else {
			result[i] = substitution
		}
	}
	return kept
}
