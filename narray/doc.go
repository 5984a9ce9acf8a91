// Package narray provides generic operations over fixed-length numeric
// sequences of int or float64 elements.
//
// Every operation takes an explicit element count n and works on indices
// [0, n). Storage is owned by the caller: the package never allocates,
// grows or frees a slice, it only reads and writes within the requested
// count. Behavior is plugged in through the predicates and comparators of
// package compare or any caller-supplied function of the same shape.
//
// Counts are checked before anything is written. A negative n, or an n
// larger than any buffer argument, panics with a "narray: <op>: ..."
// message. Nil slices are accepted when n is zero.
//
// The operations are plain loops over caller memory and are safe for
// concurrent use on disjoint slices.
package narray
