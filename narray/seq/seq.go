package seq

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-narray/internal/check"
	"github.com/cwbudde/algo-narray/narray"
	"github.com/cwbudde/algo-narray/narray/compare"
	"github.com/cwbudde/algo-narray/narray/fold"
)

// Seq wraps a numeric slice with reuse-friendly, bounds-checked semantics.
// Methods taking another *Seq panic when it is nil.
type Seq[T compare.Number] struct {
	values []T
}

func mustBeSet[T compare.Number](op string, o *Seq[T]) {
	if o == nil {
		panic(fmt.Sprintf("seq: %s: nil sequence", op))
	}
}

// New returns a zero-filled Seq of the given length.
func New[T compare.Number](length int) *Seq[T] {
	if length < 0 {
		length = 0
	}
	return &Seq[T]{values: make([]T, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Seq and vice versa.
func FromSlice[T compare.Number](s []T) *Seq[T] {
	return &Seq[T]{values: s}
}

// Values returns the underlying slice.
func (s *Seq[T]) Values() []T {
	return s.values
}

// Len returns the current number of elements.
func (s *Seq[T]) Len() int {
	return len(s.values)
}

// Cap returns the current capacity of the backing slice.
func (s *Seq[T]) Cap() int {
	return cap(s.values)
}

// At returns element i. Panics if i is out of range.
func (s *Seq[T]) At(i int) T {
	check.Index("seq", i, len(s.values))
	return s.values[i]
}

// Set stores v at index i. Panics if i is out of range.
func (s *Seq[T]) Set(i int, v T) {
	check.Index("seq", i, len(s.values))
	s.values[i] = v
}

// Grow makes room for at least n elements without changing the length.
func (s *Seq[T]) Grow(n int) {
	if n > cap(s.values) {
		s.values = slices.Grow(s.values, n-len(s.values))
	}
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (s *Seq[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(s.values)
	s.Grow(n)
	s.values = s.values[:n]
	// Capacity reuse may expose values left from an earlier, longer length.
	if n > oldLen {
		clear(s.values[oldLen:])
	}
}

// Clone returns a deep copy of the sequence.
func (s *Seq[T]) Clone() *Seq[T] {
	c := New[T](len(s.values))
	narray.Copy(c.values, s.values, len(s.values))
	return c
}

// Fill sets every element to v.
func (s *Seq[T]) Fill(v T) {
	narray.Init(s.values, v, len(s.values))
}

// Equal reports whether s and o have the same length and exactly equal
// elements.
func (s *Seq[T]) Equal(o *Seq[T]) bool {
	mustBeSet("equal", o)
	if len(s.values) != len(o.values) {
		return false
	}
	return narray.Equals(s.values, o.values, len(s.values))
}

// CopyFrom resizes s to src's length and copies src into it.
func (s *Seq[T]) CopyFrom(src *Seq[T]) {
	mustBeSet("copy", src)
	s.Resize(len(src.values))
	narray.Copy(s.values, src.values, len(src.values))
}

// Sort sorts the sequence in place. The sort is not stable.
func (s *Seq[T]) Sort(c compare.Comparator[T]) {
	narray.Sort(s.values, len(s.values), c)
}

// MapInto resizes dst to the length of s and writes fn(s[i]) to dst[i].
// dst may be s.
func (s *Seq[T]) MapInto(dst *Seq[T], fn narray.Transform[T]) int {
	mustBeSet("map", dst)
	dst.Resize(len(s.values))
	return narray.Map(s.values, dst.values, fn, len(s.values))
}

// FilterInto writes the elements of s for which p holds into dst, which is
// left with exactly that many elements. dst may be s.
func (s *Seq[T]) FilterInto(dst *Seq[T], p compare.Predicate[T]) int {
	mustBeSet("filter", dst)
	n := len(s.values)
	dst.Resize(n)
	kept := narray.Filter(s.values, dst.values, p, n)
	dst.values = dst.values[:kept]
	return kept
}

// ReplaceInto is narray.Replace over the whole sequence; dst is resized to
// the length of s. It returns the number of substituted elements.
func (s *Seq[T]) ReplaceInto(dst *Seq[T], p compare.Predicate[T], substitution T) int {
	mustBeSet("replace", dst)
	dst.Resize(len(s.values))
	return narray.Replace(s.values, dst.values, p, substitution, len(s.values))
}

// ThresholdInto is narray.Threshold over the whole sequence; dst is resized
// to the length of s. It returns the number of elements kept above
// threshold.
func (s *Seq[T]) ThresholdInto(dst *Seq[T], threshold, substitution T) int {
	mustBeSet("threshold", dst)
	dst.Resize(len(s.values))
	return narray.Threshold(s.values, dst.values, threshold, substitution, len(s.values))
}

// FoldLeft left-folds the whole sequence.
func (s *Seq[T]) FoldLeft(mode fold.Mode, init T, opts ...fold.Option) T {
	return fold.Left(mode, init, s.values, 0, len(s.values)-1, opts...)
}

// FoldRight right-folds the whole sequence.
func (s *Seq[T]) FoldRight(mode fold.Mode, init T, opts ...fold.Option) T {
	return fold.Right(mode, init, s.values, 0, len(s.values)-1, opts...)
}
