package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps. An eps of 0 demands exact
// equality; NaN never matches.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] == want[i] {
			continue
		}
		if diff := math.Abs(got[i] - want[i]); !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSameBits fails t unless got and want have the same IEEE 754 bit
// pattern. Unlike ==, it distinguishes -0 from +0 and matches a NaN
// against an identically produced NaN.
func RequireSameBits(t testing.TB, got, want float64) {
	t.Helper()
	if math.Float64bits(got) != math.Float64bits(want) {
		t.Fatalf("got %v (%#x), want %v (%#x)", got, math.Float64bits(got), want, math.Float64bits(want))
	}
}
