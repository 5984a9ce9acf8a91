// Package testutil provides deterministic sequence generators and
// comparison helpers for narray tests.
package testutil

import "math/rand"

// DeterministicInts returns length integers in [-bound, bound] drawn from a
// fixed seed.
func DeterministicInts(seed int64, bound, length int) []int {
	out := make([]int, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Intn(2*bound+1) - bound
	}
	return out
}

// DeterministicNoise returns length floats in [-amplitude, amplitude)
// drawn from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NonZero returns a copy of s with every zero replaced by 1. Used for
// divisor sequences.
func NonZero[T int | float64](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		if v == 0 {
			v = 1
		}
		out[i] = v
	}
	return out
}

// Ramp returns [start, start+1, ..., start+length-1].
func Ramp(start, length int) []int {
	out := make([]int, length)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// Sentinel returns a slice of length n filled with v, for detecting
// elements an operation must not touch.
func Sentinel[T int | float64](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}
