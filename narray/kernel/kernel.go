// Package kernel provides SIMD-dispatched float64 fast paths for common
// narray workloads.
//
// The kernels are backed by algo-vecmath, which selects AVX2, SSE2, NEON
// or pure Go code at runtime. They follow the narray conventions (explicit
// count, checked before anything is read or written) but make no promise
// about evaluation order: Sum and Dot may reassociate additions and can
// differ from fold.Left(fold.Add, ...) in the last bits. Use package fold
// when the exact left-to-right result matters.
package kernel

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-narray/internal/check"
)

const pkg = "kernel"

// Sum returns the sum of a[:n]. Returns 0 when n is 0.
func Sum(a []float64, n int) float64 {
	check.Count(pkg, "sum", "a", a, n)
	return vecmath.Sum(a[:n])
}

// MaxAbs returns the largest absolute value in a[:n]. Returns 0 when n is
// 0.
func MaxAbs(a []float64, n int) float64 {
	check.Count(pkg, "maxabs", "a", a, n)
	return vecmath.MaxAbs(a[:n])
}

// Dot returns the dot product of a[:n] and b[:n].
func Dot(a, b []float64, n int) float64 {
	check.Count(pkg, "dot", "a", a, n)
	check.Count(pkg, "dot", "b", b, n)
	return vecmath.DotProduct(a[:n], b[:n])
}

// Scale writes src[i]*k to dst[i] for every i in [0, n) and returns n.
// dst may alias src.
func Scale(dst, src []float64, k float64, n int) int {
	check.Count(pkg, "scale", "dst", dst, n)
	check.Count(pkg, "scale", "src", src, n)
	vecmath.ScaleBlock(dst[:n], src[:n], k)
	return n
}

// Add writes a[i]+b[i] to dst[i] for every i in [0, n) and returns n.
func Add(dst, a, b []float64, n int) int {
	check.Count(pkg, "add", "dst", dst, n)
	check.Count(pkg, "add", "a", a, n)
	check.Count(pkg, "add", "b", b, n)
	vecmath.AddBlock(dst[:n], a[:n], b[:n])
	return n
}

// Level returns the widest SIMD level the kernels can use on this CPU.
func Level() cpu.SIMDLevel {
	f := cpu.DetectFeatures()
	switch {
	case f.ForceGeneric:
		return cpu.SIMDNone
	case f.HasAVX2:
		return cpu.SIMDAVX2
	case f.HasNEON:
		return cpu.SIMDNEON
	case f.HasSSE2:
		return cpu.SIMDSSE2
	default:
		return cpu.SIMDNone
	}
}

// Features describes the kernel dispatch target, e.g. "amd64/AVX2".
func Features() string {
	return cpu.DetectFeatures().Architecture + "/" + Level().String()
}
