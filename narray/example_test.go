package narray_test

import (
	"fmt"

	"github.com/cwbudde/algo-narray/narray"
	"github.com/cwbudde/algo-narray/narray/compare"
)

func ExampleThreshold() {
	src := []int{5, 1, 8, 2}
	dst := make([]int, len(src))

	kept := narray.Threshold(src, dst, 3, -1, len(src))
	fmt.Println(dst, kept)

	// Output:
	// [5 -1 8 -1] 2
}

func ExampleFilter() {
	src := []int{-2, 0, 3, -1, 5}
	dst := make([]int, len(src))

	n := narray.Filter(src, dst, compare.Positive[int], len(src))
	fmt.Println(dst[:n], n)

	// Output:
	// [0 3 5] 3
}

func ExampleSort() {
	a := []float64{-5, 3, -1}
	narray.Sort(a, len(a), compare.AscendingAbs[float64])
	fmt.Println(a)

	// Output:
	// [-1 3 -5]
}

func ExampleMap() {
	src := []int{1, 2, 3}
	dst := make([]int, len(src))

	n := narray.Map(src, dst, func(x int) int { return 10 * x }, len(src))
	fmt.Println(dst, n)

	// Output:
	// [10 20 30] 3
}
