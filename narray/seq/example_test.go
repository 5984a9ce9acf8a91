package seq_test

import (
	"fmt"

	"github.com/cwbudde/algo-narray/narray/compare"
	"github.com/cwbudde/algo-narray/narray/fold"
	"github.com/cwbudde/algo-narray/narray/seq"
)

func ExampleSeq() {
	s := seq.FromSlice([]int{-2, 7, 0, -5, 4})
	kept := seq.New[int](0)

	s.FilterInto(kept, compare.Positive[int])
	kept.Sort(compare.Descending[int])

	fmt.Println(kept.Values(), kept.Len())
	fmt.Println(kept.FoldLeft(fold.Add, 0))

	// Output:
	// [7 4 0] 3
	// 11
}
