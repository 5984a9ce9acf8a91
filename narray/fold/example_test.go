package fold_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-narray/narray/fold"
)

func ExampleLeft() {
	a := []int{1, 2, 3}

	fmt.Println(fold.Left(fold.Add, 0, a, 0, 2))
	fmt.Println(fold.Left(fold.Subtract, 10, a, 0, 2))
	fmt.Println(fold.Right(fold.Subtract, 10, a, 0, 2))

	// Output:
	// 6
	// 4
	// -8
}

func ExampleParseMode() {
	m, err := fold.ParseMode("*")
	fmt.Println(m, err)

	_, err = fold.ParseMode("modulo")
	fmt.Println(errors.Is(err, fold.ErrUnknownMode))

	// Output:
	// multiply <nil>
	// true
}

func ExampleWithStrategy() {
	a := []float64{8, 4, 2}
	fmt.Println(fold.Right(fold.Divide, 1, a, 0, 2, fold.WithStrategy(fold.Recursive)))

	// Output:
	// 4
}
