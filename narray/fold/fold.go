package fold

import (
	"fmt"

	"github.com/cwbudde/algo-narray/internal/check"
	"github.com/cwbudde/algo-narray/narray/compare"
)

const (
	left  = "left"
	right = "right"
)

// Left folds a[from..to] from the left:
//
//	Left(m, init, a, from, to) = Left(m, init, a, from, to-1) op a[to]
//
// with Left(m, init, a, from, to) = init when from > to.
// A non-empty range must lie within a.
func Left[T compare.Number](mode Mode, init T, a []T, from, to int, opts ...Option) T {
	if from > to {
		return init
	}
	check.Range("fold", left, a, from, to)
	if !mode.Valid() {
		var zero T
		return zero
	}

	cfg := applyOptions(opts)
	if cfg.strategy == Recursive {
		checkDepth(cfg, from, to)
		return leftRecursive(mode, init, a, from, to)
	}

	acc := init
	for i := from; i <= to; i++ {
		acc = combine(mode, acc, a[i], left, i)
	}
	return acc
}

// Right folds a[from..to] from the right:
//
//	Right(m, init, a, from, to) = a[from] op Right(m, init, a, from+1, to)
//
// with Right(m, init, a, from, to) = init when from > to.
// A non-empty range must lie within a.
func Right[T compare.Number](mode Mode, init T, a []T, from, to int, opts ...Option) T {
	if from > to {
		return init
	}
	check.Range("fold", right, a, from, to)
	if !mode.Valid() {
		var zero T
		return zero
	}

	cfg := applyOptions(opts)
	if cfg.strategy == Recursive {
		checkDepth(cfg, from, to)
		return rightRecursive(mode, init, a, from, to)
	}

	acc := init
	for i := to; i >= from; i-- {
		acc = combine(mode, a[i], acc, right, i)
	}
	return acc
}

func leftRecursive[T compare.Number](mode Mode, init T, a []T, from, to int) T {
	if from > to {
		return init
	}
	return combine(mode, leftRecursive(mode, init, a, from, to-1), a[to], left, to)
}

func rightRecursive[T compare.Number](mode Mode, init T, a []T, from, to int) T {
	if from > to {
		return init
	}
	return combine(mode, a[from], rightRecursive(mode, init, a, from+1, to), right, from)
}

func checkDepth(cfg config, from, to int) {
	if n := to - from + 1; n > cfg.maxDepth {
		panic(fmt.Errorf("%w: range length %d exceeds %d", ErrDepthExceeded, n, cfg.maxDepth))
	}
}

// combine returns x op y. mode must be valid.
func combine[T compare.Number](mode Mode, x, y T, dir string, index int) T {
	switch mode {
	case Add:
		return x + y
	case Subtract:
		return x - y
	case Multiply:
		return x * y
	default:
		if y == 0 && integral[T]() {
			panic(&DivideByZeroError{Direction: dir, Index: index})
		}
		return x / y
	}
}

// integral reports whether T truncates division.
func integral[T compare.Number]() bool {
	var one T = 1
	return one/2 == 0
}
