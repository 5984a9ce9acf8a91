package fold

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-narray/internal/testutil"
)

var strategies = map[string][]Option{
	"iterative": nil,
	"recursive": {WithStrategy(Recursive)},
}

func TestLeftRight(t *testing.T) {
	a := []int{1, 2, 3}
	tests := []struct {
		mode        Mode
		init        int
		left, right int
	}{
		{Add, 0, 6, 6},
		{Subtract, 10, 4, -8},
		{Multiply, 1, 6, 6},
		{Multiply, 0, 0, 0},
	}

	for name, opts := range strategies {
		for _, tt := range tests {
			t.Run(name+"/"+tt.mode.String(), func(t *testing.T) {
				assert.Equal(t, tt.left, Left(tt.mode, tt.init, a, 0, 2, opts...))
				assert.Equal(t, tt.right, Right(tt.mode, tt.init, a, 0, 2, opts...))
			})
		}
	}
}

func TestIntegerDivide(t *testing.T) {
	a := []int{8, 4, 2}
	for name, opts := range strategies {
		assert.Equal(t, 1, Left(Divide, 64, a, 0, 2, opts...), name)
		assert.Equal(t, 4, Right(Divide, 1, a, 0, 2, opts...), name)
		assert.Equal(t, -2, Left(Divide, -9, []int{4}, 0, 0, opts...), "%s: truncates toward zero", name)
	}
}

func TestFloatAssociativity(t *testing.T) {
	a := []float64{8, 4, 2}

	for name, opts := range strategies {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, ((1.0/8)/4)/2, Left(Divide, 1.0, a, 0, 2, opts...))
			assert.Equal(t, 8/(4/(2/1.0)), Right(Divide, 1.0, a, 0, 2, opts...))
			assert.Equal(t, ((100.0-8)-4)-2, Left(Subtract, 100, a, 0, 2, opts...))
			assert.Equal(t, 8-(4-(2-100.0)), Right(Subtract, 100, a, 0, 2, opts...))
		})
	}
}

func TestSubRange(t *testing.T) {
	a := testutil.Ramp(0, 10)
	assert.Equal(t, 3+4+5, Left(Add, 0, a, 3, 5))
	assert.Equal(t, 7, Right(Add, 0, a, 7, 7))
	assert.Equal(t, 100-7, Left(Subtract, 100, a, 7, 7))
	assert.Equal(t, 7-100, Right(Subtract, 100, a, 7, 7))
}

func TestEmptyRangeReturnsInit(t *testing.T) {
	a := []float64{1, 2, 3}
	for _, m := range []Mode{Add, Subtract, Multiply, Divide, Mode(0), Mode(99)} {
		assert.Equal(t, 42.5, Left(m, 42.5, a, 2, 1), "mode %v", m)
		assert.Equal(t, 42.5, Right(m, 42.5, a, 2, 1), "mode %v", m)
	}
	assert.Equal(t, -3, Left[int](Add, -3, nil, 0, -1), "empty range is never bounds checked")
	assert.Equal(t, -3, Right[int](Add, -3, nil, 5, 0))
}

func TestUnknownModeReturnsZero(t *testing.T) {
	a := []int{1, 2, 3}
	for name, opts := range strategies {
		assert.Zero(t, Left(Mode(0), 7, a, 0, 2, opts...), name)
		assert.Zero(t, Right(Mode(5), 7, a, 0, 2, opts...), name)
		assert.Zero(t, Left(Mode(-1), 7.5, []float64{1}, 0, 0, opts...), name)
	}
}

func TestFloatDivideByZero(t *testing.T) {
	a := []float64{0, 2}
	assert.True(t, math.IsInf(Left(Divide, 1.0, a, 0, 1), 1))
	assert.True(t, math.IsNaN(Left(Divide, 0.0, a, 0, 0)))
	assert.True(t, math.IsInf(Right(Divide, 0.0, []float64{-3}, 0, 0), -1))
}

func TestIntegerDivideByZeroPanics(t *testing.T) {
	tests := []struct {
		name      string
		fold      func(opts ...Option) int
		direction string
		index     int
	}{
		{
			name:      "left zero element",
			fold:      func(opts ...Option) int { return Left(Divide, 100, []int{5, 0, 2}, 0, 2, opts...) },
			direction: "left",
			index:     1,
		},
		{
			name:      "right zero init",
			fold:      func(opts ...Option) int { return Right(Divide, 0, []int{5, 1, 2}, 0, 2, opts...) },
			direction: "right",
			index:     2,
		},
		{
			name:      "right truncated accumulator",
			fold:      func(opts ...Option) int { return Right(Divide, 4, []int{9, 1, 3}, 0, 2, opts...) },
			direction: "right",
			index:     1,
		},
	}

	for name, opts := range strategies {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				err := recoverError(t, func() { tt.fold(opts...) })
				require.ErrorIs(t, err, ErrDivideByZero)

				var dz *DivideByZeroError
				require.True(t, errors.As(err, &dz))
				assert.Equal(t, tt.direction, dz.Direction)
				assert.Equal(t, tt.index, dz.Index)
			})
		}
	}
}

func TestRangePreconditions(t *testing.T) {
	a := []int{1, 2, 3}
	assert.PanicsWithValue(t, "fold: left: range [0, 3] out of bounds for length 3", func() {
		Left(Add, 0, a, 0, 3)
	})
	assert.PanicsWithValue(t, "fold: right: range [-1, 2] out of bounds for length 3", func() {
		Right(Add, 0, a, -1, 2)
	})
}

func TestRecursiveDepthCap(t *testing.T) {
	a := testutil.Ramp(1, 100)

	err := recoverError(t, func() {
		Left(Add, 0, a, 0, 99, WithStrategy(Recursive), WithMaxDepth(50))
	})
	require.ErrorIs(t, err, ErrDepthExceeded)

	assert.Equal(t, 5050, Left(Add, 0, a, 0, 99, WithStrategy(Recursive), WithMaxDepth(100)))
	assert.Equal(t, 5050, Left(Add, 0, a, 0, 99, WithMaxDepth(1)), "cap applies only to Recursive")
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	cfg := applyOptions([]Option{WithStrategy(Strategy(9)), WithMaxDepth(-4), nil})
	assert.Equal(t, defaultConfig(), cfg)
}

// The iterative loop must reproduce the recursive definition exactly,
// including the rounding of non-associative float operations.
func TestIterativeMatchesRecursive(t *testing.T) {
	floats := testutil.NonZero(testutil.DeterministicNoise(17, 3, 200))
	ints := testutil.NonZero(testutil.DeterministicInts(17, 9, 200))
	rec := WithStrategy(Recursive)

	for _, m := range []Mode{Add, Subtract, Multiply, Divide} {
		for from := 0; from < 40; from += 7 {
			for to := from - 1; to < len(floats); to += 13 {
				testutil.RequireSameBits(t, Left(m, 1.5, floats, from, to, rec), Left(m, 1.5, floats, from, to))
				testutil.RequireSameBits(t, Right(m, 1.5, floats, from, to, rec), Right(m, 1.5, floats, from, to))

				if m == Divide {
					continue
				}
				require.Equal(t, Left(m, 3, ints, from, to, rec), Left(m, 3, ints, from, to))
				require.Equal(t, Right(m, 3, ints, from, to, rec), Right(m, 3, ints, from, to))
			}
		}
	}
}

func TestLargeRangeIterative(t *testing.T) {
	a := testutil.Sentinel(1, 1<<20)
	assert.Equal(t, 1<<20, Left(Add, 0, a, 0, len(a)-1))
	assert.Equal(t, 0, Right(Subtract, 0, a, 0, len(a)-1))
}

func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}
