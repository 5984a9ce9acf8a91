package main

import (
	"fmt"

	"gopkg.in/urfave/cli.v1"

	"github.com/cwbudde/algo-narray/narray"
	"github.com/cwbudde/algo-narray/narray/fold"
	"github.com/cwbudde/algo-narray/narray/kernel"
	"github.com/cwbudde/algo-narray/narray/seq"
)

var (
	intFlag = cli.BoolFlag{
		Name:  "int",
		Usage: "parse values as integers instead of float64",
	}

	sortCommand = cli.Command{
		Name:      "sort",
		Usage:     "Sort values in place",
		ArgsUsage: "value ...",
		Flags: []cli.Flag{
			intFlag,
			cli.StringFlag{Name: "order", Value: "asc", Usage: "asc, desc, abs-asc or abs-desc"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Bool(intFlag.Name) {
				return runSort(ctx, intKind)
			}
			return runSort(ctx, floatKind)
		},
	}

	mapCommand = cli.Command{
		Name:      "map",
		Usage:     "Multiply every value by a constant",
		ArgsUsage: "value ...",
		Flags: []cli.Flag{
			intFlag,
			cli.StringFlag{Name: "scale", Value: "1", Usage: "factor applied to each value"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Bool(intFlag.Name) {
				return runMap(ctx, intKind)
			}
			return runMap(ctx, floatKind)
		},
	}

	filterCommand = cli.Command{
		Name:      "filter",
		Usage:     "Keep the values matching a predicate",
		ArgsUsage: "value ...",
		Flags: []cli.Flag{
			intFlag,
			cli.StringFlag{Name: "keep", Value: "positive", Usage: "positive, negative, zero, even or odd (even/odd need --int)"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Bool(intFlag.Name) {
				return runFilter(ctx, intKind)
			}
			return runFilter(ctx, floatKind)
		},
	}

	replaceCommand = cli.Command{
		Name:      "replace",
		Usage:     "Substitute the values matching a predicate",
		ArgsUsage: "value ...",
		Flags: []cli.Flag{
			intFlag,
			cli.StringFlag{Name: "when", Value: "negative", Usage: "predicate selecting the values to substitute"},
			cli.StringFlag{Name: "with", Value: "0", Usage: "substitution value"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Bool(intFlag.Name) {
				return runReplace(ctx, intKind)
			}
			return runReplace(ctx, floatKind)
		},
	}

	thresholdCommand = cli.Command{
		Name:      "threshold",
		Usage:     "Keep values above a threshold, substitute the rest",
		ArgsUsage: "value ...",
		Flags: []cli.Flag{
			intFlag,
			cli.StringFlag{Name: "above", Value: "0", Usage: "threshold; values strictly greater are kept"},
			cli.StringFlag{Name: "with", Value: "0", Usage: "substitution value"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Bool(intFlag.Name) {
				return runThreshold(ctx, intKind)
			}
			return runThreshold(ctx, floatKind)
		},
	}

	foldCommand = cli.Command{
		Name:      "fold",
		Usage:     "Reduce an index range to a single value",
		ArgsUsage: "value ...",
		Flags: []cli.Flag{
			intFlag,
			cli.StringFlag{Name: "mode", Value: "add", Usage: "add, subtract, multiply or divide"},
			cli.StringFlag{Name: "init", Value: "0", Usage: "initial value"},
			cli.BoolFlag{Name: "right", Usage: "fold from the right"},
			cli.BoolFlag{Name: "recursive", Usage: "evaluate the recurrence directly"},
			cli.IntFlag{Name: "from", Usage: "first index (default 0)"},
			cli.IntFlag{Name: "to", Usage: "last index (default last value)"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Bool(intFlag.Name) {
				return runFold(ctx, intKind)
			}
			return runFold(ctx, floatKind)
		},
	}

	cpuCommand = cli.Command{
		Name:  "cpu",
		Usage: "Print the SIMD target of the float64 kernels",
		Action: func(ctx *cli.Context) error {
			_, err := fmt.Fprintln(ctx.App.Writer, kernel.Features())
			return err
		},
	}
)

func runSort[T number](ctx *cli.Context, k *kind[T]) error {
	values, err := parseValues(ctx.Args(), k.parse)
	if err != nil {
		return err
	}
	c, err := comparatorByName[T](ctx.String("order"))
	if err != nil {
		return err
	}
	narray.Sort(values, len(values), c)
	return render(ctx.App.Writer, values, "sorted", len(values))
}

func runFilter[T number](ctx *cli.Context, k *kind[T]) error {
	values, err := parseValues(ctx.Args(), k.parse)
	if err != nil {
		return err
	}
	p, err := predicateByName[T](ctx.String("keep"))
	if err != nil {
		return err
	}
	kept := k.scratch.Get(len(values))
	defer k.scratch.Put(kept)
	n := seq.FromSlice(values).FilterInto(kept, p)
	return render(ctx.App.Writer, kept.Values(), "kept", n)
}

func runMap[T number](ctx *cli.Context, k *kind[T]) error {
	values, err := parseValues(ctx.Args(), k.parse)
	if err != nil {
		return err
	}
	factor, err := parseFlag(ctx, "scale", k.parse)
	if err != nil {
		return err
	}
	scaled := k.scratch.Get(len(values))
	defer k.scratch.Put(scaled)
	n := k.scale(scaled.Values(), values, factor)
	return render(ctx.App.Writer, scaled.Values(), "mapped", n)
}

func runReplace[T number](ctx *cli.Context, k *kind[T]) error {
	values, err := parseValues(ctx.Args(), k.parse)
	if err != nil {
		return err
	}
	p, err := predicateByName[T](ctx.String("when"))
	if err != nil {
		return err
	}
	with, err := parseFlag(ctx, "with", k.parse)
	if err != nil {
		return err
	}
	out := k.scratch.Get(len(values))
	defer k.scratch.Put(out)
	n := seq.FromSlice(values).ReplaceInto(out, p, with)
	return render(ctx.App.Writer, out.Values(), "replaced", n)
}

func runThreshold[T number](ctx *cli.Context, k *kind[T]) error {
	values, err := parseValues(ctx.Args(), k.parse)
	if err != nil {
		return err
	}
	above, err := parseFlag(ctx, "above", k.parse)
	if err != nil {
		return err
	}
	with, err := parseFlag(ctx, "with", k.parse)
	if err != nil {
		return err
	}
	out := k.scratch.Get(len(values))
	defer k.scratch.Put(out)
	n := seq.FromSlice(values).ThresholdInto(out, above, with)
	return render(ctx.App.Writer, out.Values(), "above threshold", n)
}

func runFold[T number](ctx *cli.Context, k *kind[T]) error {
	values, err := parseValues(ctx.Args(), k.parse)
	if err != nil {
		return err
	}
	mode, err := fold.ParseMode(ctx.String("mode"))
	if err != nil {
		return err
	}
	initial, err := parseFlag(ctx, "init", k.parse)
	if err != nil {
		return err
	}

	from, to := 0, len(values)-1
	if ctx.IsSet("from") {
		from = ctx.Int("from")
	}
	if ctx.IsSet("to") {
		to = ctx.Int("to")
	}
	if from <= to && (from < 0 || to >= len(values)) {
		return fmt.Errorf("range [%d, %d] out of bounds for %d values", from, to, len(values))
	}

	var opts []fold.Option
	if ctx.Bool("recursive") {
		opts = append(opts, fold.WithStrategy(fold.Recursive))
	}

	var result T
	if ctx.Bool("right") {
		result, err = safeFold(func() T { return fold.Right(mode, initial, values, from, to, opts...) })
	} else {
		result, err = safeFold(func() T { return fold.Left(mode, initial, values, from, to, opts...) })
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, result)
	return err
}

// safeFold converts the error panics of package fold into returned errors.
func safeFold[T number](fn func() T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	return fn(), nil
}
