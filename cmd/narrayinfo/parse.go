package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/cwbudde/algo-narray/narray"
	"github.com/cwbudde/algo-narray/narray/compare"
	"github.com/cwbudde/algo-narray/narray/kernel"
	"github.com/cwbudde/algo-narray/narray/seq"
)

type number = compare.Number

type parser[T number] func(string) (T, error)

// kind bundles what a command needs to work on one element type.
type kind[T number] struct {
	parse   parser[T]
	scale   func(dst, src []T, k T) int
	scratch *seq.Pool[T]
}

const scratchRetain = 1 << 16

var (
	intKind = &kind[int]{
		parse: strconv.Atoi,
		scale: func(dst, src []int, k int) int {
			return narray.Map(src, dst, func(x int) int { return x * k }, len(src))
		},
		scratch: seq.NewPool[int](scratchRetain),
	}
	floatKind = &kind[float64]{
		parse: func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		},
		scale: func(dst, src []float64, k float64) int {
			return kernel.Scale(dst, src, k, len(src))
		},
		scratch: seq.NewPool[float64](scratchRetain),
	}
)

// parseValues parses every argument. Arguments may also hold several
// comma-separated values.
func parseValues[T number](args []string, parse parser[T]) ([]T, error) {
	var values []T
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := parse(field)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", field, err)
			}
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no values given")
	}
	return values, nil
}

func parseFlag[T number](ctx *cli.Context, name string, parse parser[T]) (T, error) {
	v, err := parse(strings.TrimSpace(ctx.String(name)))
	if err != nil {
		return v, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return v, nil
}

func comparatorByName[T number](name string) (compare.Comparator[T], error) {
	name = strings.ToLower(name)
	switch name {
	case "asc":
		return compare.Ascending[T], nil
	case "desc":
		return compare.Descending[T], nil
	case "abs-asc":
		return compare.AscendingAbs[T], nil
	case "abs-desc":
		return compare.DescendingAbs[T], nil
	}
	return nil, fmt.Errorf("unknown order %q (want asc, desc, abs-asc or abs-desc)", name)
}

func predicateByName[T number](name string) (compare.Predicate[T], error) {
	name = strings.ToLower(name)
	switch name {
	case "positive":
		return compare.Positive[T], nil
	case "negative":
		return compare.Negative[T], nil
	case "zero":
		return compare.Zero[T], nil
	case "even", "odd":
		// Parity is defined only for integers.
		var p any
		if name == "even" {
			p = compare.Predicate[int](compare.Even[int])
		} else {
			p = compare.Predicate[int](compare.Odd[int])
		}
		if pt, ok := p.(compare.Predicate[T]); ok {
			return pt, nil
		}
		return nil, fmt.Errorf("predicate %q needs --int", name)
	}
	return nil, fmt.Errorf("unknown predicate %q (want positive, negative, zero, even or odd)", name)
}

func render[T number](w io.Writer, values []T, label string, count int) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Index", "Value"})
	for i, v := range values {
		table.Append([]string{strconv.Itoa(i), fmt.Sprint(v)})
	}
	table.Render()
	_, err := fmt.Fprintf(w, "%s: %d\n", label, count)
	return err
}
