// Command narrayinfo applies narray operations to numbers given on the
// command line and prints the resulting sequence as a table.
//
// Usage:
//
//	narrayinfo <command> [flags] [--] value ...
//
// Values are parsed as float64 unless --int is given. Place "--" before
// the values when any of them is negative.
//
// Examples:
//
//	narrayinfo sort --order abs-asc -- -5 3 -1
//	narrayinfo map --scale 0.5 -- -4 2 6
//	narrayinfo filter --int --keep even 1 2 3 4
//	narrayinfo threshold --above 3 --with -1 -- 5 1 8 2
//	narrayinfo fold --mode subtract --init 10 --right 1 2 3
//	narrayinfo cpu
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "narrayinfo"
	app.Usage = "apply numeric array operations to command-line values"
	app.HideVersion = true
	app.Commands = []cli.Command{
		sortCommand,
		mapCommand,
		filterCommand,
		replaceCommand,
		thresholdCommand,
		foldCommand,
		cpuCommand,
	}
	return app
}
