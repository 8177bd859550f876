package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/grindlemire/go-rect/pkg/debug"
	"github.com/grindlemire/go-rect/pkg/geom"
)

// runOffset implements the offset subcommand.
func runOffset(args []string, w io.Writer) error {
	verbose, vals, err := parseArgs("offset", args, "L T R B DX DY")
	if err != nil {
		return err
	}

	r := geom.NewRect(vals[0], vals[1], vals[2], vals[3])
	before := r
	r.Offset(vals[4], vals[5])
	debug.Log("offset {%v} by (%g, %g) -> {%v}", before, vals[4], vals[5], r)

	printResult(w, verbose, before, r)
	return nil
}

// runOffsetTo implements the offset-to subcommand.
func runOffsetTo(args []string, w io.Writer) error {
	verbose, vals, err := parseArgs("offset-to", args, "L T R B X Y")
	if err != nil {
		return err
	}

	r := geom.NewRect(vals[0], vals[1], vals[2], vals[3])
	before := r
	r.OffsetTo(vals[4], vals[5])
	debug.Log("offset-to {%v} at (%g, %g) -> {%v}", before, vals[4], vals[5], r)

	printResult(w, verbose, before, r)
	return nil
}

// runExample repositions {10, 14, 50, 73} to (15, 27).
func runExample(w io.Writer) error {
	r := geom.Rect{Left: 10, Top: 14, Right: 50, Bottom: 73}
	r.OffsetTo(15, 27)
	fmt.Fprintf(w, "rect: %v\n", r)
	return nil
}

// parseArgs expects exactly six numbers, optionally preceded or followed by -v.
func parseArgs(command string, args []string, shape string) (bool, [6]float32, error) {
	var vals [6]float32
	verbose := false
	var nums []string

	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			nums = append(nums, arg)
		}
	}

	if len(nums) != len(vals) {
		return false, vals, fmt.Errorf("%s expects %s, got %d values", command, shape, len(nums))
	}

	for i, s := range nums {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return false, vals, fmt.Errorf("%s: argument %d: %w", command, i+1, err)
		}
		vals[i] = float32(f)
	}
	return verbose, vals, nil
}

func printResult(w io.Writer, verbose bool, before, after geom.Rect) {
	if verbose {
		fmt.Fprintf(w, "before: %v (%g x %g)\n", before, before.Width(), before.Height())
	}
	fmt.Fprintf(w, "rect: %v\n", after)
	if verbose {
		fmt.Fprintf(w, "size: %g x %g\n", after.Width(), after.Height())
	}
}
