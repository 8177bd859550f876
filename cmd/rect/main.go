// Package main provides a small CLI for repositioning rectangles.
//
// Usage:
//
//	rect offset L T R B DX DY       Move a rect by (DX, DY)
//	rect offset-to L T R B X Y      Move a rect's top-left corner to (X, Y)
//	rect example                    Run the documented offset-to example
//	rect help                       Show help
//
// Examples:
//
//	rect offset-to 10 14 50 73 15 27    prints "rect: 15, 27, 55, 86"
//	rect offset -v 0 0 10 10 -5 -5      also prints width and height
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-rect/pkg/debug"
)

const version = "0.1.0"

const usage = `rect - reposition axis-aligned rectangles

Usage:
  rect <command> [options] [args...]

Commands:
  offset      Move a rect by a delta: offset L T R B DX DY
  offset-to   Move a rect's top-left corner: offset-to L T R B X Y
  example     Run the documented example (10, 14, 50, 73 to 15, 27)
  version     Print version information
  help        Show this help message

Options:
  -v          Also print width and height before and after

Environment:
  RECT_DEBUG  Append debug messages to this file
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	defer debug.Close()

	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	command := args[0]
	args = args[1:]
	debug.Log("command %q args %q", command, args)

	var err error
	switch command {
	case "offset":
		err = runOffset(args, stdout)
	case "offset-to":
		err = runOffsetTo(args, stdout)
	case "example":
		err = runExample(stdout)
	case "version":
		fmt.Fprintf(stdout, "rect version %s\n", version)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(stderr, usage)
		return 1
	}

	if err != nil {
		debug.Log("%s failed: %v", command, err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
