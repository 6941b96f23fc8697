// Command getme2d is a CLI driver wiring meshio, smoothing, distortion, and
// report: read (or generate) a mesh, run one operation, write the result or
// print its quality.
//
// Usage:
//
//	getme2d smooth --algo=ALGO [flags] in.mesh out.mesh
//	getme2d smooth --algo=ALGO --gen-fan=N [--preset=FILE] out.mesh
//	getme2d quality in.mesh
//	getme2d distort --radius=R [--seed=N] in.mesh out.mesh
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "getme2d:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand: expected smooth, quality, or distort")
	}

	switch args[0] {
	case "smooth":
		return runSmooth(args[1:])
	case "quality":
		return runQuality(args[1:])
	case "distort":
		return runDistort(args[1:])
	default:
		return fmt.Errorf("unknown subcommand %q: expected smooth, quality, or distort", args[0])
	}
}
