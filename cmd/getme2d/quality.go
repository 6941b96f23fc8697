package main

import (
	"flag"
	"fmt"

	"github.com/katalvlaran/getme2d/report"
)

func runQuality(args []string) error {
	fs := flag.NewFlagSet("quality", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("quality: expected in.mesh, got %d positional arguments", fs.NArg())
	}

	m, err := readMeshFile(fs.Arg(0))
	if err != nil {
		return err
	}

	report.Quality(report.NewLogger(), fs.Arg(0), m.Quality())
	return nil
}
