package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/getme2d/distortion"
	"github.com/katalvlaran/getme2d/report"
)

func runDistort(args []string) error {
	fs := flag.NewFlagSet("distort", flag.ExitOnError)
	radius := fs.Float64("radius", 0.0, "maximum per-node random displacement")
	seed := fs.Int64("seed", 1, "seed for the reproducible random source")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("distort: expected in.mesh out.mesh, got %d positional arguments", fs.NArg())
	}
	if *radius <= 0.0 {
		return fmt.Errorf("distort: --radius must be > 0, got %v", *radius)
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	m, err := readMeshFile(inPath)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))
	if err := distortion.DistortNodesLocally(m, rng, *radius); err != nil {
		return err
	}

	report.Quality(report.NewLogger(), outPath, m.Quality())
	return writeMeshFile(outPath, m)
}
