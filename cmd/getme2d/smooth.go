package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/getme2d/mesh"
	"github.com/katalvlaran/getme2d/meshgen"
	"github.com/katalvlaran/getme2d/meshio"
	"github.com/katalvlaran/getme2d/report"
	"github.com/katalvlaran/getme2d/smoothing"
)

func runSmooth(args []string) error {
	fs := flag.NewFlagSet("smooth", flag.ExitOnError)
	algo := fs.String("algo", "getme", "one of: laplace, smart-laplace, basic-getme, getme-sim, getme-seq, getme")
	maxIterations := fs.Int("max-iterations", 0, "override the algorithm's default max iteration count (0 = use default)")
	bookExamples := fs.Bool("book-examples", false, "use book-example transformation angles instead of generic pi/n")
	fan := fs.Int("gen-fan", 0, "instead of reading in.mesh, generate a regular polygon fan with this many rim nodes")
	preset := fs.String("preset", "", "YAML meshgen.Preset file customizing --gen-fan's shape")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var m *mesh.PolygonalMesh
	var outPath string
	if *fan > 0 {
		if fs.NArg() != 1 {
			return fmt.Errorf("smooth --gen-fan: expected out.mesh, got %d positional arguments", fs.NArg())
		}
		outPath = fs.Arg(0)

		var opts []meshgen.Option
		if *preset != "" {
			f, err := os.Open(*preset)
			if err != nil {
				return err
			}
			p, err := meshgen.LoadPreset(f)
			f.Close()
			if err != nil {
				return err
			}
			opts = p.Options()
		}
		generated, err := meshgen.RegularPolygonFan(*fan, opts...)
		if err != nil {
			return err
		}
		m = generated
	} else {
		if fs.NArg() != 2 {
			return fmt.Errorf("smooth: expected in.mesh out.mesh, got %d positional arguments", fs.NArg())
		}
		var inPath string
		inPath, outPath = fs.Arg(0), fs.Arg(1)

		read, err := readMeshFile(inPath)
		if err != nil {
			return err
		}
		m = read
	}

	transformationSet := smoothing.GenericTransformations
	if *bookExamples {
		transformationSet = smoothing.BookExampleTransformations
	}

	log := report.NewLogger()
	ctx := context.Background()

	switch *algo {
	case "laplace":
		cfg := smoothing.NewBasicLaplaceConfig(0.0, maxIterationsOption(smoothing.WithBasicLaplaceMaxIterations, *maxIterations)...)
		result, err := smoothing.BasicLaplace(ctx, m, cfg)
		if err != nil {
			return err
		}
		report.SmoothingResult(log, result)
	case "smart-laplace":
		cfg := smoothing.NewSmartLaplaceConfig(maxIterationsOption(smoothing.WithSmartLaplaceMaxIterations, *maxIterations)...)
		result, err := smoothing.SmartLaplace(ctx, m, cfg)
		if err != nil {
			return err
		}
		report.SmoothingResult(log, result)
	case "basic-getme":
		cfg, err := smoothing.NewBasicGetmeSimultaneousConfig(0.0, m.MaximalPolygonSize(), transformationSet, maxIterationsOption(smoothing.WithBasicGetmeSimultaneousMaxIterations, *maxIterations)...)
		if err != nil {
			return err
		}
		result, err := smoothing.BasicGetmeSimultaneous(ctx, m, cfg)
		if err != nil {
			return err
		}
		report.SmoothingResult(log, result)
	case "getme-sim":
		cfg, err := smoothing.NewGetmeSimultaneousConfig(m.MaximalPolygonSize(), transformationSet, maxIterationsOption(smoothing.WithGetmeSimultaneousMaxIterations, *maxIterations)...)
		if err != nil {
			return err
		}
		result, err := smoothing.GetmeSimultaneous(ctx, m, cfg)
		if err != nil {
			return err
		}
		report.SmoothingResult(log, result)
	case "getme-seq":
		cfg, err := smoothing.NewGetmeSequentialConfig(m.MaximalPolygonSize(), transformationSet, maxIterationsOption(smoothing.WithGetmeSequentialMaxIterations, *maxIterations)...)
		if err != nil {
			return err
		}
		result, err := smoothing.GetmeSequential(ctx, m, cfg)
		if err != nil {
			return err
		}
		report.SmoothingResult(log, result)
	case "getme":
		cfg, err := smoothing.NewGetmeConfig(m.MaximalPolygonSize(), transformationSet)
		if err != nil {
			return err
		}
		result, err := smoothing.Getme(ctx, m, cfg)
		if err != nil {
			return err
		}
		report.GetmeResult(log, result)
	default:
		return fmt.Errorf("smooth: unknown --algo=%q", *algo)
	}

	return writeMeshFile(outPath, m)
}

// maxIterationsOption returns a single-element option slice applying with
// to override, or an empty slice to keep the algorithm's default, so every
// algorithm branch above can share the same --max-iterations flag without
// each needing its own zero-value sentinel check.
func maxIterationsOption[Opt any](with func(int) Opt, override int) []Opt {
	if override <= 0 {
		return nil
	}
	return []Opt{with(override)}
}

func readMeshFile(path string) (*mesh.PolygonalMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return meshio.Read(f)
}

func writeMeshFile(path string, m *mesh.PolygonalMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return meshio.Write(f, m, true)
}
