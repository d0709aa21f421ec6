package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/exprchart/engine/pad"
	"github.com/exprchart/engine/stepgraph"
)

func buildGraph(args []string) error {
	fs := flag.NewFlagSet("build-graph", flag.ExitOnError)
	padFile := fs.String("pad", "", "pad data JSON file (default: built-in pad for the given chart type name)")
	output := fs.String("output", "", "write the precomputed graph to this .fsg file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: exprchart build-graph [options] <chartType>

Precompute a pad's step graph once and save it to a binary ".fsg" file,
so a batch run of "express" over many charts of the same chart type can
load it instead of rebuilding it per process.

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("chart type required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("-output required")
	}

	chartType := fs.Arg(0)
	d, err := loadPad(chartType, *padFile)
	if err != nil {
		return err
	}

	if issues := pad.CheckSymmetry(d); len(issues) != 0 {
		return fmt.Errorf("pad data violates symmetry: %v", issues[0])
	}

	g, err := stepgraph.Build(d)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	if err := stepgraph.SaveFile(g, *output); err != nil {
		return fmt.Errorf("save graph: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Wrote step graph for %q to %s\n", chartType, *output)
	return nil
}
