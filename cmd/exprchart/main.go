package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "express":
		if err := express(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate-pad":
		if err := validatePad(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "build-graph":
		if err := buildGraph(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect-mines":
		if err := inspectMines(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "bench":
		if err := bench(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("exprchart version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`exprchart - expressed-chart foot placement inference engine

Usage:
  exprchart <command> [options]

Commands:
  express        Infer foot placements and mine classifications for a chart
  validate-pad    Check a pad data file for symmetry/coverage violations
  build-graph     Precompute a pad's step graph and save it to a ".fsg" file
  inspect-mines   Express a chart and print only its mine classifications
  bench           Measure expression throughput over one or more chart files
  help            Show this help message
  version         Show version information

Examples:
  # Express a chart against the built-in dance-single pad
  exprchart express chart.json

  # Express against a custom pad, writing JSON to a file
  exprchart express --pad custom-pad.json --json --output result.json chart.json

  # Validate a custom pad layout
  exprchart validate-pad custom-pad.json

  # Precompute a step graph for reuse across a batch run
  exprchart build-graph --output dance-single.fsg dance-single

For command-specific help, run:
  exprchart <command> --help`)
}
