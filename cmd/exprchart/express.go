package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/exprchart/engine/bracket"
	"github.com/exprchart/engine/cache"
	"github.com/exprchart/engine/config"
	"github.com/exprchart/engine/engine"
	"github.com/exprchart/engine/enginelog"
	"github.com/exprchart/engine/result"
)

func express(args []string) error {
	fs := flag.NewFlagSet("express", flag.ExitOnError)
	padFile := fs.String("pad", "", "pad data JSON file (default: built-in pad for the chart's chartType)")
	outputJSON := fs.Bool("json", false, "output the expression as JSON")
	outputFile := fs.String("output", "", "write JSON output to file instead of stdout")
	logPath := fs.String("log", "", "append a summary row to this SQLite log file")
	timeout := fs.Duration("timeout", 0, "abort the search after this long (0 = no limit)")
	cfg := config.Default()
	cfg.RegisterFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: exprchart express [options] <chart.json>

Infer foot placements and mine classifications for a chart, against
either the built-in pad for its chartType or a custom pad file.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("chart file required")
	}

	chartType, stream, err := loadChartFile(fs.Arg(0))
	if err != nil {
		return err
	}
	d, err := loadPad(chartType, *padFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if *timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	graphs := cache.NewGraphCache()
	start := time.Now()
	expr, err := engine.Express(ctx, graphs, d, stream, cfg)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("express: %w", err)
	}

	if *logPath != "" {
		sink, err := enginelog.Open(*logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer sink.Close()
		// The logged method is the one bracket.Resolve picks before the
		// search; a retry under Balanced inside engine.Express is not
		// reflected here, and Retried is left false.
		method := bracket.Resolve(cfg.Policy(), stream.Difficulty, stream)
		if _, err := sink.Record(enginelog.Record{
			ChartType:      chartType,
			BracketMethod:  method.String(),
			StepCount:      len(expr.StepEvents),
			MineCount:      len(expr.MineEvents),
			DurationMillis: elapsed.Milliseconds(),
		}); err != nil {
			return fmt.Errorf("write log: %w", err)
		}
	}

	if *outputJSON || *outputFile != "" {
		data, err := json.MarshalIndent(expr, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		if *outputFile != "" {
			if err := os.WriteFile(*outputFile, data, 0644); err != nil {
				return fmt.Errorf("write file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Expression written to %s\n", *outputFile)
		} else {
			fmt.Println(string(data))
		}
		return nil
	}

	printExpression(chartType, expr, elapsed)
	return nil
}

func printExpression(chartType string, expr *result.Expression, elapsed time.Duration) {
	out := stdout()
	fmt.Fprintf(out, "=== %s ===\n", chartType)
	fmt.Fprintf(out, "Steps: %s   Mines: %s   Elapsed: %s\n\n",
		humanize.Comma(int64(len(expr.StepEvents))),
		humanize.Comma(int64(len(expr.MineEvents))),
		elapsed.Round(time.Millisecond))

	for _, step := range expr.StepEvents {
		fmt.Fprintf(out, "tick %6d  lanes=%v\n", step.Tick, step.Lanes)
	}
	for _, m := range expr.MineEvents {
		colour := ansiYellow
		if m.Type.String() == "NoArrow" {
			colour = ansiRed
		}
		fmt.Fprintf(out, "%smine tick %6d lane %d: %s%s\n", colour, m.Tick, m.Lane, m.Type, ansiReset)
	}
}
