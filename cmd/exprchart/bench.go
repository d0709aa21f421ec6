package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/exprchart/engine/cache"
	"github.com/exprchart/engine/config"
	"github.com/exprchart/engine/engine"
)

func bench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	padFile := fs.String("pad", "", "pad data JSON file (default: built-in pad for each chart's chartType)")
	repeat := fs.Int("repeat", 1, "expression passes per chart file, to average out graph-cache warmup")
	cfg := config.Default()
	cfg.RegisterFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: exprchart bench [options] <chart.json>...

Measure expression throughput across one or more chart files, sharing a
single step graph cache the way a batch job would.

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("at least one chart file required")
	}

	runID := uuid.NewString()
	graphs := cache.NewGraphCache()
	out := stdout()
	fmt.Fprintf(out, "run %s: %s file(s), %d pass(es) each\n", runID, humanize.Comma(int64(fs.NArg())), *repeat)

	var total time.Duration
	var totalSteps, totalMines int64
	for _, path := range fs.Args() {
		chartType, stream, err := loadChartFile(path)
		if err != nil {
			return err
		}
		d, err := loadPad(chartType, *padFile)
		if err != nil {
			return err
		}

		var fileTotal time.Duration
		for i := 0; i < *repeat; i++ {
			start := time.Now()
			expr, err := engine.Express(context.Background(), graphs, d, stream, cfg)
			elapsed := time.Since(start)
			if err != nil {
				return fmt.Errorf("%s: express: %w", path, err)
			}
			fileTotal += elapsed
			totalSteps += int64(len(expr.StepEvents))
			totalMines += int64(len(expr.MineEvents))
		}
		total += fileTotal
		fmt.Fprintf(out, "  %-40s avg=%s\n", filepath.Base(path), (fileTotal / time.Duration(*repeat)).Round(time.Microsecond))
	}

	stats := graphs.Stats()
	fmt.Fprintf(out, "\ntotal: %s   steps=%s mines=%s   graph cache: %d built, %d hits, %d misses\n",
		total.Round(time.Millisecond), humanize.Comma(totalSteps), humanize.Comma(totalMines),
		stats.ChartTypesCached, stats.Hits, stats.Misses)
	return nil
}
