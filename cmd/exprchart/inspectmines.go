package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/exprchart/engine/cache"
	"github.com/exprchart/engine/config"
	"github.com/exprchart/engine/engine"
)

func inspectMines(args []string) error {
	fs := flag.NewFlagSet("inspect-mines", flag.ExitOnError)
	padFile := fs.String("pad", "", "pad data JSON file (default: built-in pad for the chart's chartType)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: exprchart inspect-mines [options] <chart.json>

Express the chart and print only its mine classifications: tick, lane,
NoArrow/BeforeArrow/AfterArrow, and the rank of the paired note's
distance among the mine's distances to every arrow in the chart.

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

	graphs := cache.NewGraphCache()
	expr, err := engine.Express(context.Background(), graphs, d, stream, config.Default())
	if err != nil {
		return fmt.Errorf("express: %w", err)
	}

	out := stdout()
	if len(expr.MineEvents) == 0 {
		fmt.Fprintln(out, "no mines in this chart")
		return nil
	}
	for _, m := range expr.MineEvents {
		foot := "?"
		if m.FootAssociatedWithPairedNote != nil {
			if *m.FootAssociatedWithPairedNote == 0 {
				foot = "Left"
			} else {
				foot = "Right"
			}
		}
		fmt.Fprintf(out, "tick %6d lane %d: %-10s nth-closest=%d foot=%s\n",
			m.Tick, m.Lane, m.Type, m.ArrowIsNthClosest, foot)
	}
	return nil
}
