// Package engine wires the pipeline together: step graph lookup, bracket
// policy resolution, the search core, mine classification, and result
// assembly. It is the one entry point the CLI and any other caller
// needs; every other package stays usable on its own.
package engine

import (
	"context"
	"fmt"

	"github.com/exprchart/engine/bracket"
	"github.com/exprchart/engine/cache"
	"github.com/exprchart/engine/chart"
	"github.com/exprchart/engine/config"
	"github.com/exprchart/engine/mines"
	"github.com/exprchart/engine/pad"
	"github.com/exprchart/engine/result"
	"github.com/exprchart/engine/search"
)

// Express runs the full pipeline for one chart: resolve the bracket
// method, fetch (or build) the pad's step graph from graphs, search for
// the cheapest step sequence, classify mines against it, and assemble
// the ordered result.
func Express(ctx context.Context, graphs *cache.GraphCache, d *pad.Data, stream *chart.Stream, cfg config.Expression) (*result.Expression, error) {
	graph, err := graphs.Get(d)
	if err != nil {
		return nil, fmt.Errorf("engine: fetch step graph for %q: %w", d.ChartType, err)
	}

	method := bracket.Resolve(cfg.Policy(), stream.Difficulty, stream)

	stepResult, err := search.ExpressWithRetry(ctx, graph, d, stream, method)
	if err != nil {
		return nil, fmt.Errorf("engine: search %q: %w", d.ChartType, err)
	}

	mineResults := mines.Classify(stream, result.FootAt(stepResult))

	return result.Assemble(stepResult, mineResults), nil
}
