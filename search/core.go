package search

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/exprchart/engine/bracket"
	"github.com/exprchart/engine/chart"
	"github.com/exprchart/engine/pad"
	"github.com/exprchart/engine/stepgraph"
)

// Search finds the cheapest sequence of graph-link applications that
// reproduces stream's row-by-row arrow requirements, starting from the
// pad's neutral stance. It returns UnreachableError when some row admits
// no link from any surviving frontier state.
//
// ctx is checked for cancellation between rows, never mid-row; a nil ctx
// is treated as context.Background(). Callers that want a wall-clock
// budget should use context.WithTimeout.
func Search(ctx context.Context, graph *stepgraph.Graph, d *pad.Data, stream *chart.Stream, method bracket.Method) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()
	rows := stream.Rows()
	if len(rows) == 0 {
		return &Result{}, nil
	}

	neutral := stepgraph.NeutralState(d)
	startIdx, ok := graph.IndexOf(neutral)
	if !ok {
		return nil, fmt.Errorf("search: graph %q has no neutral start state", graph.ChartType)
	}

	mineLanes := imminentMineLanes(rows, stream.Mines())

	start := newStartNode(startIdx)
	best := map[dedupKey]*node{start.key(): start}

	var fr frontier
	heap.Init(&fr)
	heap.Push(&fr, &frontierItem{n: start})
	seq := 1

	deadEndRow := -1
	var deadEndRequired []int
	var deadEndTick int

	for fr.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		item := heap.Pop(&fr).(*frontierItem)
		cur := item.n

		if cur.row == len(rows) {
			slog.Info("chart expressed",
				"chartType", graph.ChartType,
				"rows", len(rows),
				"steps", len(cur.steps),
				"bracketMethod", method,
				"elapsed", time.Since(started),
			)
			return &Result{Steps: cur.steps, Cost: cur.cost}, nil
		}

		if existing := best[cur.key()]; existing != cur {
			// A cheaper path to this (row, state, holds) triple already won;
			// this entry is stale, drop it.
			continue
		}

		row := rows[cur.row]
		required := requiredClaims(row)
		from := graph.Nodes[cur.stateIdx]

		slog.Debug("expanding row",
			"row", cur.row,
			"tick", row.Tick,
			"neighbors", len(graph.Neighbors(cur.stateIdx)),
		)

		expandedAny := false
		for _, e := range graph.Neighbors(cur.stateIdx) {
			link := graph.Links[e.LinkIdx]
			to := graph.Nodes[e.To]

			cells, ok := admits(link, from, to, cur.holdBitmap, required, method)
			if !ok {
				continue
			}
			expandedAny = true

			delta, holdBitmap, holdKind, streakFoot, streakLen, releasedAt := applyEdge(cur, d, from, to, cells, row, required, mineLanes[cur.row])

			newSteps := make([]StepEvent, len(cur.steps)+1)
			copy(newSteps, cur.steps)
			newSteps[len(cur.steps)] = StepEvent{
				Row:           cur.row,
				Tick:          row.Tick,
				Link:          link,
				InstanceTypes: instanceTypesFromCells(cells, holdKind),
				Lanes:         lanesFromCells(cells),
			}

			nxt := &node{
				row:        cur.row + 1,
				stateIdx:   e.To,
				holdBitmap: holdBitmap,
				holdKind:   holdKind,
				cost:       cur.cost.Add(delta),
				steps:      newSteps,
				streakFoot: streakFoot,
				streakLen:  streakLen,
				releasedAt: releasedAt,
			}

			k := nxt.key()
			if ex, ok := best[k]; ok && !nxt.cost.Less(ex.cost) {
				continue
			}
			best[k] = nxt
			seq++
			heap.Push(&fr, &frontierItem{n: nxt, seq: seq})
		}

		if !expandedAny && cur.row >= deadEndRow {
			deadEndRow = cur.row
			deadEndTick = row.Tick
			deadEndRequired = deadEndRequired[:0]
			for _, c := range required {
				deadEndRequired = append(deadEndRequired, c.lane)
			}
		}
	}

	if deadEndRow >= 0 {
		slog.Warn("chart unreachable",
			"chartType", graph.ChartType,
			"row", deadEndRow,
			"tick", deadEndTick,
			"bracketMethod", method,
		)
		return nil, &UnreachableError{Row: deadEndRow, Tick: deadEndTick, Required: deadEndRequired}
	}
	return nil, fmt.Errorf("search: frontier exhausted without reaching the final row")
}

// ExpressWithRetry runs Search under method, and — per the engine's error
// recovery policy — retries once with Balanced bracket parsing if the
// first attempt was under NoBrackets and came back Unreachable.
func ExpressWithRetry(ctx context.Context, graph *stepgraph.Graph, d *pad.Data, stream *chart.Stream, method bracket.Method) (*Result, error) {
	result, err := Search(ctx, graph, d, stream, method)
	if err == nil {
		return result, nil
	}
	var unreachable *UnreachableError
	if !asUnreachable(err, &unreachable) || method != bracket.NoBrackets {
		return nil, err
	}
	slog.Info("retrying with balanced bracket parsing after an unreachable row",
		"chartType", graph.ChartType,
		"row", unreachable.Row,
		"tick", unreachable.Tick,
	)
	return Search(ctx, graph, d, stream, bracket.Balanced)
}

func asUnreachable(err error, target **UnreachableError) bool {
	u, ok := err.(*UnreachableError)
	if ok {
		*target = u
	}
	return ok
}

func instanceTypesFromCells(cells []claimedCell, holdKind [2][2]stepgraph.InstanceStepType) [2][2]stepgraph.InstanceStepType {
	var it [2][2]stepgraph.InstanceStepType
	for _, c := range cells {
		it[c.foot][c.portion] = holdKind[c.foot][c.portion]
	}
	return it
}

func lanesFromCells(cells []claimedCell) [2][2]int {
	lanes := [2][2]int{{-1, -1}, {-1, -1}}
	for _, c := range cells {
		lanes[c.foot][c.portion] = c.lane
	}
	return lanes
}
