package engine

import (
	"context"
	"testing"

	"github.com/exprchart/engine/bracket"
	"github.com/exprchart/engine/cache"
	"github.com/exprchart/engine/chart"
	"github.com/exprchart/engine/config"
	"github.com/exprchart/engine/pad"
)

func TestExpressAlternatingTapsProducesOrderedSteps(t *testing.T) {
	d := pad.NewDanceSingle()
	graphs := cache.NewGraphCache()

	events := []chart.Event{
		{Tick: 0, Lane: pad.DanceSingleLeft, Action: chart.Tap},
		{Tick: 10, Lane: pad.DanceSingleRight, Action: chart.Tap},
		{Tick: 20, Lane: pad.DanceSingleLeft, Action: chart.Tap},
	}
	stream, err := chart.Normalize(events, chart.Tempo{BPM: 120}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	expr, err := Express(context.Background(), graphs, d, stream, config.Default())
	if err != nil {
		t.Fatalf("Express: %v", err)
	}
	if len(expr.StepEvents) != 3 {
		t.Fatalf("expected 3 step events, got %d", len(expr.StepEvents))
	}
	if expr.StepEvents[0].Tick != 0 || expr.StepEvents[2].Tick != 20 {
		t.Errorf("expected step events in tick order, got %+v", expr.StepEvents)
	}
}

func TestExpressRecoversViaRetryPolicy(t *testing.T) {
	d := pad.NewDanceSingle()
	graphs := cache.NewGraphCache()

	events := []chart.Event{
		{Tick: 0, Lane: pad.DanceSingleLeft, Action: chart.Tap},
		{Tick: 0, Lane: pad.DanceSingleDown, Action: chart.Tap},
		{Tick: 0, Lane: pad.DanceSingleUp, Action: chart.Tap},
	}
	stream, err := chart.Normalize(events, chart.Tempo{BPM: 120}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	cfg := config.Default()
	cfg.DefaultBracketParsingMethod = bracket.NoBrackets
	cfg.BracketParsingDetermination = bracket.UseDefault
	// Disable the infeasibility override so Resolve actually hands NoBrackets
	// to the search core, forcing it down the ExpressWithRetry recovery path.
	cfg.UseAggressiveBracketsWhenMoreSimultaneousNotesThanCanBeCoveredWithoutBrackets = false

	expr, err := Express(context.Background(), graphs, d, stream, cfg)
	if err != nil {
		t.Fatalf("Express: %v", err)
	}
	if len(expr.StepEvents) != 1 {
		t.Fatalf("expected 1 (bracket) step event after retry, got %d", len(expr.StepEvents))
	}
}

func TestExpressClassifiesMines(t *testing.T) {
	d := pad.NewDanceSingle()
	graphs := cache.NewGraphCache()

	events := []chart.Event{
		{Tick: 0, Lane: pad.DanceSingleLeft, Action: chart.Tap},
		{Tick: 50, Lane: pad.DanceSingleLeft, Action: chart.Mine},
	}
	stream, err := chart.Normalize(events, chart.Tempo{BPM: 120}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	expr, err := Express(context.Background(), graphs, d, stream, config.Default())
	if err != nil {
		t.Fatalf("Express: %v", err)
	}
	if len(expr.MineEvents) != 1 {
		t.Fatalf("expected 1 mine event, got %d", len(expr.MineEvents))
	}
	if expr.MineEvents[0].FootAssociatedWithPairedNote == nil {
		t.Error("expected the mine to be associated with the foot that played the preceding tap")
	}
}
