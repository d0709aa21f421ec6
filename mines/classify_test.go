package mines

import (
	"testing"

	"github.com/exprchart/engine/chart"
	"github.com/exprchart/engine/pad"
)

func noFoot(int, int) (pad.Foot, bool) { return 0, false }

func TestClassifyNoArrowOnUntouchedLane(t *testing.T) {
	events := []chart.Event{
		{Tick: 0, Lane: 0, Action: chart.Tap},
		{Tick: 10, Lane: 2, Action: chart.Mine},
	}
	s, err := chart.Normalize(events, chart.Tempo{BPM: 120}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	results := Classify(s, noFoot)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Kind != NoArrow || results[0].ArrowIsNthClosest != InvalidArrowIndex {
		t.Errorf("got %+v, want NoArrow/InvalidArrowIndex", results[0])
	}
}

func TestClassifyPrefersAfterArrowWhenBothExist(t *testing.T) {
	events := []chart.Event{
		{Tick: 0, Lane: 0, Action: chart.Tap},
		{Tick: 50, Lane: 0, Action: chart.Mine},
		{Tick: 100, Lane: 0, Action: chart.Tap},
	}
	s, err := chart.Normalize(events, chart.Tempo{BPM: 120}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	results := Classify(s, func(tick, lane int) (pad.Foot, bool) {
		if tick == 100 && lane == 0 {
			return pad.Left, true
		}
		return 0, false
	})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Kind != AfterArrow {
		t.Fatalf("expected AfterArrow, got %v", r.Kind)
	}
	if r.Foot == nil || *r.Foot != pad.Left {
		t.Fatalf("expected foot Left, got %v", r.Foot)
	}
}

func TestClassifyBeforeArrowWhenNoneAfter(t *testing.T) {
	events := []chart.Event{
		{Tick: 0, Lane: 0, Action: chart.Tap},
		{Tick: 50, Lane: 0, Action: chart.Mine},
	}
	s, err := chart.Normalize(events, chart.Tempo{BPM: 120}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	results := Classify(s, noFoot)
	if results[0].Kind != BeforeArrow {
		t.Fatalf("expected BeforeArrow, got %v", results[0].Kind)
	}
}

func TestClassifyTieNSharedAcrossLanes(t *testing.T) {
	// Two arrows equidistant from the mine, on different lanes: both
	// should contribute to the same rank bucket, and the chosen arrow's
	// rank should be 0 (closest distance seen anywhere).
	events := []chart.Event{
		{Tick: 40, Lane: 1, Action: chart.Tap},
		{Tick: 50, Lane: 0, Action: chart.Mine},
		{Tick: 60, Lane: 0, Action: chart.Tap},
	}
	s, err := chart.Normalize(events, chart.Tempo{BPM: 120}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	results := Classify(s, noFoot)
	if results[0].ArrowIsNthClosest != 0 {
		t.Fatalf("expected rank 0 for the closest tied distance, got %d", results[0].ArrowIsNthClosest)
	}
}
