package result

import (
	"testing"

	"github.com/exprchart/engine/mines"
	"github.com/exprchart/engine/pad"
	"github.com/exprchart/engine/search"
	"github.com/exprchart/engine/stepgraph"
)

func TestAssembleEmptyInputsProduceEmptyExpression(t *testing.T) {
	expr := Assemble(&search.Result{}, nil)
	if len(expr.StepEvents) != 0 || len(expr.MineEvents) != 0 {
		t.Fatalf("expected an empty expression, got %+v", expr)
	}
}

func TestAssemblePreservesStepOrderAndCarriesInstanceTypes(t *testing.T) {
	stepResult := &search.Result{
		Steps: []search.StepEvent{
			{Tick: 0, Link: stepgraph.GraphLink{Cells: [2][2]stepgraph.LinkCell{
				{{Valid: true, StepType: stepgraph.SameArrow, FootAction: stepgraph.Tap}, {}},
				{{}, {}},
			}}},
			{Tick: 10, Link: stepgraph.GraphLink{Cells: [2][2]stepgraph.LinkCell{
				{{}, {}},
				{{Valid: true, StepType: stepgraph.NewArrow, FootAction: stepgraph.Hold}, {}},
			}}, InstanceTypes: [2][2]stepgraph.InstanceStepType{
				{stepgraph.Default, stepgraph.Default},
				{stepgraph.Roll, stepgraph.Default},
			}},
		},
	}
	expr := Assemble(stepResult, nil)
	if len(expr.StepEvents) != 2 {
		t.Fatalf("expected 2 step events, got %d", len(expr.StepEvents))
	}
	if expr.StepEvents[0].Tick != 0 || expr.StepEvents[1].Tick != 10 {
		t.Fatalf("expected tick order preserved, got %+v", expr.StepEvents)
	}
	if expr.StepEvents[1].InstanceTypes[pad.Right][pad.Heel] != stepgraph.Roll {
		t.Errorf("expected the roll instance type to carry through, got %v", expr.StepEvents[1].InstanceTypes[pad.Right][pad.Heel])
	}
}

func TestFootAtResolvesLaneAtTick(t *testing.T) {
	stepResult := &search.Result{
		Steps: []search.StepEvent{
			{Tick: 0, Lanes: [2][2]int{{3, -1}, {-1, -1}}},
			{Tick: 10, Lanes: [2][2]int{{-1, -1}, {1, -1}}},
		},
	}
	footAt := FootAt(stepResult)

	if f, ok := footAt(0, 3); !ok || f != pad.Left {
		t.Errorf("footAt(0, 3) = %v, %v; want Left, true", f, ok)
	}
	if f, ok := footAt(10, 1); !ok || f != pad.Right {
		t.Errorf("footAt(10, 1) = %v, %v; want Right, true", f, ok)
	}
	if _, ok := footAt(10, 3); ok {
		t.Error("expected no match for an unclaimed (tick, lane) pair")
	}
}

func TestFootAtReportsAmbiguousDoubleClaim(t *testing.T) {
	stepResult := &search.Result{
		Steps: []search.StepEvent{
			{Tick: 0, Lanes: [2][2]int{{5, -1}, {5, -1}}},
		},
	}
	footAt := FootAt(stepResult)
	if _, ok := footAt(0, 5); ok {
		t.Error("expected a lane claimed by both feet at the same tick to be ambiguous")
	}
}

func TestAssembleSortsMineEventsByTick(t *testing.T) {
	left := pad.Left
	mineResults := []mines.Result{
		{Tick: 50, Lane: 0, Kind: mines.AfterArrow, ArrowIsNthClosest: 0, Foot: &left},
		{Tick: 10, Lane: 1, Kind: mines.NoArrow, ArrowIsNthClosest: mines.InvalidArrowIndex},
	}
	expr := Assemble(&search.Result{}, mineResults)
	if len(expr.MineEvents) != 2 {
		t.Fatalf("expected 2 mine events, got %d", len(expr.MineEvents))
	}
	if expr.MineEvents[0].Tick != 10 || expr.MineEvents[1].Tick != 50 {
		t.Fatalf("expected mine events sorted by tick, got %+v", expr.MineEvents)
	}
	if expr.MineEvents[1].FootAssociatedWithPairedNote == nil || *expr.MineEvents[1].FootAssociatedWithPairedNote != int(pad.Left) {
		t.Errorf("expected the after-arrow mine's foot to carry through, got %+v", expr.MineEvents[1].FootAssociatedWithPairedNote)
	}
	if expr.MineEvents[0].FootAssociatedWithPairedNote != nil {
		t.Errorf("expected the no-arrow mine to have no associated foot")
	}
}
