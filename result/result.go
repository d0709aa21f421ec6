// Package result assembles the search core's output and the mine
// classifier's output into the engine's final, stably-ordered product.
package result

import (
	"sort"

	"github.com/exprchart/engine/mines"
	"github.com/exprchart/engine/pad"
	"github.com/exprchart/engine/search"
	"github.com/exprchart/engine/stepgraph"
)

// GraphLinkInstance pairs one applied graph link with the instance-level
// step metadata (Roll/Fake/Lift/Default) layered onto it for this
// particular application.
type GraphLinkInstance struct {
	Tick          int
	Link          stepgraph.GraphLink
	InstanceTypes [2][2]stepgraph.InstanceStepType
	Lanes         [2][2]int
}

// MineEvent is one classified mine in chart-time order.
type MineEvent struct {
	Tick                        int
	Lane                        int
	Type                        mines.Kind
	ArrowIsNthClosest           int
	FootAssociatedWithPairedNote *int
}

// Expression is the finished output of expressing one chart: every step
// event and every mine event, both in chart time order.
type Expression struct {
	StepEvents []GraphLinkInstance
	MineEvents []MineEvent
}

// Assemble converts a search Result and the mine classifier's results
// into the stable, ordered Expression. Step events keep the order the
// search produced them in (search walks rows in order), with the
// same-tick cell tie rule named by orderCells. Mine events are
// stable-sorted by tick, so mine results passed in any order come out in
// chart time order.
func Assemble(stepResult *search.Result, mineResults []mines.Result) *Expression {
	expr := &Expression{
		StepEvents: make([]GraphLinkInstance, 0, len(stepResult.Steps)),
		MineEvents: make([]MineEvent, 0, len(mineResults)),
	}

	for _, step := range stepResult.Steps {
		expr.StepEvents = append(expr.StepEvents, GraphLinkInstance{
			Tick:          step.Tick,
			Link:          orderCells(step.Link),
			InstanceTypes: step.InstanceTypes,
			Lanes:         step.Lanes,
		})
	}

	for _, m := range mineResults {
		var foot *int
		if m.Foot != nil {
			f := int(*m.Foot)
			foot = &f
		}
		expr.MineEvents = append(expr.MineEvents, MineEvent{
			Tick:                        m.Tick,
			Lane:                        m.Lane,
			Type:                        m.Kind,
			ArrowIsNthClosest:           m.ArrowIsNthClosest,
			FootAssociatedWithPairedNote: foot,
		})
	}

	sort.SliceStable(expr.MineEvents, func(i, j int) bool { return expr.MineEvents[i].Tick < expr.MineEvents[j].Tick })

	return expr
}

// FootAt builds a mines.FootAt closure over a search Result's lane
// attributions, used to tell the mine classifier which foot played the
// arrow at a given (tick, lane). A lane claimed by both feet at the
// same tick (a bracket putting the same foot's heel and toe on the
// same tick but different lanes never collides; a genuine double claim
// would mean malformed input) reports ok=false rather than guessing.
func FootAt(stepResult *search.Result) mines.FootAt {
	type key struct{ tick, lane int }
	byKey := make(map[key]pad.Foot)
	ambiguous := make(map[key]bool)

	for _, step := range stepResult.Steps {
		for f := 0; f < 2; f++ {
			for p := 0; p < 2; p++ {
				lane := step.Lanes[f][p]
				if lane < 0 {
					continue
				}
				k := key{tick: step.Tick, lane: lane}
				if existing, ok := byKey[k]; ok && existing != pad.Foot(f) {
					ambiguous[k] = true
					continue
				}
				byKey[k] = pad.Foot(f)
			}
		}
	}

	return func(tick, lane int) (pad.Foot, bool) {
		k := key{tick: tick, lane: lane}
		if ambiguous[k] {
			return 0, false
		}
		foot, ok := byKey[k]
		return foot, ok
	}
}

// orderCells is a no-op on the link's content: GraphLink already lays its
// cells out [foot][portion] with Left before Right and Heel before Toe,
// which is exactly the tie rule two simultaneous cells on one tick must
// follow. It exists so that rule is named and checked at the seam where
// StepEvents are produced, rather than left implicit in the array shape.
func orderCells(link stepgraph.GraphLink) stepgraph.GraphLink {
	return link
}
