package stepgraph

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/exprchart/engine/pad"
	"github.com/exprchart/engine/xerr"
)

// footOption is one self-contained way a single foot can act (or not
// act) within a combined link: which cells it fills and the resulting
// occupancy for its two portions.
type footOption struct {
	cells    [2]LinkCell
	portions [2]int
}

// Build constructs the full step graph for pad data d by breadth-first
// exploring body states from the neutral start (d.NeutralStance, or both
// feet off the pad if the pad declares none) until no new state is
// discovered, mirroring a fixpoint reachability search: states are the
// graph's "markings", graph links are its "transitions", and a state is
// only enqueued the first time it is seen.
func Build(d *pad.Data) (*Graph, error) {
	if issues := pad.CheckSymmetry(d); len(issues) != 0 {
		return nil, xerr.New("stepgraph.Build", "pad data violates symmetry: %v", issues[0])
	}

	g := NewGraph(d.ChartType)
	start := NeutralState(d)
	startIdx := g.AddNode(start)

	queued := bitset.New(uint(startIdx + 1))
	queued.Set(uint(startIdx))
	queue := []int{startIdx}
	for len(queue) > 0 {
		fromIdx := queue[0]
		queue = queue[1:]
		from := g.Nodes[fromIdx]

		leftOptions := singleFootOptions(d, pad.Left, from)
		rightOptions := singleFootOptions(d, pad.Right, from)

		for _, lo := range leftOptions {
			for _, ro := range rightOptions {
				if !lo.active() && !ro.active() {
					continue
				}
				link := GraphLink{Cells: [2][2]LinkCell{lo.cells, ro.cells}}
				if !link.Valid() {
					continue
				}
				to := BodyState{Portions: [2][2]int{lo.portions, ro.portions}}
				to.Crossed, to.Inverted = orientationFlags(link, from)

				toIdx := g.AddNode(to)
				linkIdx := g.AddLink(link)
				g.AddEdge(fromIdx, linkIdx, toIdx)

				if !queued.Test(uint(toIdx)) {
					queued.Set(uint(toIdx))
					queue = append(queue, toIdx)
				}
			}
		}
	}

	return g, nil
}

// NeutralState is the body state a chart's search begins from: each foot
// on its pad's natural ready stance (heel portion), or off the pad
// entirely if the pad data declares no neutral stance.
func NeutralState(d *pad.Data) BodyState {
	return BodyState{Portions: [2][2]int{
		{d.NeutralStance[pad.Left], NoArrow},
		{d.NeutralStance[pad.Right], NoArrow},
	}}
}

func (o footOption) active() bool {
	return o.cells[0].Valid || o.cells[1].Valid
}

// singleFootOptions enumerates every way foot f can act (including not
// acting at all) from the current body state.
func singleFootOptions(d *pad.Data, f pad.Foot, state BodyState) []footOption {
	heelArrow := state.Portions[f][pad.Heel]
	toeArrow := state.Portions[f][pad.Toe]
	otherFoot := f.Other()
	otherHeel := state.Portions[otherFoot][pad.Heel]
	otherToe := state.Portions[otherFoot][pad.Toe]

	var options []footOption

	// Do nothing: occupancy persists.
	options = append(options, footOption{portions: [2]int{heelArrow, toeArrow}})

	// Release whichever portions are currently occupied.
	if heelArrow != NoArrow {
		options = append(options, footOption{
			cells:    [2]LinkCell{{Valid: true, StepType: SameArrow, FootAction: Release}, {}},
			portions: [2]int{NoArrow, toeArrow},
		})
	}
	if toeArrow != NoArrow {
		options = append(options, footOption{
			cells:    [2]LinkCell{{}, {Valid: true, StepType: SameArrow, FootAction: Release}},
			portions: [2]int{heelArrow, NoArrow},
		})
	}

	// Single-portion steps on heel (the default portion for a plain
	// single-arrow step).
	for _, newArrow := range nextArrowCandidates(d, heelArrow) {
		st, ok := classifyPortion(d, f, pad.Heel, heelArrow, toeArrow, otherHeel, otherToe, newArrow)
		if !ok {
			continue
		}
		for _, action := range [2]FootAction{Tap, Hold} {
			options = append(options, footOption{
				cells:    [2]LinkCell{{Valid: true, StepType: st, FootAction: action}, {}},
				portions: [2]int{newArrow, toeArrow},
			})
		}
	}

	// Single-portion continuations on toe, only reachable once a bracket
	// hold has already placed the toe (otherwise toe is never the sole
	// actor — a fresh step always lands on heel by convention).
	if toeArrow != NoArrow {
		for _, newArrow := range nextArrowCandidates(d, toeArrow) {
			st, ok := classifyPortion(d, f, pad.Toe, toeArrow, heelArrow, otherHeel, otherToe, newArrow)
			if !ok {
				continue
			}
			for _, action := range [2]FootAction{Tap, Hold} {
				options = append(options, footOption{
					cells:    [2]LinkCell{{}, {Valid: true, StepType: st, FootAction: action}},
					portions: [2]int{heelArrow, newArrow},
				})
			}
		}
	}

	// Two-portion brackets: heel and toe both land this link on two
	// distinct, physically bracketable arrows.
	n := d.NumArrows
	for heelNew := 0; heelNew < n; heelNew++ {
		for toeNew := 0; toeNew < n; toeNew++ {
			if heelNew == toeNew {
				continue
			}
			if !d.BracketablePairingsOtherHeel[heelNew].Get(f, toeNew) {
				continue
			}
			if len(nextArrowCandidates(d, heelArrow)) > 0 && !contains(nextArrowCandidates(d, heelArrow), heelNew) {
				continue
			}
			if len(nextArrowCandidates(d, toeArrow)) > 0 && !contains(nextArrowCandidates(d, toeArrow), toeNew) {
				continue
			}
			heelKind := classifyBracketPortion(heelArrow, otherHeel, otherToe, heelNew)
			toeKind := classifyBracketPortion(toeArrow, otherHeel, otherToe, toeNew)
			st, ok := combineBracket(heelKind, toeKind)
			if !ok {
				continue
			}
			for _, heelAction := range [2]FootAction{Tap, Hold} {
				for _, toeAction := range [2]FootAction{Tap, Hold} {
					options = append(options, footOption{
						cells: [2]LinkCell{
							{Valid: true, StepType: st, FootAction: heelAction},
							{Valid: true, StepType: st, FootAction: toeAction},
						},
						portions: [2]int{heelNew, toeNew},
					})
				}
			}
		}
	}

	// Do nothing: occupancy persists. Listed last, so Build emits links
	// in which the left foot acts before links in which it stays put.
	options = append(options, footOption{portions: [2]int{heelArrow, toeArrow}})

	return options
}

// nextArrowCandidates lists every arrow reachable as this portion's next
// step: unconstrained if the portion has never been placed, otherwise
// filtered through ValidNextArrows.
func nextArrowCandidates(d *pad.Data, prevArrow int) []int {
	n := d.NumArrows
	candidates := make([]int, 0, n)
	for a2 := 0; a2 < n; a2++ {
		if prevArrow == NoArrow || d.ValidNextArrows[prevArrow][a2] {
			candidates = append(candidates, a2)
		}
	}
	return candidates
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// orientationFlags derives the crossed/inverted display flags for the
// resulting state from the step types just applied.
func orientationFlags(link GraphLink, from BodyState) (crossed, inverted bool) {
	for f := 0; f < 2; f++ {
		for p := 0; p < 2; p++ {
			c := link.Cells[f][p]
			if !c.Valid {
				continue
			}
			switch c.StepType {
			case CrossoverFront, CrossoverBehind, CrossoverBehindStretch:
				crossed = true
			case InvertFront, InvertBehind:
				crossed = true
				inverted = true
			}
		}
	}
	return crossed, inverted
}
