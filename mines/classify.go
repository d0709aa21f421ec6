// Package mines implements the post-pass that classifies each mine event
// relative to the arrows sharing its lane.
package mines

import (
	"sort"

	"github.com/exprchart/engine/chart"
	"github.com/exprchart/engine/pad"
)

// Kind is the closed set of mine classifications.
type Kind int

const (
	NoArrow Kind = iota
	BeforeArrow
	AfterArrow
)

func (k Kind) String() string {
	switch k {
	case NoArrow:
		return "NoArrow"
	case BeforeArrow:
		return "BeforeArrow"
	case AfterArrow:
		return "AfterArrow"
	default:
		return "Kind(?)"
	}
}

// InvalidArrowIndex marks ArrowIsNthClosest as not applicable (NoArrow).
const InvalidArrowIndex = -1

// Result is the classification of one mine event.
type Result struct {
	Tick              int
	Lane              int
	Kind              Kind
	ArrowIsNthClosest int
	Foot              *pad.Foot
}

// FootAt looks up which foot played the arrow at (tick, lane) in the
// expressed result, returning ok=false when the arrow doesn't exist or
// its foot assignment is ambiguous (e.g. both feet claim that lane on
// that tick).
type FootAt func(tick, lane int) (pad.Foot, bool)

// arrowAction reports whether a raw chart action counts as "an arrow in
// this lane" for mine-distance purposes. Continuations of an
// already-counted hold/roll don't add a second arrow.
func arrowAction(a chart.Action) bool {
	switch a {
	case chart.Tap, chart.HoldStart, chart.RollStart, chart.Lift, chart.Fake:
		return true
	default:
		return false
	}
}

// Classify classifies every mine in stream against the arrows of its own
// lane, breaking ties in ArrowIsNthClosest across all lanes at the same
// tick distance from the mine (see the Open Question decision in the
// engine's design notes).
func Classify(stream *chart.Stream, footAt FootAt) []Result {
	arrowsByLane := make(map[int][]int)
	var allArrows []arrowOccurrence

	for _, row := range stream.Rows() {
		for _, la := range row.Actions {
			if !arrowAction(la.Action) {
				continue
			}
			arrowsByLane[la.Lane] = append(arrowsByLane[la.Lane], row.Tick)
			allArrows = append(allArrows, arrowOccurrence{tick: row.Tick, lane: la.Lane})
		}
	}
	for lane := range arrowsByLane {
		sort.Ints(arrowsByLane[lane])
	}

	results := make([]Result, 0, len(stream.Mines()))
	for _, mine := range stream.Mines() {
		results = append(results, classifyOne(mine, arrowsByLane[mine.Lane], allArrows, footAt))
	}
	return results
}

type arrowOccurrence struct {
	tick int
	lane int
}

func classifyOne(mine chart.MineRow, laneTicks []int, allArrows []arrowOccurrence, footAt FootAt) Result {
	if len(laneTicks) == 0 {
		return Result{Tick: mine.Tick, Lane: mine.Lane, Kind: NoArrow, ArrowIsNthClosest: InvalidArrowIndex}
	}

	before, haveBefore := -1, false
	after, haveAfter := -1, false
	for _, t := range laneTicks {
		switch {
		case t < mine.Tick:
			before, haveBefore = t, true
		case t > mine.Tick && !haveAfter:
			after, haveAfter = t, true
		}
	}

	var kind Kind
	var chosenTick int
	switch {
	case haveAfter:
		kind, chosenTick = AfterArrow, after
	case haveBefore:
		kind, chosenTick = BeforeArrow, before
	default:
		// Only a coincident-tick arrow exists; treat it as the reference.
		kind, chosenTick = AfterArrow, laneTicks[0]
	}

	distance := abs(chosenTick - mine.Tick)
	n := rankDistance(mine.Tick, distance, allArrows)

	res := Result{Tick: mine.Tick, Lane: mine.Lane, Kind: kind, ArrowIsNthClosest: n}
	if f, ok := footAt(chosenTick, mine.Lane); ok {
		res.Foot = &f
	}
	return res
}

// rankDistance returns the 0-based rank of distance among the distinct
// tick distances (to mineTick) of every arrow across every lane: arrows
// at equal distance share the same rank.
func rankDistance(mineTick, distance int, allArrows []arrowOccurrence) int {
	distinct := make(map[int]bool)
	for _, occ := range allArrows {
		distinct[abs(occ.tick-mineTick)] = true
	}
	sorted := make([]int, 0, len(distinct))
	for d := range distinct {
		sorted = append(sorted, d)
	}
	sort.Ints(sorted)
	for i, d := range sorted {
		if d == distance {
			return i
		}
	}
	return InvalidArrowIndex
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
