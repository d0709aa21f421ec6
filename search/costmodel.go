package search

import (
	"github.com/exprchart/engine/chart"
	"github.com/exprchart/engine/pad"
	"github.com/exprchart/engine/stepgraph"
)

// activeFeet reports which feet have at least one non-release claimed
// cell this edge (a foot continuing a hold silently doesn't count; a
// foot only releasing doesn't count as "stepping" for streak purposes).
func activeFeet(cells []claimedCell) (left, right bool) {
	for _, c := range cells {
		if c.cell.FootAction == stepgraph.Release {
			continue
		}
		if c.foot == int(pad.Left) {
			left = true
		} else {
			right = true
		}
	}
	return
}

// imminentMineLanes precomputes, for every row index, the lane of the
// nearest upcoming mine within the next few rows (or -1 if none). Mine
// events never appear in Rows() themselves (chart.Stream keeps them on
// their own stream), so this is the only place the cost model can see
// them.
func imminentMineLanes(rows []chart.Row, mines []chart.MineRow) []int {
	const lookaheadRows = 4
	out := make([]int, len(rows))
	mi := 0
	for i := range rows {
		out[i] = -1
		end := i + lookaheadRows
		if end >= len(rows) {
			end = len(rows) - 1
		}
		windowEnd := rows[end].Tick
		for mi < len(mines) && mines[mi].Tick < rows[i].Tick {
			mi++
		}
		if mi < len(mines) && mines[mi].Tick <= windowEnd {
			out[i] = mines[mi].Lane
		}
	}
	return out
}

// bracketAvailableTo reports whether foot f could cover lane by bracketing
// from its current resting arrows in from, regardless of bracket policy:
// a purely geometric "was this avoidable" check for the double-step
// dimension.
func bracketAvailableTo(d *pad.Data, from stepgraph.BodyState, f pad.Foot, lane int) bool {
	for p := 0; p < 2; p++ {
		arrow := from.Arrow(int(f), p)
		if arrow == stepgraph.NoArrow {
			continue
		}
		if d.BracketablePairingsOtherHeel[arrow].Get(f, lane) || d.BracketablePairingsOtherToe[arrow].Get(f, lane) {
			return true
		}
	}
	return false
}

// applyEdge computes the incremental cost of applying cells to move a
// search node from its current state (from) to `to`, and returns the
// updated hold bookkeeping the resulting node should carry.
func applyEdge(n *node, d *pad.Data, from, to stepgraph.BodyState, cells []claimedCell, row chart.Row, claims []claim, imminentMineLane int) (CostVector, uint8, [2][2]stepgraph.InstanceStepType, int, int, [2]int) {
	var cv CostVector
	holdBitmap := n.holdBitmap
	holdKind := n.holdKind
	releasedAt := n.releasedAt

	claimByLane := make(map[int]chart.Action, len(claims))
	for _, c := range claims {
		claimByLane[c.lane] = c.action
	}

	for _, c := range cells {
		bit := portionBit(c.foot, c.portion)
		switch c.cell.FootAction {
		case stepgraph.Release:
			holdBitmap &^= bit
			releasedAt[c.foot] = n.row
		case stepgraph.Hold:
			holdBitmap |= bit
			if claimByLane[c.lane] == chart.RollStart {
				holdKind[c.foot][c.portion] = stepgraph.Roll
			} else {
				holdKind[c.foot][c.portion] = stepgraph.Default
			}
		case stepgraph.Tap:
			holdBitmap &^= bit
			switch claimByLane[c.lane] {
			case chart.Lift:
				holdKind[c.foot][c.portion] = stepgraph.Lift
			case chart.Fake:
				holdKind[c.foot][c.portion] = stepgraph.Fake
			default:
				holdKind[c.foot][c.portion] = stepgraph.Default
			}
		}

		if c.cell.FootAction == stepgraph.Release {
			continue
		}

		st := c.cell.StepType
		switch st {
		case stepgraph.InvertFront, stepgraph.InvertBehind:
			cv[DimCrossoverInvert] += 2
		case stepgraph.CrossoverFront, stepgraph.CrossoverBehind, stepgraph.CrossoverBehindStretch:
			cv[DimCrossoverInvert] += 1
		}
		if st.IsFootSwap() {
			cv[DimFootSwap] += 1
		}
		if st.IsStretch() {
			cv[DimStretch] += 1
		}
		cv[DimStepTypeTiebreak] += int64(st.Weight())

		otherFoot := 1 - c.foot
		otherBit := portionBit(otherFoot, 0) | portionBit(otherFoot, 1)
		if n.holdBitmap&otherBit != 0 && st.IsBracket() {
			cv[DimBracketVsDoubleStep] += 1
		}

		if st == stepgraph.NewArrow || st == stepgraph.NewArrowStretch {
			otherPortion := 1 - c.portion
			otherArrow := to.Arrow(c.foot, otherPortion)
			if otherArrow != stepgraph.NoArrow {
				bracketable := d.BracketablePairingsOtherHeel[otherArrow].Get(pad.Foot(c.foot), c.lane) ||
					d.BracketablePairingsOtherToe[otherArrow].Get(pad.Foot(c.foot), c.lane)
				if !bracketable {
					cv[DimBracketablePreference] += 1
				}
			}
		}
	}

	left, right := activeFeet(cells)
	streakFoot, streakLen := n.streakFoot, n.streakLen
	switch {
	case left && right:
		streakFoot, streakLen = -1, 0
	case left || right:
		foot := 0
		if right {
			foot = 1
		}
		// A same-arrow jack neither lengthens the foot's streak nor is
		// charged as a double or triple step.
		jack := true
		for _, c := range cells {
			if c.cell.FootAction != stepgraph.Release && c.cell.StepType != stepgraph.SameArrow {
				jack = false
			}
		}
		if streakFoot == foot {
			if !jack {
				streakLen++
			}
		} else {
			streakFoot, streakLen = foot, 1
		}
		switch {
		case jack:
		case streakLen == 2:
			// Only a genuine double step: the foot wasn't forced into it by
			// just coming off a hold, and the other foot had a bracket it
			// could have taken instead.
			cameOffHold := n.releasedAt[foot] == n.row-1
			otherFoot := pad.Foot(1 - foot)
			hadBracket := false
			for _, c := range cells {
				if bracketAvailableTo(d, from, otherFoot, c.lane) {
					hadBracket = true
					break
				}
			}
			if !cameOffHold && hadBracket {
				cv[DimDoubleStep] += 1
			}
		case streakLen >= 3:
			cv[DimTripleStep] += 1
		}
	}

	if left != right {
		idleFoot, activeFoot := 1, 0
		if right {
			idleFoot, activeFoot = 0, 1
		}
		switch {
		case imminentMineLane >= 0 && imminentMineLane == from.Arrow(idleFoot, 0):
			// The idle foot is resting on a lane with an imminent mine: it
			// should have been the one to step, vacating that lane.
			cv[DimHoldMineBias] += 1
		case imminentMineLane >= 0 && imminentMineLane == from.Arrow(activeFoot, 0):
			// The active foot is the one indicated by the mine; no penalty.
		case releasedAt[idleFoot] >= 0 && n.row-releasedAt[idleFoot] > 4:
			cv[DimHoldMineBias] += 1
		}
	}

	return cv, holdBitmap, holdKind, streakFoot, streakLen, releasedAt
}
