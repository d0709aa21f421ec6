package search

import (
	"sort"

	"github.com/exprchart/engine/bracket"
	"github.com/exprchart/engine/chart"
	"github.com/exprchart/engine/stepgraph"
)

// claim is one lane that a row's events (other than continuations)
// require a link to account for.
type claim struct {
	lane   int
	action chart.Action
}

// requiredClaims extracts the lanes a row's link must claim, in the
// chart's own action vocabulary. HoldContinue/RollContinue carry no claim
// of their own: the graph models "still holding" as a cell simply staying
// invalid, letting the occupied portion's arrow persist silently.
func requiredClaims(row chart.Row) []claim {
	var claims []claim
	for _, la := range row.Actions {
		switch la.Action {
		case chart.HoldContinue, chart.RollContinue:
			continue
		default:
			claims = append(claims, claim{lane: la.Lane, action: la.Action})
		}
	}
	return claims
}

func actionCategory(a chart.Action) stepgraph.FootAction {
	switch a {
	case chart.HoldStart, chart.RollStart:
		return stepgraph.Hold
	case chart.Release:
		return stepgraph.Release
	default:
		return stepgraph.Tap
	}
}

// claimedCell is one active link cell resolved to the lane it claims.
type claimedCell struct {
	foot, portion int
	lane          int
	cell          stepgraph.LinkCell
}

// claimedCells lists every valid cell of link as it would apply moving
// from `from` to `to`, resolving each to the lane it claims.
func claimedCells(link stepgraph.GraphLink, from, to stepgraph.BodyState) []claimedCell {
	var out []claimedCell
	for f := 0; f < 2; f++ {
		for p := 0; p < 2; p++ {
			c := link.Cells[f][p]
			if !c.Valid {
				continue
			}
			lane := to.Arrow(f, p)
			if c.FootAction == stepgraph.Release {
				lane = from.Arrow(f, p)
			}
			out = append(out, claimedCell{foot: f, portion: p, lane: lane, cell: c})
		}
	}
	return out
}

// admits reports whether link's claimed lanes (moving from `from` to `to`)
// exactly match the row's required claims, category by category, and
// respects the current hold bitmap and bracket policy.
func admits(link stepgraph.GraphLink, from, to stepgraph.BodyState, holdBitmap uint8, required []claim, method bracket.Method) ([]claimedCell, bool) {
	cells := claimedCells(link, from, to)
	if len(cells) != len(required) {
		return nil, false
	}

	byLane := make(map[int]claim, len(required))
	for _, r := range required {
		byLane[r.lane] = r
	}

	for _, c := range cells {
		req, ok := byLane[c.lane]
		if !ok || actionCategory(req.action) != c.cell.FootAction {
			return nil, false
		}
		if c.cell.StepType.IsBracket() {
			switch method {
			case bracket.NoBrackets:
				return nil, false
			case bracket.Balanced:
				// Mirror bracket.feasibleWithoutAggressive's per-chart rule
				// at row granularity: only reach for a bracket when the row
				// cannot be covered by two single-foot steps.
				if len(required) <= 2 {
					return nil, false
				}
			}
		}

		bit := portionBit(c.foot, c.portion)
		held := holdBitmap&bit != 0
		switch c.cell.FootAction {
		case stepgraph.Release:
			if !held {
				return nil, false
			}
		default:
			if held {
				return nil, false
			}
		}
	}

	// Every other (non-claimed) portion currently held must stay silent:
	// the link leaves it invalid, which is enforced structurally by the
	// graph builder (an inactive portion never changes BodyState), so no
	// further check is needed here.

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].foot != cells[j].foot {
			return cells[i].foot < cells[j].foot
		}
		return cells[i].portion < cells[j].portion
	})
	return cells, true
}
