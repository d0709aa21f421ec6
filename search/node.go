package search

import "github.com/exprchart/engine/stepgraph"

// portionBit numbers the four foot portions for the hold bitmap: a portion
// currently sustaining a Hold (as opposed to a resolved Tap) has its bit
// set until the matching Release is applied. This tracks information the
// graph's BodyState deliberately does not carry (a tapped arrow and a held
// arrow occupy the same BodyState position, but only a held one blocks the
// foot from acting elsewhere).
func portionBit(f, p int) uint8 {
	return 1 << uint(f*2+p)
}

// node is one frontier entry: a position in the step graph (by node
// index, not value, since the graph interns states) paired with the hold
// bitmap, the row reached, the accumulated cost, and enough bookkeeping
// to evaluate the cost dimensions that depend on recent history.
type node struct {
	row        int
	stateIdx   int
	holdBitmap uint8
	holdKind   [2][2]stepgraph.InstanceStepType
	cost       CostVector
	steps      []StepEvent

	// streakFoot/streakLen track consecutive rows where exactly one foot
	// stepped alone, for the double-step / triple-step dimensions.
	// streakFoot is -1 when the last row was a jump, a release-only row,
	// or there is no history yet.
	streakFoot int
	streakLen  int

	// releasedAt[f] is the row index at which foot f was last released
	// from a hold, used for the hold/mine tie-break dimension. -1 means
	// foot f has never released a hold yet.
	releasedAt [2]int
}

func newStartNode(stateIdx int) *node {
	return &node{
		stateIdx:   stateIdx,
		streakFoot: -1,
		releasedAt: [2]int{-1, -1},
	}
}

// dedupKey is the triple the frontier search deduplicates states on.
type dedupKey struct {
	row        int
	stateIdx   int
	holdBitmap uint8
}

func (n *node) key() dedupKey {
	return dedupKey{row: n.row, stateIdx: n.stateIdx, holdBitmap: n.holdBitmap}
}
