package search

import (
	"fmt"

	"github.com/exprchart/engine/stepgraph"
)

// StepEvent is one applied graph link, instance-typed per cell and
// attributed to the row that produced it.
type StepEvent struct {
	Row           int
	Tick          int
	Link          stepgraph.GraphLink
	InstanceTypes [2][2]stepgraph.InstanceStepType
	// Lanes[foot][portion] is the chart lane occupied by that cell, or -1
	// if the cell is invalid. Carried alongside the Link so a caller can
	// answer "which foot played lane L at tick T" without re-deriving it
	// from the pad's arrow geometry.
	Lanes [2][2]int
}

// Result is the full output of a successful search.
type Result struct {
	Steps []StepEvent
	Cost  CostVector
}

// UnreachableError reports that no admissible link covered a row's
// required arrows from the current body state.
type UnreachableError struct {
	Row      int
	Tick     int
	Required []int
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("search: row %d (tick %d): no admissible link for required arrows %v", e.Row, e.Tick, e.Required)
}
