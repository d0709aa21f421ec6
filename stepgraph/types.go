// Package stepgraph builds and stores the precomputed, read-only graph of
// body states and the foot actions that move between them. Nodes and links
// are deduplicated into flat arenas, so the graph stays cyclic-friendly: a
// state can reach itself again (a same-arrow jack) without any
// self-referential pointer structure.
package stepgraph

import "fmt"

// StepType is the closed set of ways a single graph link cell can move a
// foot portion relative to its own and the other foot's position.
type StepType int

const (
	SameArrow StepType = iota
	NewArrow
	CrossoverFront
	CrossoverBehind
	InvertFront
	InvertBehind
	FootSwap
	NewArrowStretch
	CrossoverBehindStretch
	Swing
	BracketHeelNewToeNew
	BracketHeelNewToeSame
	BracketHeelSameToeNew
	BracketHeelSameToeSame
	BracketHeelSwapToeSame
	BracketHeelSameToeSwap
	BracketOneArrowHeelNew
	BracketOneArrowHeelSame
	BracketOneArrowToeNew
	BracketOneArrowToeSame
	BracketStretchOneArrowHeelNew
	BracketStretchOneArrowToeNew
)

var stepTypeNames = [...]string{
	"SameArrow", "NewArrow", "CrossoverFront", "CrossoverBehind",
	"InvertFront", "InvertBehind", "FootSwap", "NewArrowStretch",
	"CrossoverBehindStretch", "Swing",
	"BracketHeelNewToeNew", "BracketHeelNewToeSame", "BracketHeelSameToeNew",
	"BracketHeelSameToeSame", "BracketHeelSwapToeSame", "BracketHeelSameToeSwap",
	"BracketOneArrowHeelNew", "BracketOneArrowHeelSame", "BracketOneArrowToeNew",
	"BracketOneArrowToeSame", "BracketStretchOneArrowHeelNew", "BracketStretchOneArrowToeNew",
}

func (s StepType) String() string {
	if int(s) < 0 || int(s) >= len(stepTypeNames) {
		return fmt.Sprintf("StepType(%d)", int(s))
	}
	return stepTypeNames[s]
}

// crossoverWeight ranks step types for the cost model's dimension 10
// step-type tiebreak: SameArrow < NewArrow < FootSwap < crossover <
// invert < Swing, with stretch variants carrying the same weight as their
// non-stretch counterpart.
func (s StepType) crossoverWeight() int {
	switch s {
	case SameArrow:
		return 0
	case NewArrow, NewArrowStretch:
		return 1
	case FootSwap:
		return 2
	case CrossoverFront, CrossoverBehind, CrossoverBehindStretch:
		return 3
	case InvertFront, InvertBehind:
		return 4
	case Swing:
		return 5
	default:
		return 1 // bracket variants behave like NewArrow for this ranking
	}
}

// Weight exposes crossoverWeight to other packages for cost-model use.
func (s StepType) Weight() int {
	return s.crossoverWeight()
}

// IsFootSwap reports whether s is the foot-swap step type.
func (s StepType) IsFootSwap() bool {
	return s == FootSwap
}

// IsBracket reports whether s is one of the two-portion bracket variants.
func (s StepType) IsBracket() bool {
	switch s {
	case BracketHeelNewToeNew, BracketHeelNewToeSame, BracketHeelSameToeNew,
		BracketHeelSameToeSame, BracketHeelSwapToeSame, BracketHeelSameToeSwap:
		return true
	default:
		return false
	}
}

// IsStretch reports whether s is one of the stretch variants.
func (s StepType) IsStretch() bool {
	switch s {
	case NewArrowStretch, CrossoverBehindStretch, BracketStretchOneArrowHeelNew, BracketStretchOneArrowToeNew:
		return true
	default:
		return false
	}
}

// FootAction is the closed set of physical actions a foot portion performs
// on one graph link cell.
type FootAction int

const (
	Tap FootAction = iota
	Hold
	Release
)

func (a FootAction) String() string {
	switch a {
	case Tap:
		return "Tap"
	case Hold:
		return "Hold"
	case Release:
		return "Release"
	default:
		return fmt.Sprintf("FootAction(%d)", int(a))
	}
}

// InstanceStepType is per-application metadata layered onto a graph link
// cell at the moment a row is matched against it; it is never stored in
// the shared graph.
type InstanceStepType int

const (
	Default InstanceStepType = iota
	Roll
	Fake
	Lift
)

func (t InstanceStepType) String() string {
	switch t {
	case Default:
		return "Default"
	case Roll:
		return "Roll"
	case Fake:
		return "Fake"
	case Lift:
		return "Lift"
	default:
		return fmt.Sprintf("InstanceStepType(%d)", int(t))
	}
}

// NoArrow marks an unoccupied foot portion in a BodyState.
const NoArrow = -1

// BodyState is one node of the step graph: per foot, per portion, the
// arrow currently occupied (or NoArrow), plus the orientation flags set
// by the link that produced it. Two states with equal Portions and equal
// flags are the same node.
type BodyState struct {
	// Portions[foot][portion] = arrow index, or NoArrow.
	Portions  [2][2]int
	Crossed   bool
	Inverted  bool
}

// Arrow returns the arrow occupied by (f, p), or NoArrow.
func (s BodyState) Arrow(f, p int) int {
	return s.Portions[f][p]
}

// LinkCell is one (foot, portion) cell of a GraphLink.
type LinkCell struct {
	Valid      bool
	StepType   StepType
	FootAction FootAction
}

// GraphLink is a 2x2 table of per-foot, per-portion cells describing one
// edge of the step graph. A link is valid if at least one cell is valid.
type GraphLink struct {
	Cells [2][2]LinkCell
}

// Valid reports whether any cell of the link is valid.
func (l GraphLink) Valid() bool {
	for f := 0; f < 2; f++ {
		for p := 0; p < 2; p++ {
			if l.Cells[f][p].Valid {
				return true
			}
		}
	}
	return false
}

