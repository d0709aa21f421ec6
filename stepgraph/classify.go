package stepgraph

import "github.com/exprchart/engine/pad"

// classifyPortion decides the StepType for one foot portion stepping to
// newArrow, given:
//   - prevArrow: the arrow this portion previously occupied (NoArrow if
//     never stepped).
//   - otherPortionArrow: the arrow the SAME foot's other portion currently
//     holds (NoArrow if not mid-bracket-hold).
//   - otherFootHeel / otherFootToe: the other foot's current occupancy.
//
// It returns false if the pad data admits no pairing at all for this move
// (the move cannot be generated as a link).
func classifyPortion(d *pad.Data, f pad.Foot, portion pad.FootPortion, prevArrow, otherPortionArrow, otherFootHeel, otherFootToe, newArrow int) (StepType, bool) {
	switch {
	case newArrow == prevArrow && prevArrow != NoArrow:
		return wrapOneArrow(SameArrow, portion, otherPortionArrow), true
	case newArrow == otherFootHeel || newArrow == otherFootToe:
		return FootSwap, true
	}

	ref := otherFootHeel
	if ref == NoArrow {
		ref = otherFootToe
	}
	if ref == NoArrow {
		return wrapOneArrow(NewArrow, portion, otherPortionArrow), true
	}

	switch {
	case d.OtherFootPairings[newArrow].Get(f, ref):
		return wrapOneArrow(NewArrow, portion, otherPortionArrow), true
	case d.OtherFootPairingsOtherFootCrossoverFront[newArrow].Get(f, ref):
		return CrossoverFront, true
	case d.OtherFootPairingsOtherFootCrossoverBehind[newArrow].Get(f, ref):
		return CrossoverBehind, true
	case d.OtherFootPairingsOtherFootInverted[newArrow].Get(f, ref):
		if d.Positions[newArrow].Y <= d.Positions[ref].Y {
			return InvertFront, true
		}
		return InvertBehind, true
	case d.StretchPairings[newArrow].Get(f, ref):
		return wrapOneArrow(NewArrowStretch, portion, otherPortionArrow), true
	default:
		return 0, false
	}
}

// wrapOneArrow promotes a plain Same/New classification to its
// BracketOneArrow* counterpart when the foot's other portion is already
// occupied (a passive bracket hold not participating in this link).
func wrapOneArrow(base StepType, portion pad.FootPortion, otherPortionArrow int) StepType {
	if otherPortionArrow == NoArrow {
		return base
	}
	switch portion {
	case pad.Heel:
		switch base {
		case SameArrow:
			return BracketOneArrowHeelSame
		case NewArrow:
			return BracketOneArrowHeelNew
		case NewArrowStretch:
			return BracketStretchOneArrowHeelNew
		}
	case pad.Toe:
		switch base {
		case SameArrow:
			return BracketOneArrowToeSame
		case NewArrow:
			return BracketOneArrowToeNew
		case NewArrowStretch:
			return BracketStretchOneArrowToeNew
		}
	}
	return base
}

// bracketStepKind is the Same/New/Swap classification of one bracket
// portion relative to its own previous arrow and the other foot.
type bracketStepKind int

const (
	bracketNew bracketStepKind = iota
	bracketSame
	bracketSwap
)

func classifyBracketPortion(prevArrow, otherFootHeel, otherFootToe, newArrow int) bracketStepKind {
	switch {
	case newArrow == prevArrow && prevArrow != NoArrow:
		return bracketSame
	case newArrow == otherFootHeel || newArrow == otherFootToe:
		return bracketSwap
	default:
		return bracketNew
	}
}

// combineBracket maps the heel/toe Same/New/Swap classification to one of
// the six closed-set two-portion bracket step types. ok is false for
// combinations outside that closed set (e.g. swap on both portions),
// which are simply never generated as links.
func combineBracket(heel, toe bracketStepKind) (StepType, bool) {
	switch {
	case heel == bracketNew && toe == bracketNew:
		return BracketHeelNewToeNew, true
	case heel == bracketNew && toe == bracketSame:
		return BracketHeelNewToeSame, true
	case heel == bracketSame && toe == bracketNew:
		return BracketHeelSameToeNew, true
	case heel == bracketSame && toe == bracketSame:
		return BracketHeelSameToeSame, true
	case heel == bracketSwap && toe == bracketSame:
		return BracketHeelSwapToeSame, true
	case heel == bracketSame && toe == bracketSwap:
		return BracketHeelSameToeSwap, true
	default:
		return 0, false
	}
}
