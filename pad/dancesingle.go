package pad

// Arrow indices for the 4-panel "dance-single" layout, ordered so that
// Mirror (NumArrows-1-a) is the real left-right mirror of the pad:
// Left<->Right, Down<->Up.
const (
	DanceSingleLeft  = 0
	DanceSingleDown  = 1
	DanceSingleUp    = 2
	DanceSingleRight = 3
)

// NewDanceSingle builds the pad data for the 4-panel single pad. Every
// table is derived from arrow position geometry rather than hand-entered
// per cell, which makes the left-right symmetry invariant (§8) hold by
// construction: a half-turn about the pad's centre maps each arrow's
// position onto the position of Mirror(a), so classifying each
// (a, f, a2) triple from raw coordinates produces a table whose mirror
// image is itself.
func NewDanceSingle() *Data {
	d := New("dance-single", 4)
	d.Positions[DanceSingleLeft] = Point{X: 0, Y: 1}
	d.Positions[DanceSingleDown] = Point{X: 1, Y: 0}
	d.Positions[DanceSingleUp] = Point{X: 1, Y: 2}
	d.Positions[DanceSingleRight] = Point{X: 2, Y: 1}
	d.NeutralStance = [2]int{DanceSingleLeft, DanceSingleRight}

	n := d.NumArrows

	// Any arrow is reachable from any other on a single pad.
	for a := 0; a < n; a++ {
		for a2 := 0; a2 < n; a2++ {
			d.ValidNextArrows[a][a2] = true
		}
	}

	for a := 0; a < n; a++ {
		for a2 := 0; a2 < n; a2++ {
			if a == a2 {
				continue
			}
			// Bracketable: the two arrows are close enough (one step in
			// each axis) for a single foot to span both with heel/toe.
			if bracketable(d.Positions[a], d.Positions[a2]) {
				d.BracketablePairingsOtherHeel[a][Left][a2] = true
				d.BracketablePairingsOtherToe[a2][Left][a] = true
				d.BracketablePairingsOtherHeel[a][Right][a2] = true
				d.BracketablePairingsOtherToe[a2][Right][a] = true
			}

			for _, f := range [2]Foot{Left, Right} {
				switch classify(d.Positions[a], f, d.Positions[a2]) {
				case pairingNormal:
					d.OtherFootPairings[a][f][a2] = true
				case pairingCrossoverFront:
					d.OtherFootPairingsOtherFootCrossoverFront[a][f][a2] = true
				case pairingCrossoverBehind:
					d.OtherFootPairingsOtherFootCrossoverBehind[a][f][a2] = true
				case pairingInverted:
					d.OtherFootPairingsOtherFootInverted[a][f][a2] = true
				}
			}
		}
	}

	return d
}

func bracketable(p1, p2 Point) bool {
	dx := abs(p1.X - p2.X)
	dy := abs(p1.Y - p2.Y)
	return dx <= 1 && dy <= 1
}

type pairingKind int

const (
	pairingNormal pairingKind = iota
	pairingCrossoverFront
	pairingCrossoverBehind
	pairingInverted
)

// classify decides, purely from geometry, what kind of pairing results
// when foot f (standing on arrow at position `at`) has its other foot
// stepping to the arrow at position `other`.
//
// The rule: a foot's other-foot pairing is "normal" while the other foot
// stays on its own natural side of `at`; once the other foot crosses to
// the far side it is a crossover, and once it crosses all the way to the
// pad's opposite edge it is a full inversion. Front/behind for a
// crossover is resolved by which arrow sits further forward (lower Y).
func classify(at Point, f Foot, other Point) pairingKind {
	dx := other.X - at.X
	if f == Right {
		dx = -dx
	}
	switch {
	case dx >= 0:
		return pairingNormal
	case dx > -2:
		if other.Y <= at.Y {
			return pairingCrossoverFront
		}
		return pairingCrossoverBehind
	default:
		return pairingInverted
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
