package pad

import "fmt"

// Issue describes one violated invariant found by Validate. Multiple
// checks run independently and report separately, mirroring the
// one-function-per-check style used elsewhere in this codebase for
// structural validation.
type Issue struct {
	Check   string
	Detail  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Check, i.Detail)
}

// Validate runs every structural check and returns all issues found.
// A nil/empty result means the pad data satisfies every invariant in
// §3 and §8 of the spec.
func Validate(d *Data) []Issue {
	var issues []Issue
	issues = append(issues, CheckSymmetry(d)...)
	issues = append(issues, CheckCoverage(d)...)
	return issues
}

// CheckSymmetry verifies the universal pad-data symmetry invariant
// (§8): for every arrow a, a2 and foot f, with oa = mirror(a),
// oa2 = mirror(a2), of = other(f), each table's value at (a, f, a2)
// must equal its front/behind- or heel/toe-swapped counterpart at
// (oa, of, oa2).
func CheckSymmetry(d *Data) []Issue {
	var issues []Issue
	n := d.NumArrows

	check := func(name string, get func(a int, f Foot, a2 int) bool, getMirror func(a int, f Foot, a2 int) bool) {
		for a := 0; a < n; a++ {
			oa := d.Mirror(a)
			for a2 := 0; a2 < n; a2++ {
				oa2 := d.Mirror(a2)
				for _, f := range [2]Foot{Left, Right} {
					of := f.Other()
					if get(a, f, a2) != getMirror(oa, of, oa2) {
						issues = append(issues, Issue{
							Check:  name,
							Detail: fmt.Sprintf("(a=%d f=%v a2=%d) != (a=%d f=%v a2=%d)", a, f, a2, oa, of, oa2),
						})
					}
				}
			}
		}
	}

	check("ValidNextArrows",
		func(a int, _ Foot, a2 int) bool { return d.ValidNextArrows[a][a2] },
		func(a int, _ Foot, a2 int) bool { return d.ValidNextArrows[a][a2] },
	)
	check("BracketablePairingsOtherHeel<->OtherToe",
		func(a int, f Foot, a2 int) bool { return d.BracketablePairingsOtherHeel[a].Get(f, a2) },
		func(a int, f Foot, a2 int) bool { return d.BracketablePairingsOtherToe[a].Get(f, a2) },
	)
	check("OtherFootPairings",
		func(a int, f Foot, a2 int) bool { return d.OtherFootPairings[a].Get(f, a2) },
		func(a int, f Foot, a2 int) bool { return d.OtherFootPairings[a].Get(f, a2) },
	)
	check("CrossoverBehind<->CrossoverFront",
		func(a int, f Foot, a2 int) bool { return d.OtherFootPairingsOtherFootCrossoverBehind[a].Get(f, a2) },
		func(a int, f Foot, a2 int) bool { return d.OtherFootPairingsOtherFootCrossoverFront[a].Get(f, a2) },
	)
	check("Inverted",
		func(a int, f Foot, a2 int) bool { return d.OtherFootPairingsOtherFootInverted[a].Get(f, a2) },
		func(a int, f Foot, a2 int) bool { return d.OtherFootPairingsOtherFootInverted[a].Get(f, a2) },
	)
	check("StretchPairings",
		func(a int, f Foot, a2 int) bool { return d.StretchPairings[a].Get(f, a2) },
		func(a int, f Foot, a2 int) bool { return d.StretchPairings[a].Get(f, a2) },
	)

	return issues
}

// CheckCoverage verifies the valid-next coverage invariant (§3, §8):
// if any pairing table is true for (a, f, a2), ValidNextArrows[a][a2]
// must also be true.
func CheckCoverage(d *Data) []Issue {
	var issues []Issue
	n := d.NumArrows
	for a := 0; a < n; a++ {
		for a2 := 0; a2 < n; a2++ {
			for _, f := range [2]Foot{Left, Right} {
				if d.AnyPairing(a, f, a2) && !d.ValidNextArrows[a][a2] {
					issues = append(issues, Issue{
						Check:  "ValidNextCoverage",
						Detail: fmt.Sprintf("(a=%d f=%v a2=%d) has a pairing but ValidNextArrows is false", a, f, a2),
					})
				}
			}
		}
	}
	return issues
}
