// Package bracket implements the bracket parsing policy: whether
// simultaneous-note groups are attempted as single-foot brackets or
// forced into two-foot jumps.
package bracket

import "github.com/exprchart/engine/chart"

// Method is the enumerated bracket parsing baseline.
type Method int

const (
	Aggressive Method = iota
	Balanced
	NoBrackets
)

func (m Method) String() string {
	switch m {
	case Aggressive:
		return "Aggressive"
	case Balanced:
		return "Balanced"
	case NoBrackets:
		return "NoBrackets"
	default:
		return "Method(?)"
	}
}

// Determination chooses between a fixed baseline method and a dynamic
// feasibility pre-pass.
type Determination int

const (
	UseDefault Determination = iota
	ChooseMethodDynamically
)

func (d Determination) String() string {
	switch d {
	case UseDefault:
		return "UseDefault"
	case ChooseMethodDynamically:
		return "ChooseMethodDynamically"
	default:
		return "Determination(?)"
	}
}

// Policy is the resolved, fully-evaluated set of options driving the
// search core's bracket admission for one chart expression.
type Policy struct {
	DefaultMethod                      Method
	Determination                      Determination
	MinLevelForBrackets                int
	ForceAggressiveWhenInfeasible      bool
	BalancedBracketsPerMinuteAggressive float64
	BalancedBracketsPerMinuteNoBrackets float64
}

// ticksPerBeat is the assumed tick subdivision used to convert tick
// distances to wall-clock minutes for the per-minute thresholds. The
// chart parser boundary is out of scope for this engine, so this is the
// one place a concrete tick convention must be assumed.
const ticksPerBeat = 48

// Resolve decides the effective bracket method for one chart expression.
func Resolve(p Policy, difficulty int, stream *chart.Stream) Method {
	if difficulty < p.MinLevelForBrackets {
		return NoBrackets
	}

	method := p.DefaultMethod
	if p.Determination == ChooseMethodDynamically {
		rate := ImpliedBracketsPerMinute(stream)
		switch {
		case rate > p.BalancedBracketsPerMinuteAggressive:
			method = Aggressive
		case rate < p.BalancedBracketsPerMinuteNoBrackets:
			method = NoBrackets
		default:
			method = Balanced
		}
	}

	if method != Aggressive && p.ForceAggressiveWhenInfeasible && !feasibleWithoutAggressive(stream) {
		method = Aggressive
	}

	return method
}

// feasibleWithoutAggressive reports whether every row can be covered by
// two feet without resorting to a bracket at all (each foot single-steps
// at most once per row).
func feasibleWithoutAggressive(stream *chart.Stream) bool {
	for _, row := range stream.Rows() {
		if simultaneousNoteCount(row) > 2 {
			return false
		}
	}
	return true
}

// simultaneousNoteCount counts the distinct lanes newly struck in a row
// (taps, hold/roll starts); continuations and releases don't add notes.
func simultaneousNoteCount(row chart.Row) int {
	n := 0
	for _, la := range row.Actions {
		switch la.Action {
		case chart.Tap, chart.HoldStart, chart.RollStart, chart.Lift, chart.Fake:
			n++
		}
	}
	return n
}

// impliedBracketsForRow is the minimum number of brackets required to
// cover a row with exactly two feet: 0 up to 2 simultaneous notes, then
// one more per additional note up to the 4-note, both-feet-bracketing
// ceiling.
func impliedBracketsForRow(n int) int {
	if n <= 2 {
		return 0
	}
	if n > 4 {
		n = 4
	}
	return n - 2
}

// ImpliedBracketsPerMinute runs the feasibility pre-pass: the rate of
// brackets a Balanced policy would need to parse this chart, in
// brackets per minute of chart duration.
func ImpliedBracketsPerMinute(stream *chart.Stream) float64 {
	rows := stream.Rows()
	if len(rows) == 0 {
		return 0
	}

	implied := 0
	for _, row := range rows {
		implied += impliedBracketsForRow(simultaneousNoteCount(row))
	}
	if implied == 0 {
		return 0
	}

	firstTick, lastTick := rows[0].Tick, rows[len(rows)-1].Tick
	beats := float64(lastTick-firstTick) / float64(ticksPerBeat)
	if beats <= 0 {
		return 0
	}
	minutes := beats / stream.Tempo.BPM
	if minutes <= 0 {
		return 0
	}
	return float64(implied) / minutes
}
