package bracket

import (
	"testing"

	"github.com/exprchart/engine/chart"
)

func defaultPolicy() Policy {
	return Policy{
		DefaultMethod:                       Balanced,
		Determination:                       UseDefault,
		MinLevelForBrackets:                 0,
		ForceAggressiveWhenInfeasible:       true,
		BalancedBracketsPerMinuteAggressive: 3.0,
		BalancedBracketsPerMinuteNoBrackets: 0.571,
	}
}

func stream(t *testing.T, events []chart.Event) *chart.Stream {
	t.Helper()
	s, err := chart.Normalize(events, chart.Tempo{BPM: 120}, 10)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return s
}

func TestResolveBelowMinLevelForcesNoBrackets(t *testing.T) {
	p := defaultPolicy()
	p.MinLevelForBrackets = 5
	s := stream(t, []chart.Event{{Tick: 0, Lane: 0, Action: chart.Tap}})
	if got := Resolve(p, 3, s); got != NoBrackets {
		t.Fatalf("got %v, want NoBrackets", got)
	}
}

func TestResolveUsesDefaultMethodWhenFeasible(t *testing.T) {
	p := defaultPolicy()
	s := stream(t, []chart.Event{
		{Tick: 0, Lane: 0, Action: chart.Tap},
		{Tick: 100, Lane: 1, Action: chart.Tap},
	})
	if got := Resolve(p, 10, s); got != Balanced {
		t.Fatalf("got %v, want Balanced", got)
	}
}

func TestResolveForcesAggressiveWhenRowInfeasible(t *testing.T) {
	p := defaultPolicy()
	s := stream(t, []chart.Event{
		{Tick: 0, Lane: 0, Action: chart.Tap},
		{Tick: 0, Lane: 1, Action: chart.Tap},
		{Tick: 0, Lane: 2, Action: chart.Tap},
	})
	if got := Resolve(p, 10, s); got != Aggressive {
		t.Fatalf("got %v, want Aggressive", got)
	}
}

func TestImpliedBracketsPerMinuteZeroForSparseChart(t *testing.T) {
	s := stream(t, []chart.Event{
		{Tick: 0, Lane: 0, Action: chart.Tap},
		{Tick: 48 * 4, Lane: 1, Action: chart.Tap},
	})
	if rate := ImpliedBracketsPerMinute(s); rate != 0 {
		t.Fatalf("expected 0 implied brackets per minute, got %v", rate)
	}
}

func TestImpliedBracketsForRow(t *testing.T) {
	cases := []struct{ n, want int }{{0, 0}, {2, 0}, {3, 1}, {4, 2}, {6, 2}}
	for _, c := range cases {
		if got := impliedBracketsForRow(c.n); got != c.want {
			t.Errorf("impliedBracketsForRow(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
