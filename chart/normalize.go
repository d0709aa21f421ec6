package chart

import "sort"

// Normalize merges raw timed events into an ordered row stream: one Row
// per distinct tick carrying every lane action at that tick, with mines
// split onto their own stream since they never participate in the search.
//
// Ticks need not be sorted on entry; Normalize sorts a copy before
// grouping. Hold/roll starts are paired against their releases as the
// stream is walked; an unmatched start or a release with nothing to
// match fails with MalformedChart.
func Normalize(events []Event, tempo Tempo, difficulty int) (*Stream, error) {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Tick < sorted[j].Tick })

	s := &Stream{Tempo: tempo, Difficulty: difficulty}

	// active[lane] holds the Action that opened the current hold/roll
	// (HoldStart or RollStart), so Release can be validated and so a
	// still-open hold can be reported at the end of the chart.
	active := make(map[int]Action)

	i := 0
	for i < len(sorted) {
		tick := sorted[i].Tick
		var rowEvents []Event
		for i < len(sorted) && sorted[i].Tick == tick {
			rowEvents = append(rowEvents, sorted[i])
			i++
		}

		row := Row{Tick: tick}
		touched := make(map[int]bool)

		for _, ev := range rowEvents {
			if ev.Action == Mine {
				s.mines = append(s.mines, MineRow{Tick: tick, Lane: ev.Lane})
				continue
			}

			touched[ev.Lane] = true
			switch ev.Action {
			case HoldStart, RollStart:
				if _, ok := active[ev.Lane]; ok {
					return nil, &MalformedChart{Tick: tick, Lane: ev.Lane, Reason: "hold/roll start while lane already held"}
				}
				active[ev.Lane] = ev.Action
			case Release:
				if _, ok := active[ev.Lane]; !ok {
					return nil, &MalformedChart{Tick: tick, Lane: ev.Lane, Reason: "release with no matching hold/roll start"}
				}
				delete(active, ev.Lane)
			case HoldContinue, RollContinue:
				if _, ok := active[ev.Lane]; !ok {
					return nil, &MalformedChart{Tick: tick, Lane: ev.Lane, Reason: "hold/roll continue with no matching start"}
				}
			}
			row.Actions = append(row.Actions, LaneAction{Lane: ev.Lane, Action: ev.Action})
		}

		// A tick that carries only mines produces no step row.
		if len(row.Actions) == 0 {
			continue
		}

		sort.Slice(row.Actions, func(i, j int) bool { return row.Actions[i].Lane < row.Actions[j].Lane })

		for lane := range active {
			if !touched[lane] {
				row.HoldingLanes = append(row.HoldingLanes, lane)
			}
		}
		sort.Ints(row.HoldingLanes)

		s.rows = append(s.rows, row)
	}

	if len(active) > 0 {
		for lane := range active {
			return nil, &MalformedChart{Tick: sorted[len(sorted)-1].Tick, Lane: lane, Reason: "hold/roll start with no matching release"}
		}
	}

	return s, nil
}
