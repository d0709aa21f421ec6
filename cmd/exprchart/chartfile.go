package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/exprchart/engine/chart"
	"github.com/exprchart/engine/pad"
)

// chartFile is the on-disk shape of a chart-events JSON file: the raw
// timed events a chart parser would emit, plus the tempo and difficulty
// metadata chart.Normalize needs alongside them.
type chartFile struct {
	ChartType string `json:"chartType"`
	Tempo     struct {
		BPM         float64 `json:"bpm"`
		Numerator   int     `json:"numerator"`
		Denominator int     `json:"denominator"`
	} `json:"tempo"`
	Difficulty int `json:"difficulty"`
	Events     []struct {
		Tick   int    `json:"tick"`
		Lane   int    `json:"lane"`
		Action string `json:"action"`
	} `json:"events"`
}

// loadChartFile reads a chart-events JSON file and normalises it,
// returning the chart type tag alongside the normalised stream.
func loadChartFile(path string) (string, *chart.Stream, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cf chartFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cf.ChartType == "" {
		return "", nil, fmt.Errorf("%s: chartType is required", path)
	}

	events := make([]chart.Event, 0, len(cf.Events))
	for i, e := range cf.Events {
		action, ok := chart.ParseAction(e.Action)
		if !ok {
			return "", nil, fmt.Errorf("%s: event %d: unknown action %q", path, i, e.Action)
		}
		events = append(events, chart.Event{Tick: e.Tick, Lane: e.Lane, Action: action})
	}

	tempo := chart.Tempo{
		BPM:                      cf.Tempo.BPM,
		TimeSignatureNumerator:   cf.Tempo.Numerator,
		TimeSignatureDenominator: cf.Tempo.Denominator,
	}
	stream, err := chart.Normalize(events, tempo, cf.Difficulty)
	if err != nil {
		return "", nil, fmt.Errorf("%s: normalize: %w", path, err)
	}
	return cf.ChartType, stream, nil
}

// loadPad resolves a pad: a pad data JSON file at padFile if given,
// otherwise the built-in layout for chartType.
func loadPad(chartType, padFile string) (*pad.Data, error) {
	if padFile != "" {
		return pad.LoadFile(padFile)
	}
	switch chartType {
	case "dance-single":
		return pad.NewDanceSingle(), nil
	default:
		return nil, fmt.Errorf("no built-in pad for chart type %q; pass -pad", chartType)
	}
}
