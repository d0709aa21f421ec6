package pad

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads and parses a pad data JSON file (e.g. "dance-single.json").
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, newLoadError(path, "reading file", err)
	}
	d, err := FromJSON(raw)
	if err != nil {
		return nil, newLoadError(path, "parsing JSON", err)
	}
	return d, nil
}

// FromJSON parses pad data from JSON bytes. The format mirrors §6 of the
// spec: numArrows, per-arrow 2-D positions, and the six symmetric boolean
// tables keyed "[foot][otherArrow]" in arrays of length numArrows.
//
// Decoding is permissive, following the same map[string]interface{} plus
// per-field type assertion idiom used throughout this codebase's JSON
// import paths: a missing table is left as all-false rather than erroring,
// since the symmetry/coverage invariants are checked separately by
// Validate rather than by the parser.
func FromJSON(data []byte) (*Data, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	chartType, _ := m["chartType"].(string)

	n, ok := asInt(m["numArrows"])
	if !ok || n <= 0 {
		return nil, fmt.Errorf("numArrows must be a positive integer")
	}

	d := New(chartType, n)

	if stance, ok := m["neutralStance"].([]interface{}); ok && len(stance) == 2 {
		left, _ := asInt(stance[0])
		right, _ := asInt(stance[1])
		d.NeutralStance = [2]int{left, right}
	}

	if positions, ok := m["positions"].([]interface{}); ok {
		for i, p := range positions {
			if i >= n {
				break
			}
			if pair, ok := p.([]interface{}); ok && len(pair) == 2 {
				x, _ := asInt(pair[0])
				y, _ := asInt(pair[1])
				d.Positions[i] = Point{X: x, Y: y}
			}
		}
	}

	if err := fillBoolMatrix(m, "validNextArrows", n, d.ValidNextArrows); err != nil {
		return nil, err
	}
	if err := fillFootTables(m, "bracketablePairingsOtherHeel", n, d.BracketablePairingsOtherHeel); err != nil {
		return nil, err
	}
	if err := fillFootTables(m, "bracketablePairingsOtherToe", n, d.BracketablePairingsOtherToe); err != nil {
		return nil, err
	}
	if err := fillFootTables(m, "otherFootPairings", n, d.OtherFootPairings); err != nil {
		return nil, err
	}
	if err := fillFootTables(m, "otherFootPairingsOtherFootCrossoverBehind", n, d.OtherFootPairingsOtherFootCrossoverBehind); err != nil {
		return nil, err
	}
	if err := fillFootTables(m, "otherFootPairingsOtherFootCrossoverFront", n, d.OtherFootPairingsOtherFootCrossoverFront); err != nil {
		return nil, err
	}
	if err := fillFootTables(m, "otherFootPairingsOtherFootInverted", n, d.OtherFootPairingsOtherFootInverted); err != nil {
		return nil, err
	}
	if err := fillFootTables(m, "stretchPairings", n, d.StretchPairings); err != nil {
		return nil, err
	}

	return d, nil
}

// fillBoolMatrix reads m[key] as a [n][n]bool and writes it into dst.
func fillBoolMatrix(m map[string]interface{}, key string, n int, dst [][]bool) error {
	raw, found := m[key]
	if !found {
		return nil
	}
	rows, ok := raw.([]interface{})
	if !ok {
		return fmt.Errorf("%s must be an array", key)
	}
	for a, rowRaw := range rows {
		if a >= n {
			break
		}
		row, ok := rowRaw.([]interface{})
		if !ok {
			return fmt.Errorf("%s[%d] must be an array", key, a)
		}
		for a2, v := range row {
			if a2 >= n {
				break
			}
			dst[a][a2], _ = asBool(v)
		}
	}
	return nil
}

// fillFootTables reads m[key] as a [n][2][n]bool and writes it into dst.
func fillFootTables(m map[string]interface{}, key string, n int, dst []FootTable) error {
	raw, found := m[key]
	if !found {
		return nil
	}
	rows, ok := raw.([]interface{})
	if !ok {
		return fmt.Errorf("%s must be an array", key)
	}
	for a, rowRaw := range rows {
		if a >= n {
			break
		}
		feet, ok := rowRaw.([]interface{})
		if !ok || len(feet) != 2 {
			return fmt.Errorf("%s[%d] must be a [left, right]-shaped 2-element array", key, a)
		}
		for f := 0; f < 2; f++ {
			footRow, ok := feet[f].([]interface{})
			if !ok {
				return fmt.Errorf("%s[%d][%d] must be an array", key, a, f)
			}
			for a2, v := range footRow {
				if a2 >= n {
					break
				}
				dst[a][f][a2], _ = asBool(v)
			}
		}
	}
	return nil
}

func asInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case json.Number:
		f, err := t.Float64()
		return int(f), err == nil
	case int:
		return t, true
	default:
		return 0, false
	}
}

func asBool(v interface{}) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}
