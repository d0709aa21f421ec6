// Package config holds the engine's expression-time configuration: the
// bracket parsing policy and nothing else, per the engine's external
// interface (no environment variables, no persisted state).
package config

import (
	"flag"

	"github.com/exprchart/engine/bracket"
)

// Expression is the full set of options recognised when expressing a
// chart.
type Expression struct {
	DefaultBracketParsingMethod                                                 bracket.Method
	BracketParsingDetermination                                                 bracket.Determination
	MinLevelForBrackets                                                         int
	UseAggressiveBracketsWhenMoreSimultaneousNotesThanCanBeCoveredWithoutBrackets bool
	BalancedBracketsPerMinuteForAggressiveBrackets                              float64
	BalancedBracketsPerMinuteForNoBrackets                                      float64
}

// Default returns the documented default configuration.
func Default() Expression {
	return Expression{
		DefaultBracketParsingMethod:                    bracket.Balanced,
		BracketParsingDetermination:                    bracket.UseDefault,
		MinLevelForBrackets:                             0,
		UseAggressiveBracketsWhenMoreSimultaneousNotesThanCanBeCoveredWithoutBrackets: true,
		BalancedBracketsPerMinuteForAggressiveBrackets:  3.0,
		BalancedBracketsPerMinuteForNoBrackets:          0.571,
	}
}

// Policy converts the recognised options into the bracket package's
// resolved Policy shape.
func (e Expression) Policy() bracket.Policy {
	return bracket.Policy{
		DefaultMethod:                       e.DefaultBracketParsingMethod,
		Determination:                       e.BracketParsingDetermination,
		MinLevelForBrackets:                 e.MinLevelForBrackets,
		ForceAggressiveWhenInfeasible:       e.UseAggressiveBracketsWhenMoreSimultaneousNotesThanCanBeCoveredWithoutBrackets,
		BalancedBracketsPerMinuteAggressive: e.BalancedBracketsPerMinuteForAggressiveBrackets,
		BalancedBracketsPerMinuteNoBrackets: e.BalancedBracketsPerMinuteForNoBrackets,
	}
}

// RegisterFlags binds Expression's fields onto fs, in the
// flag.NewFlagSet-per-subcommand style the CLI uses for each of its
// subcommands.
func (e *Expression) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("bracket-method", "default bracket parsing method: aggressive, balanced, or none", func(v string) error {
		m, err := parseMethod(v)
		if err != nil {
			return err
		}
		e.DefaultBracketParsingMethod = m
		return nil
	})
	fs.BoolFunc("bracket-dynamic", "choose the bracket method dynamically via the feasibility pre-pass", func(v string) error {
		if v == "" || v == "true" || v == "1" {
			e.BracketParsingDetermination = bracket.ChooseMethodDynamically
		}
		return nil
	})
	fs.IntVar(&e.MinLevelForBrackets, "min-level-for-brackets", e.MinLevelForBrackets, "charts below this difficulty rating never bracket")
	fs.BoolVar(&e.UseAggressiveBracketsWhenMoreSimultaneousNotesThanCanBeCoveredWithoutBrackets, "force-aggressive-brackets", e.UseAggressiveBracketsWhenMoreSimultaneousNotesThanCanBeCoveredWithoutBrackets, "force aggressive bracket parsing when otherwise infeasible")
	fs.Float64Var(&e.BalancedBracketsPerMinuteForAggressiveBrackets, "brackets-per-minute-aggressive", e.BalancedBracketsPerMinuteForAggressiveBrackets, "upper implied-brackets-per-minute threshold for switching to aggressive")
	fs.Float64Var(&e.BalancedBracketsPerMinuteForNoBrackets, "brackets-per-minute-none", e.BalancedBracketsPerMinuteForNoBrackets, "lower implied-brackets-per-minute threshold for switching to none")
}

func parseMethod(v string) (bracket.Method, error) {
	switch v {
	case "aggressive":
		return bracket.Aggressive, nil
	case "balanced":
		return bracket.Balanced, nil
	case "none":
		return bracket.NoBrackets, nil
	default:
		return 0, errUnknownMethod(v)
	}
}

type errUnknownMethod string

func (e errUnknownMethod) Error() string {
	return "config: unknown bracket method " + string(e)
}
