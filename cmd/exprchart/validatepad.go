package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/exprchart/engine/pad"
)

func validatePad(args []string) error {
	fs := flag.NewFlagSet("validate-pad", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: exprchart validate-pad <pad.json>

Check a pad data file for the structural invariants every pad layout
must satisfy: mirror symmetry across every table, and valid-next-arrow
coverage of every declared pairing.

`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("pad file required")
	}

	d, err := pad.LoadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("load pad: %w", err)
	}

	issues := pad.Validate(d)
	out := stdout()
	if len(issues) == 0 {
		fmt.Fprintf(out, "%s✓ %s: no issues found%s\n", ansiGreen, d.ChartType, ansiReset)
		return nil
	}

	fmt.Fprintf(out, "%s✗ %s: %d issue(s)%s\n", ansiRed, d.ChartType, len(issues), ansiReset)
	for _, issue := range issues {
		fmt.Fprintf(out, "  - %s\n", issue)
	}
	os.Exit(1)
	return nil
}
