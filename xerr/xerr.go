// Package xerr holds the one error kind shared across package boundaries:
// Internal, a fatal invariant violation (e.g. pad data symmetry broken).
// The other kinds (PadDataLoadError, StepGraphLoadError, MalformedChart,
// Unreachable) are local to the package that detects them, since only
// Internal needs to be raised from more than one place.
package xerr

import "fmt"

// Internal signals a violated invariant: a bug in pad data, the step
// graph, or the engine itself, not a caller input error. It is never
// expected to occur against well-formed pad data and well-formed charts.
type Internal struct {
	Component string
	Reason    string
}

func (e *Internal) Error() string {
	return fmt.Sprintf("internal error in %s: %s", e.Component, e.Reason)
}

// New constructs an Internal error.
func New(component, format string, args ...interface{}) *Internal {
	return &Internal{Component: component, Reason: fmt.Sprintf(format, args...)}
}
