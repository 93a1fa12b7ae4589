package syspower

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Err is the common category for every terminal error the engine
	// returns; errors.Is(err, Err) catches both kinds generically.
	Err = errors.New("syspower")

	// ErrUnsupportedOperation is returned when the platform fundamentally
	// cannot perform the requested operation: no catalog entry applies to
	// the detected profile, and nothing was executed.
	ErrUnsupportedOperation = fmt.Errorf("%w: operation not supported on this platform", Err)

	// ErrNoWorkingMethod is returned when candidate methods existed but
	// every attempt failed.
	ErrNoWorkingMethod = fmt.Errorf("%w: no working method", Err)
)

// Outcome records one failed attempt for diagnostics. Intermediate failures
// are never surfaced individually, only aggregated into a
// NoWorkingMethodError when the whole chain is exhausted.
type Outcome struct {
	// Command is the rendered command line that was attempted.
	Command string
	// Output is the trimmed combined output the command produced, if any.
	Output string
	// Err is the spawn failure or exit error.
	Err error
}

// NoWorkingMethodError reports that the whole method chain for an operation
// was exhausted without success. Attempts holds every failed invocation in
// attempt order.
type NoWorkingMethodError struct {
	// Op is the operation that was requested.
	Op Operation
	// Attempts are the failed invocations, in the order they were tried.
	Attempts []Outcome
}

// Error renders the aggregate failure with per-attempt diagnostics.
func (e *NoWorkingMethodError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %v after %d attempt(s)", e.Op, ErrNoWorkingMethod, len(e.Attempts))

	for _, attempt := range e.Attempts {
		fmt.Fprintf(&b, "\n  %s: %v", attempt.Command, attempt.Err)

		if attempt.Output != "" {
			fmt.Fprintf(&b, " (%s)", attempt.Output)
		}
	}

	return b.String()
}

// Unwrap ties the aggregate into the common error category.
func (e *NoWorkingMethodError) Unwrap() error {
	return ErrNoWorkingMethod
}
