package model

import "fmt"

// ParseError reports a custom-load token that could not be read as a number.
type ParseError struct {
	Token string
	Index int
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return "load input is empty"
	}
	return fmt.Sprintf("load value %d: %q is not a number", e.Index+1, e.Token)
}

// InvalidInputError reports a structural precondition violation: a profile
// that is too short, a non-monotonic time grid, mismatched trace lengths,
// out-of-range parameters. These are always caller problems, never retried.
type InvalidInputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }
