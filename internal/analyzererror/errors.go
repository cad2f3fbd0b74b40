// Package analyzererror defines the typed errors shared across the tax rate
// resolver, the yield engine and the catalog parsers.
package analyzererror

import "fmt"

// InvalidStateError reports a state name that is not present in the state
// tax table. Callers must pass one of the enumerated state names (or "None").
type InvalidStateError struct {
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("unrecognized state for tax purposes: '%s'", e.State)
}

// DivisionHazardError reports a combined marginal rate at or above 100%.
// The fully tax-exempt gross-up divides by (1 - total rate), so such a rate
// would produce a non-finite or negative equivalent yield. The input is
// outside the model's valid domain and is rejected rather than propagated
// as a plausible-looking number.
type DivisionHazardError struct {
	Bond      string
	TotalRate float64
}

func (e *DivisionHazardError) Error() string {
	return fmt.Sprintf("combined marginal rate %.4f >= 1 for '%s': taxable-equivalent yield is undefined",
		e.TotalRate, e.Bond)
}

// ParseError represents an error while parsing a bond catalog field.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not conform to the
// expected catalog format for a specific parser.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// ValidationError represents a bond record that violates the catalog
// invariants (non-positive face value, call terms without callable flag, ...).
type ValidationError struct {
	Bond   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for bond '%s': %s", e.Bond, e.Reason)
}
