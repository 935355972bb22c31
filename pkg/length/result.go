package length

import (
	mdwerror "github.com/msto63/galleon/foundation/core/error"
)

// Messages reported in ParseResult.Errors.
const (
	MsgUnevenTokens     = "Not all units/values have an associated unit/value"
	MsgMixedUnitSystems = "There is a mix of imperial and metric units"
)

// ParseResult is the outcome of ParseTokens.
type ParseResult struct {
	// Values holds whole-unit values first, then fractions.
	Values []Value
	// Errors is empty for a valid result.
	Errors []string
	// Dropped lists input that was skipped because it could not be
	// parsed. It does not affect validity.
	Dropped []string
}

// Valid reports whether no errors were recorded.
func (r ParseResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the errors as a single *mdwerror.Error, or nil when valid.
func (r ParseResult) Err() error {
	if r.Valid() {
		return nil
	}

	code := mdwerror.CodeMixedUnitSystems
	if r.Errors[0] == MsgUnevenTokens {
		code = mdwerror.CodeUnevenTokens
	}

	return mdwerror.New(r.Errors[0]).
		WithCode(code).
		WithOperation("length.parse").
		WithDetail("errors", append([]string(nil), r.Errors...)).
		WithDetail("values", len(r.Values))
}
