package length

import (
	"math"
	"strconv"
	"strings"
)

// validDenominators maps each accepted fraction denominator to the factor
// that turns its numerator into sixty-fourths.
var validDenominators = map[float64]float64{
	2:  32,
	4:  16,
	8:  8,
	16: 4,
	32: 2,
	64: 1,
}

type pairResult struct {
	value Value
	raw   string
	valid bool
}

type fractionResult struct {
	numerator   float64
	denominator float64
	raw         string
	valid       bool
}

// Parse tokenizes and parses input.
func Parse(input string) ParseResult {
	return ParseTokens(Tokenize(input))
}

// ParseTokens turns tokens into length values.
//
// Tokens containing '/' or '\' are fractions of an inch; all others must
// alternate value, unit. An odd number of non-fraction tokens aborts with a
// single error and no values. Mixing imperial and metric units is reported
// but the values are still returned.
func ParseTokens(tokens []string) ParseResult {
	var fractional, whole []string
	for _, token := range tokens {
		if isFractional(token) {
			fractional = append(fractional, token)
		} else {
			whole = append(whole, token)
		}
	}

	if len(whole)%2 != 0 {
		return ParseResult{
			Values: []Value{},
			Errors: []string{MsgUnevenTokens},
		}
	}

	pairs := parsePairs(whole)
	fractions := parseFractions(fractional)

	result := ParseResult{
		Values: make([]Value, 0, len(pairs)+len(fractions)),
		Errors: []string{},
	}

	var validPairs []Value
	for _, p := range pairs {
		if !p.valid {
			result.Dropped = append(result.Dropped, p.raw)
			continue
		}
		validPairs = append(validPairs, p.value)
	}

	if !sameSystem(validPairs) {
		result.Errors = append(result.Errors, MsgMixedUnitSystems)
	}

	result.Values = append(result.Values, validPairs...)
	for _, f := range fractions {
		if !f.valid {
			result.Dropped = append(result.Dropped, f.raw)
			continue
		}
		result.Values = append(result.Values, f.toValue())
	}

	return result
}

func isFractional(token string) bool {
	return strings.ContainsAny(token, `/\`)
}

func parsePairs(tokens []string) []pairResult {
	results := make([]pairResult, 0, len(tokens)/2)
	for i := 0; i+1 < len(tokens); i += 2 {
		results = append(results, parsePair(tokens[i], tokens[i+1]))
	}
	return results
}

func parsePair(valueToken, unitToken string) pairResult {
	raw := valueToken + " " + unitToken

	value, ok := parseNumber(valueToken)
	if !ok {
		return pairResult{raw: raw}
	}
	unit, ok := LookupUnit(unitToken)
	if !ok {
		return pairResult{raw: raw}
	}

	return pairResult{value: NewValue(unit, value), raw: raw, valid: true}
}

func parseFractions(tokens []string) []fractionResult {
	results := make([]fractionResult, 0, len(tokens))
	for _, token := range tokens {
		results = append(results, parseFraction(token))
	}
	return results
}

func parseFraction(token string) fractionResult {
	sep := `\`
	if strings.Contains(token, "/") {
		sep = "/"
	}

	parts := strings.Split(token, sep)
	if len(parts) != 2 {
		return fractionResult{raw: token}
	}

	numerator, ok := parseNumber(parts[0])
	if !ok {
		return fractionResult{raw: token}
	}
	denominator, ok := parseNumber(parts[1])
	if !ok {
		return fractionResult{raw: token}
	}

	_, valid := validDenominators[denominator]
	return fractionResult{
		numerator:   numerator,
		denominator: denominator,
		raw:         token,
		valid:       valid,
	}
}

func (f fractionResult) toValue() Value {
	return NewValue(SixtyFourthOfInch, f.numerator*validDenominators[f.denominator])
}

// parseNumber accepts finite decimal numbers only; strconv would also take
// "inf", "nan" and hex floats.
func parseNumber(s string) (float64, bool) {
	if strings.ContainsAny(s, "xXpP_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func sameSystem(values []Value) bool {
	if len(values) == 0 {
		return true
	}
	first := values[0].System()
	for _, v := range values[1:] {
		if v.System() != first {
			return false
		}
	}
	return true
}
