// Package length parses free-form length measurements and renders them in
// metric and imperial notation.
//
// The pipeline has three stages:
//
//	tokens := length.Tokenize(`2Feet 4 1/64"`)   // ["2" "feet" "4" "1/64" "\""]
//	result := length.ParseTokens(tokens)         // 2 feet, 4 inches, 1/64 inch
//	length.DisplayImperial(result.Values)        // 2' 4 1/64"
//
// Parsing is best effort: unknown units, unparseable numbers and fractions
// with an unsupported denominator are skipped without an error. Only an
// uneven number of value/unit tokens and a mix of imperial and metric units
// are reported in ParseResult.Errors.
//
// All values are summed in sixty-fourths of an inch before display.
package length
