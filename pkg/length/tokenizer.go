package length

import (
	"strings"
	"unicode"
)

// Tokenize splits input into value, unit and fraction tokens.
//
// The input is lower-cased and trimmed. Runes are either numeric-like
// (digits, '.', '/', '\') or not, and a token ends wherever the class
// changes or at whitespace. Runes other than letters, digits, '.', '/',
// '\', '"' and '\'' are dropped without ending the current token.
func Tokenize(input string) []string {
	input = strings.TrimSpace(strings.ToLower(input))

	tokens := []string{}
	var current []rune

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}

	for _, r := range input {
		if unicode.IsSpace(r) {
			flush()
			continue
		}
		if !isRecognized(r) {
			continue
		}
		if len(current) > 0 && !sameClass(r, current[len(current)-1]) {
			flush()
		}
		current = append(current, r)
	}
	flush()

	return tokens
}

func isNumeric(r rune) bool {
	return unicode.IsDigit(r) || r == '.' || r == '/' || r == '\\'
}

func isRecognized(r rune) bool {
	return isNumeric(r) || unicode.IsLetter(r) || r == '"' || r == '\''
}

func sameClass(a, b rune) bool {
	return isNumeric(a) == isNumeric(b)
}
