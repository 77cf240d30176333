package search

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases text, splits it on whitespace, and strips every rune
// that is not a letter, digit, or underscore. Pieces that end up empty are
// dropped. Order is preserved because term frequencies count repeats.
func Tokenize(text string) []string {
	var tokens []string
	for _, piece := range strings.Fields(strings.ToLower(text)) {
		var b strings.Builder
		for _, r := range piece {
			if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
		}
	}
	return tokens
}
