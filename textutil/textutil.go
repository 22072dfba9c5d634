// Package textutil provides the shared text folding primitives used by the
// alias index and the query resolver. Alias strings and incoming queries must
// be folded identically or substring matching silently breaks, so both sides
// go through Fold.
package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Strips punctuation but keeps word characters, whitespace and the Devanagari
// block (U+0900-U+097F). Splitting Hindi on punctuation would fragment valid
// compound terms, so the whole block survives folding untouched.
var punctPattern = regexp.MustCompile(`[^\w\s\x{0900}-\x{097F}]`)

var spacePattern = regexp.MustCompile(`\s+`)

// Fold lower-cases, NFKC-normalizes and strips punctuation from text.
// Fold is a fixed point: Fold(Fold(s)) == Fold(s).
func Fold(text string) string {
	folded := strings.ToLower(strings.TrimSpace(text))
	folded = norm.NFKC.String(folded)
	folded = punctPattern.ReplaceAllString(folded, "")
	folded = spacePattern.ReplaceAllString(folded, " ")
	return strings.TrimSpace(folded)
}

// HasDevanagari reports whether text contains at least one code point in the
// Devanagari block. One is enough: language detection is deliberately binary
// and not calibrated for code-mixed text beyond this.
func HasDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

// Tokens splits folded text on whitespace.
func Tokens(text string) []string {
	return strings.Fields(text)
}
