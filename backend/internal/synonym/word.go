package synonym

import (
	"strings"

	"golang.org/x/text/cases"
)

// Canonical returns the identity key of a word: surrounding whitespace is
// dropped and the rest is Unicode case folded, so "Happy", "HAPPY" and
// " happy " all map to the same key.
func Canonical(word string) string {
	// Casers carry state and are not safe to share across goroutines.
	return cases.Fold().String(strings.TrimSpace(word))
}

// IsBlank reports whether word is empty or consists only of whitespace.
func IsBlank(word string) bool {
	return strings.TrimSpace(word) == ""
}

// SameWord reports whether a and b are the same word under canonical equality.
func SameWord(a, b string) bool {
	return Canonical(a) == Canonical(b)
}
