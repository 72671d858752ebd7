// Package wordlist provides word bank filtering helpers.
package wordlist

import "strings"

// Word length bounds for the typed-text challenge.
const (
	MinLen = 4
	MaxLen = 8
)

// ambiguous holds letters that read as digits or as each other once
// distorted.
const ambiguous = "ILO"

// FilterCaptcha keeps upper-case ASCII words of MinLen..MaxLen letters
// without ambiguous glyphs.
func FilterCaptcha(word string) bool {
	if len(word) < MinLen || len(word) > MaxLen {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return !strings.ContainsAny(word, ambiguous)
}

// Normalize trims and upper-cases a raw word list entry.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}
