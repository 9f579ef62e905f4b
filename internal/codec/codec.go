// Package codec maps uppercase Latin letters to the integers 0–25 and back.
package codec

import (
	"strings"
	"unicode"
)

// AlphabetSize is the number of supported symbols, A through Z.
const AlphabetSize = 26

// Fallback is shown for numbers outside the alphabet.
const Fallback = '?'

// CharToNum returns the symbol value of r after uppercasing it.
// The boolean is false for anything outside A–Z.
func CharToNum(r rune) (int64, bool) {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return int64(r - 'A'), true
}

// NumToChar returns the letter for n in [0, 25], or Fallback otherwise.
func NumToChar(n int64) rune {
	if n < 0 || n >= AlphabetSize {
		return Fallback
	}
	return rune('A' + n)
}

// Filter uppercases s and keeps only A–Z, preserving order.
func Filter(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
