// Package normalize canonicalizes user-entered text before storage, so
// lookups and duplicate checks compare like with like.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Text applies Unicode NFC normalization, trims surrounding whitespace, and
// collapses internal runs of whitespace to a single space. Composing first
// matters for titles typed on different keyboards: "o'" entered as a
// combining sequence must equal the precomposed form.
func Text(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fold lowercases normalized text for case-insensitive comparison.
func Fold(s string) string {
	return strings.ToLower(Text(s))
}
