package taxonomy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// decomposer reduces accented characters to their base letters. NFKD splits
// each character into base letter plus combining marks, then the marks are
// removed so "Bhà" and "bha" produce the same key.
var decomposer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize converts arbitrary ingredient text into the canonical form used
// as a lookup key. The result contains only lowercase ASCII letters, digits,
// '+', '-', and single spaces. Pure, deterministic, and idempotent:
// Normalize(Normalize(s)) == Normalize(s) for all s.
//
// Empty or all-symbol input normalizes to the empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)
	decomposed, _, err := transform.String(decomposer, lowered)
	if err != nil {
		// Malformed UTF-8; fall back to the lowered input so the character
		// filter below can still salvage the ASCII portion.
		decomposed = lowered
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+':
			b.WriteRune(r)
		case isDash(r):
			b.WriteByte('-')
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
		// Everything else (punctuation, symbols, leftover combining marks,
		// non-Latin scripts) is dropped: it cannot match the taxonomy.
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// isDash reports whether r is an ASCII hyphen or one of the Unicode
// dash/hyphen variants: U+2010 hyphen through U+2015 horizontal bar
// (covers non-breaking hyphen, figure dash, en dash, em dash).
func isDash(r rune) bool {
	return r == '-' || (r >= 0x2010 && r <= 0x2015)
}
