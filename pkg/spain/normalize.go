package spain

import "strings"

// Normalize strips ASCII space and hyphen separators and upper-cases the
// remaining characters. Whitespace-only input normalizes to the empty string;
// whether an empty value is an error is the caller's concern, not this
// layer's. Normalize is idempotent.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, trimmed)
	return strings.ToUpper(stripped)
}
