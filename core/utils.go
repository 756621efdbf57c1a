package core

import "strings"

// CleanString normalizes user-entered text: surrounding whitespace is
// trimmed and, for case-insensitive identifiers, the result is lowered.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		s = strings.ToLower(s)
	}
	return s
}
