package strutil

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing runes belonging to the strip-set, the
// runes of the concatenated chars arguments. Without arguments the
// strip-set is Unicode whitespace. An explicitly empty strip-set removes
// nothing.
func Trim(s string, chars ...string) string {
	if len(chars) == 0 {
		return strings.TrimSpace(s)
	}
	return strings.Trim(s, strings.Join(chars, ""))
}

// TrimLeft is Trim restricted to the start of the string.
func TrimLeft(s string, chars ...string) string {
	if len(chars) == 0 {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	}
	return strings.TrimLeft(s, strings.Join(chars, ""))
}

// TrimRight is Trim restricted to the end of the string.
func TrimRight(s string, chars ...string) string {
	if len(chars) == 0 {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}
	return strings.TrimRight(s, strings.Join(chars, ""))
}
