package strutil

import "strings"

// Join concatenates items with the separator between elements, never
// before the first or after the last.
func Join(sep string, items ...string) string {
	return strings.Join(items, sep)
}

// Concat concatenates items with no separator.
func Concat(items ...string) string {
	return strings.Join(items, "")
}

// Surround wraps s with the given string on both sides.
func Surround(s, wrap string) string {
	return wrap + s + wrap
}

// Quote wraps s in quote runes, double quotes by default.
func Quote(s string, q ...rune) string {
	return Surround(s, string(quoteRune(q)))
}

// Unquote removes a matching pair of quote runes from the ends of s.
// Strings shorter than two runes, or whose first and last runes do not
// both equal the quote rune, are returned unchanged.
func Unquote(s string, q ...rune) string {
	quote := quoteRune(q)
	runes := []rune(s)
	if len(runes) < 2 || runes[0] != quote || runes[len(runes)-1] != quote {
		return s
	}
	return string(runes[1 : len(runes)-1])
}

func quoteRune(q []rune) rune {
	if len(q) > 0 {
		return q[0]
	}
	return '"'
}
