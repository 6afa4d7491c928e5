package strutil

import (
	"regexp"
	"strings"
)

// Split splits s around every instance of the literal separator. limit caps
// the number of resulting pieces, with the final piece holding the
// unsplit remainder; zero (or a negative value) means unlimited.
func Split(s, sep string, limit int) []string {
	if limit <= 0 {
		limit = -1
	}
	return strings.SplitN(s, sep, limit)
}

// SplitPattern splits s around every match of re, with the same limit
// semantics as Split.
func SplitPattern(s string, re *regexp.Regexp, limit int) []string {
	if limit <= 0 {
		limit = -1
	}
	return re.Split(s, limit)
}

// Words splits s on runs of whitespace, ignoring leading and trailing
// whitespace. Blank input yields an empty slice.
func Words(s string) []string {
	return strings.Fields(s)
}
