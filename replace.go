package strutil

import (
	"regexp"
	"strings"
)

// Replace replaces every occurrence of the literal match. Characters that
// are regular expression metacharacters have no special meaning here.
func Replace(s, match, replacement string) string {
	return strings.ReplaceAll(s, match, replacement)
}

// ReplaceFirst replaces only the first occurrence of the literal match.
func ReplaceFirst(s, match, replacement string) string {
	return strings.Replace(s, match, replacement, 1)
}

// ReplacePattern replaces every match of re. The replacement may reference
// capture groups with $1 or ${name}; expansion is delegated to the host
// pattern engine.
func ReplacePattern(s string, re *regexp.Regexp, replacement string) string {
	return re.ReplaceAllString(s, replacement)
}

// ReplaceFirstPattern replaces only the leftmost match of re, regardless of
// how the pattern was constructed. The pattern itself is never modified.
// Capture-group references in the replacement are expanded as in
// ReplacePattern.
func ReplaceFirstPattern(s string, re *regexp.Regexp, replacement string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + string(re.ExpandString(nil, replacement, s, loc)) + s[loc[1]:]
}

// ReplacePatternFunc replaces every match of re with the result of f
// applied to the matched substring.
func ReplacePatternFunc(s string, re *regexp.Regexp, f func(string) string) string {
	return re.ReplaceAllStringFunc(s, f)
}

// ReplaceFirstPatternFunc replaces only the leftmost match of re with the
// result of f applied to the matched substring.
func ReplaceFirstPatternFunc(s string, re *regexp.Regexp, f func(string) string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + f(s[loc[0]:loc[1]]) + s[loc[1]:]
}
