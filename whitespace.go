package strutil

import "strings"

// CollapseWhitespace normalizes whitespace by replacing runs of consecutive
// whitespace characters with a single space and trimming the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// StripNewlines replaces every run of line breaks with a single space. The
// rest of the string, including other whitespace, is untouched.
func StripNewlines(s string) string {
	return newlineRegex.ReplaceAllString(s, " ")
}
