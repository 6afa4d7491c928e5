package strutil

import "strings"

// IsEmpty reports whether the string is empty or contains only whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Contains reports whether sub is within s. The empty substring is
// contained in every string.
func Contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// StartsWith reports whether s begins with prefix. Every string starts with
// the empty prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix. Every string ends with the
// empty suffix.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}
