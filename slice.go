package strutil

import "strings"

// Slice extracts the substring between the rune indexes start and end (end
// exclusive). Negative indexes count from the end of the string and
// out-of-range indexes are clamped. Omitting end slices to the end of the
// string.
func Slice(s string, start int, end ...int) string {
	runes := []rune(s)
	n := len(runes)

	from := clampIndex(start, n)
	to := n
	if len(end) > 0 {
		to = clampIndex(end[0], n)
	}
	if from >= to {
		return ""
	}

	return string(runes[from:to])
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Repeat returns s repeated n times. Non-positive counts yield an empty
// string.
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
