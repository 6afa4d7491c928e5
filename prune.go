package strutil

import (
	"strings"
	"unicode"
)

// Prune truncates s to at most maxLen runes without cutting a word in half,
// appending the ellipsis (default "..."). Input that already fits is
// returned unchanged, as is input that pruning would fail to shorten.
func Prune(s string, maxLen int, ellipsis ...string) string {
	suffix := "..."
	if len(ellipsis) > 0 {
		suffix = ellipsis[0]
	}
	if maxLen < 0 {
		maxLen = 0
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	// Mask the candidate slice: runes whose upper and lower forms differ
	// become 'A', everything else a space. The mask locates a safe cut
	// without caring which alphabet the text uses.
	mask := make([]byte, maxLen+1)
	for i, r := range runes[:maxLen+1] {
		if unicode.ToUpper(r) != unicode.ToLower(r) {
			mask[i] = 'A'
		} else {
			mask[i] = ' '
		}
	}

	tmpl := string(mask)
	if maxLen > 0 && mask[maxLen-1] == 'A' && mask[maxLen] == 'A' {
		// The cut landed inside a word; back up to the previous separator.
		tmpl = trailingWordRegex.ReplaceAllString(tmpl, "")
	} else {
		tmpl = strings.TrimRight(tmpl[:len(tmpl)-1], " ")
	}

	// The mask is ASCII, so its byte length is the number of runes to keep.
	kept := len(tmpl)
	if kept+len([]rune(suffix)) > len(runes) {
		return s
	}
	return string(runes[:kept]) + suffix
}
