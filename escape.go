package strutil

import (
	"regexp"
	"strings"
)

// EscapeRegExp escapes regular expression metacharacters so that the
// result, compiled as a pattern, matches s literally. The forward slash is
// escaped as well, for parity with pattern dialects that use it as a
// delimiter.
func EscapeRegExp(s string) string {
	return strings.ReplaceAll(regexp.QuoteMeta(s), "/", `\/`)
}
