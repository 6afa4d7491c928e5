package strutil

import (
	"slices"
	"strings"
)

// Parallel transliteration tables: the rune at index i of slugSource maps
// to the rune at index i of slugTarget. The input is lowercased before the
// lookup, so only lowercase forms are listed.
var (
	slugSource = []rune("ąàáäâãåæăćčĉęèéëêĝĥìíïîĵłľńňòóöőôõðøśșşšŝťțţŭùúüűûñÿýçżźž")
	slugTarget = []rune("aaaaaaaaaccceeeeeghiiiijllnnoooooooossssstttuuuuuunyyczzz")
)

// Slugify converts arbitrary text to a lowercase, hyphen-delimited,
// URL-safe ASCII slug: the input is lowercased, diacritics are
// transliterated through the fixed table above, any remaining rune that is
// not a word character, whitespace or hyphen is stripped, and the result is
// dasherized. Slugify is idempotent: its output passes through unchanged.
func Slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if i := slices.Index(slugSource, r); i >= 0 {
			if i < len(slugTarget) {
				b.WriteRune(slugTarget[i])
			} else {
				// Tables out of sync; degrade to a separator.
				b.WriteRune('-')
			}
			continue
		}
		b.WriteRune(r)
	}

	return Dasherize(nonSlugCharRegex.ReplaceAllString(b.String(), ""))
}
