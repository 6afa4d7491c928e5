package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lower converts a string to lowercase.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper converts a string to uppercase.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Capitalize uppercases the first rune and leaves the rest of the string
// untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// CamelCase converts a string to camelCase. Non-alphanumeric characters
// start new words, with the first word lowercased and subsequent words
// capitalized.
func CamelCase(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	newWord := false
	first := true
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			switch {
			case first:
				b.WriteRune(unicode.ToLower(r))
				first = false
			case newWord:
				b.WriteRune(unicode.ToUpper(r))
				newWord = false
			default:
				b.WriteRune(unicode.ToLower(r))
			}
			continue
		}
		if !first {
			newWord = true
		}
	}

	return b.String()
}

// SelectorCase converts a string to kebab-case, the inverse of CamelCase:
// uppercase letters start a new hyphen-separated word and runs of
// non-alphanumeric characters collapse into a single hyphen.
func SelectorCase(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	prevDash := true
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if !prevDash {
				b.WriteRune('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

// TitleCase capitalizes the first letter of every word and lowercases the
// rest. Words are separated by the runes of the concatenated delimiters,
// which default to whitespace and hyphen. Delimiters are kept verbatim.
func TitleCase(s string, delimiters ...string) string {
	delims := " \t\r\n-"
	if len(delimiters) > 0 {
		delims = strings.Join(delimiters, "")
	}

	var b strings.Builder
	newWord := true
	for _, r := range s {
		if strings.ContainsRune(delims, r) {
			b.WriteRune(r)
			newWord = true
			continue
		}
		if newWord {
			b.WriteRune(unicode.ToUpper(r))
			newWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// Dasherize converts naming-convention input to dashed form: the trimmed
// string gets a hyphen before every uppercase letter, runs of hyphens,
// underscores and whitespace collapse into a single hyphen, and the result
// is lowercased. Note that a leading uppercase letter yields a leading
// hyphen: Dasherize("MozTransform") == "-moz-transform".
func Dasherize(s string) string {
	s = strings.TrimSpace(s)
	s = upperCharRegex.ReplaceAllString(s, "-$0")
	s = separatorRunRegex.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}
