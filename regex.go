package strutil

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
	newlineRegex    = regexp.MustCompile(`[\r\n]+`)

	// Prune boundary search: trailing word plus the whitespace before it
	trailingWordRegex = regexp.MustCompile(`\s*\S+$`)

	// Slug filtering and dasherization
	nonSlugCharRegex  = regexp.MustCompile(`[^\w\s-]`)
	upperCharRegex    = regexp.MustCompile(`\p{Lu}`)
	separatorRunRegex = regexp.MustCompile(`[-_\s]+`)
)
