// Package strutil provides a collection of pure, stateless helper functions
// for manipulating strings: case conversion, trimming, splitting, slicing,
// word-boundary-aware truncation, slug generation and pattern-based
// replacement.
//
// The package exists for the string handling that sits just beyond the
// standard library: converting between naming conventions, truncating text
// without cutting words in half, turning arbitrary Unicode titles into
// URL-safe slugs, and replacing text by literal match or compiled pattern
// through a single consistent surface.
//
// # Features
//
//   - Case conversion between camelCase, kebab-case and Title Case, plus
//     the usual Lower/Upper/Capitalize primitives.
//   - Trimming with a configurable strip-set (Trim, TrimLeft, TrimRight).
//   - Replacement by literal substring or precompiled pattern, replacing
//     either every occurrence or only the first.
//   - Prune – truncation that backs up to the previous word boundary
//     instead of cutting a word in half.
//   - Slugify – diacritic transliteration plus dasherization, producing
//     lowercase ASCII slugs from arbitrary Unicode input.
//   - Small assembly helpers: Join, Concat, Surround, Quote, Unquote,
//     Repeat, Slice.
//
// # Usage
//
// Import the package using its module path:
//
//	import "github.com/dmitrymomot/strutil"
//
// Example – building a URL slug from a post title:
//
//	slug := strutil.Slugify("Un été à Paris")
//	// slug == "un-ete-a-paris"
//
// Example – truncating a preview without splitting a word:
//
//	preview := strutil.Prune("Hello World", 5)
//	// preview == "Hello..."
//
// For convenience the Apply and Compose helpers allow the creation of
// transformation pipelines:
//
//	clean := strutil.Compose(
//	    strutil.CollapseWhitespace,
//	    strutil.Lower,
//	)
//
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// # Error handling
//
// None of the helpers returns an error. Every function is total over its
// input domain: the empty string maps to the empty string, and helpers that
// cannot apply (Unquote on a one-rune string, Prune that would lengthen its
// input) return the input unchanged. Functions that accept a pattern take a
// *regexp.Regexp, so an invalid pattern is rejected where it is compiled,
// not inside this package.
//
// # Concurrency
//
// All functions are pure and share no mutable state; they are safe for
// concurrent use without synchronization. The only package-level values are
// precompiled regular expressions, which are safe for concurrent matching.
package strutil
