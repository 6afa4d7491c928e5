package strutil

// Apply runs s through each transformation in order and returns the result.
func Apply(s string, transforms ...func(string) string) string {
	for _, transform := range transforms {
		s = transform(s)
	}
	return s
}

// Compose builds a reusable transformation from a chain of string
// functions. Preferred over repeated Apply calls when the same chain is
// used in multiple places.
func Compose(transforms ...func(string) string) func(string) string {
	return func(s string) string {
		return Apply(s, transforms...)
	}
}
