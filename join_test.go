package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strutil"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		sep      string
		items    []string
		expected string
	}{
		{
			name:     "joins with separator between elements",
			sep:      "-",
			items:    []string{"a", "b", "c"},
			expected: "a-b-c",
		},
		{
			name:     "single element has no separator",
			sep:      "-",
			items:    []string{"a"},
			expected: "a",
		},
		{
			name:     "no elements yields empty string",
			sep:      "-",
			items:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, strutil.Join(tt.sep, tt.items...))
		})
	}
}

func TestConcat(t *testing.T) {
	assert.Equal(t, "ab", strutil.Concat("a", "b"))
	assert.Equal(t, "", strutil.Concat())
}

func TestSurround(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		wrap     string
		expected string
	}{
		{
			name:     "wraps both sides",
			s:        "x",
			wrap:     "**",
			expected: "**x**",
		},
		{
			name:     "empty wrap is identity",
			s:        "x",
			wrap:     "",
			expected: "x",
		},
		{
			name:     "wraps the empty string",
			s:        "",
			wrap:     "|",
			expected: "||",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, strutil.Surround(tt.s, tt.wrap))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"hi"`, strutil.Quote("hi"))
	assert.Equal(t, "'hi'", strutil.Quote("hi", '\''))
	assert.Equal(t, `""`, strutil.Quote(""))
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		q        []rune
		expected string
	}{
		{
			name:     "removes double quotes by default",
			input:    `"hi"`,
			expected: "hi",
		},
		{
			name:     "removes a custom quote rune",
			input:    "'hi'",
			q:        []rune{'\''},
			expected: "hi",
		},
		{
			name:     "mismatched ends stay unchanged",
			input:    `"hi'`,
			expected: `"hi'`,
		},
		{
			name:     "single quote character stays unchanged",
			input:    `"`,
			expected: `"`,
		},
		{
			name:     "adjacent quote pair yields empty string",
			input:    `""`,
			expected: "",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, strutil.Unquote(tt.input, tt.q...))
		})
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	inputs := []string{"", "a", "hello world", "héllo", `say "hi"`}

	for _, s := range inputs {
		assert.Equal(t, s, strutil.Unquote(strutil.Quote(s)), "input %q", s)
		assert.Equal(t, s, strutil.Unquote(strutil.Quote(s, '\''), '\''), "input %q", s)
	}
}
