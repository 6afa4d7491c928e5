package strutil_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strutil"
)

func TestEscapeRegExp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escapes dot",
			input:    "a.b",
			expected: `a\.b`,
		},
		{
			name:     "escapes arithmetic-looking metacharacters",
			input:    "1+1=2",
			expected: `1\+1=2`,
		},
		{
			name:     "escapes forward slash",
			input:    "a/b",
			expected: `a\/b`,
		},
		{
			name:     "leaves plain text alone",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, strutil.EscapeRegExp(tt.input))
		})
	}
}

func TestEscapeRegExpMatchesLiterally(t *testing.T) {
	inputs := []string{
		`. * + ? ^ $ { } ( ) | [ ] \ /`,
		"price is $5 (today)",
		"a|b",
		"c:\\path\\to[file]",
		"2^10",
	}

	for _, s := range inputs {
		re, err := regexp.Compile("^" + strutil.EscapeRegExp(s) + "$")
		require.NoError(t, err, "input %q", s)
		assert.True(t, re.MatchString(s), "input %q", s)
	}
}
