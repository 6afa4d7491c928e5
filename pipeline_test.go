package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strutil"
)

func TestApply(t *testing.T) {
	result := strutil.Apply("  Mixed CASE   Input\n",
		strutil.CollapseWhitespace,
		strutil.Lower,
	)
	assert.Equal(t, "mixed case input", result)

	assert.Equal(t, "untouched", strutil.Apply("untouched"))
}

func TestCompose(t *testing.T) {
	slugish := strutil.Compose(
		strutil.CollapseWhitespace,
		strutil.SelectorCase,
	)

	assert.Equal(t, "hello-world", slugish("  Hello   World  "))
	assert.Equal(t, "", slugish(""))
}
