package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_ShortLineUnchanged(t *testing.T) {
	assert.Equal(t, []string{"hello world"}, Wrap("hello world", 40))
}

func TestWrap_BreaksAtWordBoundary(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 15)
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 15, "line %q exceeds limit", line)
	}
}

func TestWrap_PreservesExplicitNewlines(t *testing.T) {
	lines := Wrap("first\n\nsecond", 40)
	assert.Equal(t, []string{"first", "", "second"}, lines)
}

func TestWrap_DisabledLimit(t *testing.T) {
	lines := Wrap("a very long line that would otherwise wrap somewhere", 0)
	assert.Equal(t, []string{"a very long line that would otherwise wrap somewhere"}, lines)
}
