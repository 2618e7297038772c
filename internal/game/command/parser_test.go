package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Empty(t *testing.T) {
	assert.Equal(t, ParseResult{}, Parse(""))
	assert.Equal(t, ParseResult{}, Parse("   "))
}

func TestParse_SingleWord(t *testing.T) {
	result := Parse("north")
	assert.Equal(t, "north", result.Command)
	assert.Empty(t, result.Args)
}

func TestParse_Lowercases(t *testing.T) {
	assert.Equal(t, "north", Parse("NORTH").Command)
	assert.Equal(t, "look", Parse("Look").Command)
}

func TestParse_WithArgs(t *testing.T) {
	result := Parse("look  at   the sign")
	assert.Equal(t, "look", result.Command)
	assert.Equal(t, []string{"at", "the", "sign"}, result.Args)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	result := Parse("  n  ")
	assert.Equal(t, "n", result.Command)
	assert.Empty(t, result.Args)
}
