package text

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muddyrogue/engine/internal/game/world"
)

func TestFormatList(t *testing.T) {
	cases := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"one", []string{"north"}, "north"},
		{"two", []string{"east", "north"}, "east and north"},
		{"three", []string{"east", "north", "west"}, "east, north, and west"},
		{"four", []string{"a", "b", "c", "d"}, "a, b, c, and d"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatList(tc.items))
		})
	}
}

func TestFormatExits_None(t *testing.T) {
	assert.Equal(t, "", FormatExits(nil))
	assert.Equal(t, "", FormatExits(map[world.Direction]string{}))
}

func TestFormatExits_Single(t *testing.T) {
	exits := map[world.Direction]string{world.North: "2"}
	assert.Equal(t, "There is an available exit to the **north**.", FormatExits(exits))
}

func TestFormatExits_Two(t *testing.T) {
	// Names sort lexicographically regardless of map order.
	exits := map[world.Direction]string{world.North: "2", world.East: "3"}
	assert.Equal(t, "There are available exits to the **east** and **north**.", FormatExits(exits))
}

func TestFormatExits_Three(t *testing.T) {
	exits := map[world.Direction]string{
		world.North: "2",
		world.East:  "3",
		world.Up:    "4",
	}
	assert.Equal(t,
		"There are available exits to the **east**, **north**, and **up**.",
		FormatExits(exits))
}

func TestFormatExits_CustomDirection(t *testing.T) {
	exits := map[world.Direction]string{"stairs": "9"}
	assert.Equal(t, "There is an available exit to the **stairs**.", FormatExits(exits))
}

func TestEmphasize(t *testing.T) {
	assert.Equal(t, "**north**", Emphasize("north"))
}
