// Package text renders room output: list joining, the exit sentence, and
// word wrapping of display lines.
package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muddyrogue/engine/internal/game/world"
)

// emphasis is the fixed two-character marker wrapped around emphasized
// words. The console renderer translates it to a bold style.
const emphasis = "**"

// Emphasize wraps s in the emphasis marker.
func Emphasize(s string) string {
	return emphasis + s + emphasis
}

// FormatList joins items into a sentence fragment with an Oxford comma:
// "a", "a and b", "a, b, and c".
func FormatList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// FormatExits renders the available-exits sentence for a room. Exit names
// are emphasized and sorted lexicographically; map iteration order is not
// stable, and the sentence must be reproducible.
//
// Postcondition: Returns "" when the room has no exits.
func FormatExits(exits map[world.Direction]string) string {
	if len(exits) == 0 {
		return ""
	}

	names := make([]string, 0, len(exits))
	for dir := range exits {
		names = append(names, string(dir))
	}
	sort.Strings(names)
	for i, name := range names {
		names[i] = Emphasize(name)
	}

	if len(names) == 1 {
		return fmt.Sprintf("There is an available exit to the %s.", names[0])
	}
	return fmt.Sprintf("There are available exits to the %s.", FormatList(names))
}
