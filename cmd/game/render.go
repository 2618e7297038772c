package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muddyrogue/engine/internal/game/minimap"
)

var (
	boldStyle   = lipgloss.NewStyle().Bold(true)
	originStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")) // pink
	roomStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))             // green
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))            // dark grey
)

var emphasisPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// renderLine translates the **emphasis** markers in a display line to a bold
// terminal style.
func renderLine(line string) string {
	return emphasisPattern.ReplaceAllStringFunc(line, func(match string) string {
		return boldStyle.Render(strings.TrimSuffix(strings.TrimPrefix(match, "**"), "**"))
	})
}

// renderMinimap draws the layout as a character grid, north up, with the
// player marked "@" and other rooms "#".
func renderMinimap(nodes []minimap.Node, maxDistance int) []string {
	if len(nodes) == 0 {
		return []string{"(no map available)"}
	}

	type cell struct{ x, y int }
	placed := make(map[cell]minimap.Node, len(nodes))
	var origin minimap.Node
	for _, n := range nodes {
		placed[cell{n.X, n.Y}] = n
		if n.IsOrigin {
			origin = n
		}
	}

	lines := make([]string, 0, 2*maxDistance+2)
	for y := maxDistance; y >= -maxDistance; y-- {
		var row strings.Builder
		for x := -maxDistance; x <= maxDistance; x++ {
			if x > -maxDistance {
				row.WriteByte(' ')
			}
			n, ok := placed[cell{x, y}]
			switch {
			case !ok:
				row.WriteString(emptyStyle.Render("."))
			case n.IsOrigin:
				row.WriteString(originStyle.Render("@"))
			default:
				row.WriteString(roomStyle.Render("#"))
			}
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, "", fmt.Sprintf("You are at: %s", boldStyle.Render(origin.RoomName)))
	return lines
}
