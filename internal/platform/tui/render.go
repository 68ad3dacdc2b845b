package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ogawakh/game-test/internal/core"
)

// palette maps core colors to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorCyan:   lipgloss.Color("14"),
	core.ColorYellow: lipgloss.Color("11"),
	core.ColorRed:    lipgloss.Color("9"),
	core.ColorWhite:  lipgloss.Color("15"),
	core.ColorGray:   lipgloss.Color("245"),
}

// cellStyle returns the style for cells of color c. Unknown colors render
// unstyled.
func cellStyle(c core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg, ok := palette[c]; ok {
		style = style.Foreground(fg)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single escape sequence.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	run := make([]rune, 0, s.Width())
	runColor := core.ColorDefault

	flush := func() {
		if len(run) == 0 {
			return
		}
		sb.WriteString(cellStyle(runColor).Render(string(run)))
		run = run[:0]
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()

	return sb.String()
}
