package tui

import (
	"strings"
	"testing"

	"github.com/ogawakh/game-test/internal/core"
)

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(1, 1, "Score", core.ColorWhite)
	s.DrawTextColored(7, 1, "##", core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() produced %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[1], "Score") {
		t.Errorf("row 1 = %q, expected it to contain Score", lines[1])
	}
	if !strings.Contains(lines[1], "##") {
		t.Errorf("row 1 = %q, expected it to contain ##", lines[1])
	}
}

func TestCellStyleUnknownColor(t *testing.T) {
	if got := cellStyle(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("cellStyle(unknown).Render(x) = %q, expected plain x", got)
	}
}
