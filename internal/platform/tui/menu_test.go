package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ogawakh/game-test/internal/core"
	"github.com/ogawakh/game-test/internal/registry"
	"github.com/ogawakh/game-test/internal/storage"
)

const menuGameID = "zz-menu"

func init() {
	registry.Register(menuGameID, func() registry.Game { return &stubGame{} })
}

func pressMenu(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func menuIndex(t *testing.T, m MenuModel) int {
	t.Helper()
	for i, item := range m.items {
		if item.GameID == menuGameID {
			return i
		}
	}
	t.Fatalf("menu has no %s item", menuGameID)
	return -1
}

func TestMenuShowsRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.ScoreEntry{GameID: menuGameID, Player: "alice", Score: 40})
	store.SaveRun(storage.ScoreEntry{GameID: menuGameID, Player: "bob", Score: 15})

	m := NewMenuModel(store, core.DefaultConfig())
	item := m.items[menuIndex(t, m)]
	if item.Title != "Stub" || item.HighScore != 40 || item.Runs != 2 {
		t.Errorf("item = %+v, expected Stub with best 40 over 2 runs", item)
	}
	if view := m.View(); !strings.Contains(view, "best 40, 2 runs") {
		t.Errorf("View() missing record:\n%s", view)
	}
}

func TestMenuWithoutStore(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{})
	item := m.items[menuIndex(t, m)]
	if item.HighScore != 0 || item.Runs != 0 {
		t.Errorf("item = %+v, expected no record", item)
	}
	if m.width != 80 || m.height != 24 {
		t.Errorf("menu size = %dx%d, expected the 80x24 default", m.width, m.height)
	}
}

func TestMenuNavigationStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	m, _ = pressMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor after up at top = %d, expected 0", m.cursor)
	}
	for range len(m.items) + 2 {
		m, _ = pressMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor after many downs = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	for range menuIndex(t, m) {
		m, _ = pressMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	}

	m, cmd := pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != menuGameID {
		t.Fatalf("Selected() = %v, expected %s", m.Selected(), menuGameID)
	}
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	sb, _ := pressMenu(m, tea.KeyMsg{Type: tea.KeyTab})
	if !sb.WantsScoreboard() {
		t.Error("tab should ask for the scoreboard")
	}
	if sb.Current().GameID == "" {
		t.Error("Current() should name the game under the cursor")
	}

	q, _ := pressMenu(m, runeKey('q'))
	if !q.IsQuitting() || q.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(MenuModel)

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestMenuCurrentEmpty(t *testing.T) {
	var m MenuModel
	if got := m.Current(); got != (MenuItem{}) {
		t.Errorf("Current() on an empty menu = %+v, expected zero", got)
	}
}
