package shooter

import (
	"fmt"

	"github.com/ogawakh/game-test/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	ProjectileChar = '│'
	EnemyChar      = '▓'
)

// Entity colors, following the classic cyan craft / yellow shots / red enemies.
const (
	PlayerColor     = core.ColorCyan
	ProjectileColor = core.ColorYellow
	EnemyColor      = core.ColorRed
	HUDColor        = core.ColorWhite
	BorderColor     = core.ColorGray
)

// cellAspect is how many terminal columns make up the height of one row.
const cellAspect = 2.0

// viewport maps playfield units onto the screen area inside the border.
type viewport struct {
	inner  core.Rect
	sx, sy float64
}

// layout fits the playfield under the HUD line, keeping its proportions as
// far as the terminal width allows.
func layout(screenW, screenH int, s Settings) viewport {
	innerH := core.Max(screenH-3, 1) // HUD row plus top and bottom border
	innerW := int(s.PlayfieldWidth / s.PlayfieldHeight * float64(innerH) * cellAspect)
	innerW = core.Clamp(innerW, 1, core.Max(screenW-2, 1))

	x := (screenW-innerW-2)/2 + 1
	return viewport{
		inner: core.NewRect(x, 2, innerW, innerH),
		sx:    float64(innerW) / s.PlayfieldWidth,
		sy:    float64(innerH) / s.PlayfieldHeight,
	}
}

// project converts a playfield box to on-screen cells, clipped to the
// playfield area. ok is false when nothing of the box is visible.
func (v viewport) project(b core.Box) (core.Rect, bool) {
	r := b.Scale(v.sx, v.sy)
	r.X += v.inner.X
	r.Y += v.inner.Y
	if !r.Intersects(v.inner) {
		return core.Rect{}, false
	}

	x0 := core.Max(r.X, v.inner.X)
	y0 := core.Max(r.Y, v.inner.Y)
	x1 := core.Min(r.Right(), v.inner.Right())
	y1 := core.Min(r.Bottom(), v.inner.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	RenderSnapshotTo(dst, g.snapshot, g.engine.Settings())

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// RenderSnapshotTo draws a snapshot: border, player, projectiles, enemies,
// the score line and, after game over, the game-over panel.
func RenderSnapshotTo(dst *core.Screen, snap RenderSnapshot, s Settings) {
	v := layout(dst.Width(), dst.Height(), s)

	border := core.NewRect(v.inner.X-1, v.inner.Y-1, v.inner.W+2, v.inner.H+2)
	drawBorder(dst, border)

	if r, ok := v.project(snap.Player); ok {
		dst.DrawRectColored(r, PlayerChar, PlayerColor)
	}
	for _, p := range snap.Projectiles {
		if r, ok := v.project(p); ok {
			dst.DrawRectColored(r, ProjectileChar, ProjectileColor)
		}
	}
	for _, en := range snap.Enemies {
		if r, ok := v.project(en); ok {
			dst.DrawRectColored(r, EnemyChar, EnemyColor)
		}
	}

	// Draw HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), HUDColor)
	ticks := fmt.Sprintf(" Tick: %d ", snap.Frame)
	dst.DrawTextColored(dst.Width()-len(ticks)-2, 0, ticks, BorderColor)

	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  B menu", snap.Score))
	}
}

// drawBorder outlines the playfield in the border color.
func drawBorder(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if y != r.Y && y != r.Bottom()-1 && x != r.X && x != r.Right()-1 {
				continue
			}
			dst.SetColored(x, y, dst.Get(x, y), BorderColor)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, HUDColor)
	dst.DrawTextCentered(boxY+3, subtitle)
}
