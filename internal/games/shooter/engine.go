package shooter

import (
	"fmt"

	"github.com/ogawakh/game-test/internal/core"
)

// Intent is the input snapshot for one tick.
//
// MoveLeft and MoveRight are levels: they hold for as long as the key is
// considered down. Fire must be an edge: true for exactly one tick per press.
// The engine fires once for every tick Fire is set and does no rate limiting
// of its own.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
}

// Engine owns all state of one shooter session and advances it one tick at a
// time. It has no timers and no goroutines; callers must not invoke Tick
// concurrently.
type Engine struct {
	settings Settings
	rng      core.RandSource

	player      core.Box
	projectiles []core.Box
	enemies     []core.Box

	frame    int  // Ticks consumed while live
	score    int  // Reward * enemies destroyed
	gameOver bool // One-way latch
}

// NewEngine validates the settings and places the player at the bottom
// center of the playfield. The random source drives enemy spawn positions;
// a seeded source makes a session fully reproducible.
func NewEngine(s Settings, rng core.RandSource) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("shooter: %w: random source is required", ErrInvalidConfiguration)
	}

	return &Engine{
		settings: s,
		rng:      rng,
		player: core.NewBox(
			s.PlayfieldWidth/2-s.PlayerWidth/2,
			s.PlayfieldHeight-s.PlayerHeight-s.PlayerMargin,
			s.PlayerWidth,
			s.PlayerHeight,
		),
		projectiles: make([]core.Box, 0, 16),
		enemies:     make([]core.Box, 0, 16),
	}, nil
}

// Settings returns the constants the engine was built with.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Frame returns the number of ticks consumed so far.
func (e *Engine) Frame() int {
	return e.frame
}

// GameOver reports whether the player has been struck.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Tick advances the session by one step and returns the resulting state.
// After game over it returns the final state unchanged.
func (e *Engine) Tick(in Intent) RenderSnapshot {
	if e.gameOver {
		return e.Snapshot()
	}

	e.movePlayer(in)
	if in.Fire {
		e.fire()
	}

	e.integrate()
	e.cull()
	e.resolveHits()
	e.checkPlayerHit()

	if e.frame%e.settings.SpawnInterval == 0 {
		e.spawnEnemy()
	}
	e.frame++

	return e.Snapshot()
}

// movePlayer applies horizontal intents. Each guard looks at the position
// before the move; the explicit clamp covers speeds larger than the
// remaining gap.
func (e *Engine) movePlayer(in Intent) {
	maxX := e.settings.PlayfieldWidth - e.player.W

	if in.MoveLeft && e.player.X > 0 {
		e.player.X -= e.settings.PlayerSpeed
	}
	if in.MoveRight && e.player.X < maxX {
		e.player.X += e.settings.PlayerSpeed
	}
	e.player.X = core.ClampF(e.player.X, 0, maxX)
}

// fire launches a projectile centered on the player's top edge.
func (e *Engine) fire() {
	w := e.settings.ProjectileWidth
	e.projectiles = append(e.projectiles, core.NewBox(
		e.player.CenterX()-w/2,
		e.player.Y,
		w,
		e.settings.ProjectileHeight,
	))
}

// spawnEnemy drops an enemy just above the top edge at a random x that keeps
// it fully inside the horizontal bounds.
func (e *Engine) spawnEnemy() {
	w := e.settings.EnemyWidth
	h := e.settings.EnemyHeight
	x := e.rng.Float64() * (e.settings.PlayfieldWidth - w)
	e.enemies = append(e.enemies, core.NewBox(x, -h, w, h))
}

// integrate moves projectiles up and enemies down.
func (e *Engine) integrate() {
	for i := range e.projectiles {
		e.projectiles[i].Y -= e.settings.ProjectileSpeed
	}
	for i := range e.enemies {
		e.enemies[i].Y += e.settings.EnemySpeed
	}
}

// cull drops projectiles that left through the top and enemies that left
// through the bottom.
func (e *Engine) cull() {
	live := e.projectiles[:0]
	for _, p := range e.projectiles {
		if p.Bottom() > 0 {
			live = append(live, p)
		}
	}
	e.projectiles = live

	height := e.settings.PlayfieldHeight
	remaining := e.enemies[:0]
	for _, en := range e.enemies {
		if en.Y < height {
			remaining = append(remaining, en)
		}
	}
	e.enemies = remaining
}

// resolveHits pairs enemies with projectiles. Both are scanned from the
// newest entry backwards; an enemy is destroyed by the first live projectile
// overlapping it, which is spent, so every kill consumes exactly one shot
// and pays the reward once.
func (e *Engine) resolveHits() {
	if len(e.projectiles) == 0 || len(e.enemies) == 0 {
		return
	}

	destroyed := make([]bool, len(e.enemies))
	spent := make([]bool, len(e.projectiles))

	for i := len(e.enemies) - 1; i >= 0; i-- {
		for j := len(e.projectiles) - 1; j >= 0; j-- {
			if spent[j] {
				continue
			}
			if e.enemies[i].Intersects(e.projectiles[j]) {
				destroyed[i] = true
				spent[j] = true
				e.score += e.settings.Reward
				break
			}
		}
	}

	e.enemies = removeMarked(e.enemies, destroyed)
	e.projectiles = removeMarked(e.projectiles, spent)
}

// checkPlayerHit latches game over if any enemy overlaps the player.
func (e *Engine) checkPlayerHit() {
	for _, en := range e.enemies {
		if en.Intersects(e.player) {
			e.gameOver = true
			return
		}
	}
}

// removeMarked filters boxes in place, keeping order.
func removeMarked(boxes []core.Box, marked []bool) []core.Box {
	kept := boxes[:0]
	for i, b := range boxes {
		if !marked[i] {
			kept = append(kept, b)
		}
	}
	return kept
}
