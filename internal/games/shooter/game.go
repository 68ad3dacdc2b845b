// Package shooter implements a vertical arcade shooter.
// The player moves a craft along the bottom of the playfield and shoots
// enemies that descend from the top; the game ends when an enemy reaches
// the craft.
package shooter

import (
	"github.com/ogawakh/game-test/internal/config"
	"github.com/ogawakh/game-test/internal/core"
	"github.com/ogawakh/game-test/internal/registry"
)

// GameID is the registry identifier of the shooter.
const GameID = "shooter"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts an Engine to the arcade platform: it translates input frames
// to intents, handles pausing, keeps a replay recording and draws snapshots.
type Game struct {
	engine    *Engine
	snapshot  RenderSnapshot
	recording *Recording
	runtime   core.RuntimeConfig
	paused    bool
	err       error // Configuration problem from the last Reset
}

// New creates a new shooter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset initializes or restarts the game with the configured settings.
// A configuration that cannot be loaded or fails validation is replaced by
// the defaults; the problem is available from Err.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, loadErr := config.LoadShooter(configPath)
	if loadErr != nil {
		cfg = config.DefaultShooterConfig()
	}

	g.ResetWith(runtime, SettingsFromConfig(cfg))
	if loadErr != nil {
		g.err = loadErr
	}
}

// ResetWith restarts the game with explicit settings.
func (g *Game) ResetWith(runtime core.RuntimeConfig, s Settings) {
	g.runtime = runtime
	g.paused = false
	g.err = nil

	engine, err := NewSeededEngine(s, runtime.Seed)
	if err != nil {
		g.err = err
		s = DefaultSettings()
		engine, _ = NewSeededEngine(s, runtime.Seed)
	}

	g.engine = engine
	g.snapshot = engine.Snapshot()
	g.recording = NewRecording(runtime.Seed, s)
}

// Err returns the configuration error encountered by the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// IntentFromFrame converts platform actions to an engine intent.
// Both directions pass through; the engine resolves them.
func IntentFromFrame(in core.InputFrame) Intent {
	return Intent{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		Fire:      in.Has(core.ActionFire),
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.snapshot.GameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	intent := IntentFromFrame(in)
	g.recording.Append(intent)
	g.snapshot = g.engine.Tick(intent)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snapshot.Score,
		GameOver: g.snapshot.GameOver,
		Paused:   g.paused,
		Tick:     g.snapshot.Frame,
	}
}

// Snapshot returns the state produced by the most recent tick.
func (g *Game) Snapshot() RenderSnapshot {
	return g.snapshot
}

// Settings returns the constants the current session runs with.
func (g *Game) Settings() Settings {
	return g.engine.Settings()
}

// Recording returns the replay of the current session so far.
func (g *Game) Recording() Recording {
	rec := *g.recording
	rec.Intents = append([]Intent(nil), g.recording.Intents...)
	return rec
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
