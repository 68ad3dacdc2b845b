package shooter

import (
	"math"
	"slices"

	"github.com/ogawakh/game-test/internal/core"
)

// RenderSnapshot is the read-only result of a tick: everything needed to draw
// a frame and report the score. Slices are copies owned by the caller.
type RenderSnapshot struct {
	Player      core.Box
	Projectiles []core.Box
	Enemies     []core.Box
	Score       int
	GameOver    bool
	Frame       int // Ticks consumed so far
}

// Snapshot returns the current state without advancing the simulation.
func (e *Engine) Snapshot() RenderSnapshot {
	return RenderSnapshot{
		Player:      e.player,
		Projectiles: slices.Clone(e.projectiles),
		Enemies:     slices.Clone(e.enemies),
		Score:       e.score,
		GameOver:    e.gameOver,
		Frame:       e.frame,
	}
}

// Equal reports whether two snapshots describe the same state.
func (snap RenderSnapshot) Equal(other RenderSnapshot) bool {
	return snap.Player == other.Player &&
		snap.Score == other.Score &&
		snap.GameOver == other.GameOver &&
		snap.Frame == other.Frame &&
		slices.Equal(snap.Projectiles, other.Projectiles) &&
		slices.Equal(snap.Enemies, other.Enemies)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap RenderSnapshot) Hash() uint64 {
	h := uint64(snap.Frame)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	} else {
		h *= 31
	}

	h = hashBox(h, snap.Player)
	h = h*31 + uint64(len(snap.Projectiles))
	for _, p := range snap.Projectiles {
		h = hashBox(h, p)
	}
	h = h*31 + uint64(len(snap.Enemies))
	for _, en := range snap.Enemies {
		h = hashBox(h, en)
	}

	return h
}

func hashBox(h uint64, b core.Box) uint64 {
	h = h*31 + math.Float64bits(b.X)
	h = h*31 + math.Float64bits(b.Y)
	h = h*31 + math.Float64bits(b.W)
	h = h*31 + math.Float64bits(b.H)
	return h
}
