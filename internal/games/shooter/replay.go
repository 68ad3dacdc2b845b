package shooter

import (
	"math/rand"
)

// Recording captures everything needed to reproduce a session: the spawn
// seed, the constants, and the intent fed to every tick.
type Recording struct {
	Seed     int64
	Settings Settings
	Intents  []Intent
}

// NewRecording starts an empty recording.
func NewRecording(seed int64, s Settings) *Recording {
	return &Recording{
		Seed:     seed,
		Settings: s,
		Intents:  make([]Intent, 0, 1024),
	}
}

// Append records the intent of one tick.
func (r *Recording) Append(in Intent) {
	r.Intents = append(r.Intents, in)
}

// Len returns the number of recorded ticks.
func (r Recording) Len() int {
	return len(r.Intents)
}

// NewSeededEngine builds an engine whose spawns are drawn from
// math/rand seeded with seed.
func NewSeededEngine(s Settings, seed int64) (*Engine, error) {
	return NewEngine(s, rand.New(rand.NewSource(seed))) //#nosec G404 -- gameplay randomness
}

// Replay runs a recording through a fresh engine and returns the final
// snapshot. Intents recorded after game over are no-ops, as they were live.
func Replay(rec Recording) (RenderSnapshot, error) {
	e, err := NewSeededEngine(rec.Settings, rec.Seed)
	if err != nil {
		return RenderSnapshot{}, err
	}
	snap := e.Snapshot()
	for _, in := range rec.Intents {
		snap = e.Tick(in)
	}
	return snap, nil
}
