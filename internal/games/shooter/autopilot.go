package shooter

import (
	"math"

	"github.com/ogawakh/game-test/internal/core"
)

// Autopilot tuning
const (
	DefaultFireCooldown = 8   // Ticks between autopilot shots
	dangerRows          = 4.0 // Enemy heights above the player that count as a threat
)

// Autopilot is a deterministic computer player. It reads a RenderSnapshot
// and produces the Intent for the next tick, so it drives an Engine exactly
// like a human input layer would.
type Autopilot struct {
	settings Settings
	cooldown int // Idle ticks after each shot, always at least 1
	wait     int // Ticks until the next shot is allowed
}

// NewAutopilot creates an autopilot for the given settings.
// A cooldown below 1 uses DefaultFireCooldown.
func NewAutopilot(s Settings, cooldown int) *Autopilot {
	if cooldown < 1 {
		cooldown = DefaultFireCooldown
	}
	return &Autopilot{settings: s, cooldown: cooldown}
}

// Next decides the intent for the tick following snap.
//
// Dodging takes priority over aiming: an enemy about to land on the craft is
// avoided by moving toward the wider side. Otherwise the craft lines up under
// the lowest enemy. Fire is only ever true for a single tick at a time, so
// the intent stays a valid edge.
func (a *Autopilot) Next(snap RenderSnapshot) Intent {
	var in Intent
	if snap.GameOver {
		return in
	}

	player := snap.Player
	speed := a.settings.PlayerSpeed

	if threat, ok := a.threat(snap); ok {
		roomLeft := threat.X
		roomRight := a.settings.PlayfieldWidth - threat.Right()
		if roomLeft > roomRight {
			in.MoveLeft = true
		} else {
			in.MoveRight = true
		}
	} else if target, ok := lowestEnemy(snap.Enemies); ok {
		dx := target.CenterX() - player.CenterX()
		if math.Abs(dx) > speed/2 {
			in.MoveLeft = dx < 0
			in.MoveRight = dx > 0
		}
	}

	if a.wait > 0 {
		a.wait--
	} else if a.inLineOfFire(snap) {
		in.Fire = true
		a.wait = a.cooldown
	}

	return in
}

// threat returns the enemy that will hit the craft soon, if any.
func (a *Autopilot) threat(snap RenderSnapshot) (core.Box, bool) {
	player := snap.Player
	margin := a.settings.PlayerSpeed
	zoneTop := player.Y - dangerRows*a.settings.EnemyHeight

	var found core.Box
	ok := false
	for _, en := range snap.Enemies {
		if en.Bottom() < zoneTop || en.Y > player.Bottom() {
			continue
		}
		if en.Right()+margin <= player.X || en.X-margin >= player.Right() {
			continue
		}
		if !ok || en.Y > found.Y {
			found = en
			ok = true
		}
	}
	return found, ok
}

// inLineOfFire reports whether a shot fired now travels through an enemy
// column above the craft.
func (a *Autopilot) inLineOfFire(snap RenderSnapshot) bool {
	half := a.settings.ProjectileWidth / 2
	left := snap.Player.CenterX() - half
	right := snap.Player.CenterX() + half
	for _, en := range snap.Enemies {
		if en.Bottom() <= snap.Player.Y && en.X < right && en.Right() > left {
			return true
		}
	}
	return false
}

// lowestEnemy returns the enemy closest to the bottom.
func lowestEnemy(enemies []core.Box) (core.Box, bool) {
	if len(enemies) == 0 {
		return core.Box{}, false
	}
	lowest := enemies[0]
	for _, en := range enemies[1:] {
		if en.Y > lowest.Y {
			lowest = en
		}
	}
	return lowest, true
}

// SimResult is the outcome of a headless autopilot session.
type SimResult struct {
	Final     RenderSnapshot
	Recording *Recording
	Shots     int
}

// Simulate lets an autopilot play a seeded session for at most maxTicks
// ticks, stopping early at game over.
func Simulate(s Settings, seed int64, maxTicks, cooldown int) (SimResult, error) {
	e, err := NewSeededEngine(s, seed)
	if err != nil {
		return SimResult{}, err
	}

	pilot := NewAutopilot(s, cooldown)
	res := SimResult{Recording: NewRecording(seed, s)}
	snap := e.Snapshot()
	for i := 0; i < maxTicks && !snap.GameOver; i++ {
		in := pilot.Next(snap)
		if in.Fire {
			res.Shots++
		}
		res.Recording.Append(in)
		snap = e.Tick(in)
	}
	res.Final = snap
	return res, nil
}
