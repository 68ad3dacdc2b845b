package shooter

import (
	"errors"
	"fmt"

	"github.com/ogawakh/game-test/internal/config"
)

// ErrInvalidConfiguration is returned by NewEngine when a tuning constant is
// unusable. It is the only error the simulation can produce.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Settings are the constants an Engine is built with. They are fixed for the
// lifetime of a session.
type Settings struct {
	PlayfieldWidth  float64
	PlayfieldHeight float64

	PlayerWidth  float64
	PlayerHeight float64
	PlayerSpeed  float64
	PlayerMargin float64 // Gap between the craft and the playfield bottom

	ProjectileWidth  float64
	ProjectileHeight float64
	ProjectileSpeed  float64

	EnemyWidth  float64
	EnemyHeight float64
	EnemySpeed  float64

	SpawnInterval int // Ticks between enemy spawns
	Reward        int // Score per destroyed enemy
}

// DefaultSettings returns the reference tuning: a 480x640 playfield with
// player speed 5, shots at 7, enemies at 2, one spawn every 60 ticks and
// 10 points per kill.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultShooterConfig())
}

// SettingsFromConfig converts a loaded YAML configuration.
func SettingsFromConfig(cfg config.ShooterConfig) Settings {
	return Settings{
		PlayfieldWidth:   cfg.Playfield.Width,
		PlayfieldHeight:  cfg.Playfield.Height,
		PlayerWidth:      cfg.Player.Width,
		PlayerHeight:     cfg.Player.Height,
		PlayerSpeed:      cfg.Player.Speed,
		PlayerMargin:     cfg.Player.BottomMargin,
		ProjectileWidth:  cfg.Projectile.Width,
		ProjectileHeight: cfg.Projectile.Height,
		ProjectileSpeed:  cfg.Projectile.Speed,
		EnemyWidth:       cfg.Enemy.Width,
		EnemyHeight:      cfg.Enemy.Height,
		EnemySpeed:       cfg.Enemy.Speed,
		SpawnInterval:    cfg.Spawn.Interval,
		Reward:           cfg.Scoring.Reward,
	}
}

// Validate reports the first unusable constant, wrapped in
// ErrInvalidConfiguration.
func (s Settings) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"playfield width", s.PlayfieldWidth},
		{"playfield height", s.PlayfieldHeight},
		{"player width", s.PlayerWidth},
		{"player height", s.PlayerHeight},
		{"player speed", s.PlayerSpeed},
		{"projectile width", s.ProjectileWidth},
		{"projectile height", s.ProjectileHeight},
		{"projectile speed", s.ProjectileSpeed},
		{"enemy width", s.EnemyWidth},
		{"enemy height", s.EnemyHeight},
		{"enemy speed", s.EnemySpeed},
		{"spawn interval", float64(s.SpawnInterval)},
		{"reward", float64(s.Reward)},
	}
	for _, p := range positive {
		// Written as !(v > 0) so NaN is rejected too
		if !(p.value > 0) {
			return fmt.Errorf("shooter: %w: %s must be positive, got %v", ErrInvalidConfiguration, p.name, p.value)
		}
	}

	if s.PlayerMargin < 0 {
		return fmt.Errorf("shooter: %w: player margin must not be negative, got %v", ErrInvalidConfiguration, s.PlayerMargin)
	}
	if s.PlayerWidth > s.PlayfieldWidth {
		return fmt.Errorf("shooter: %w: player width %v exceeds playfield width %v", ErrInvalidConfiguration, s.PlayerWidth, s.PlayfieldWidth)
	}
	if s.EnemyWidth > s.PlayfieldWidth {
		return fmt.Errorf("shooter: %w: enemy width %v exceeds playfield width %v", ErrInvalidConfiguration, s.EnemyWidth, s.PlayfieldWidth)
	}
	if s.PlayerHeight+s.PlayerMargin > s.PlayfieldHeight {
		return fmt.Errorf("shooter: %w: player does not fit in playfield height %v", ErrInvalidConfiguration, s.PlayfieldHeight)
	}
	return nil
}
