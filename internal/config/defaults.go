package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default Space Shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Playfield: ShooterPlayfield{
			Width:  480,
			Height: 640,
		},
		Player: ShooterPlayer{
			Width:        40,
			Height:       20,
			Speed:        5,
			BottomMargin: 10,
		},
		Projectile: ShooterProjectile{
			Width:  4,
			Height: 10,
			Speed:  7,
		},
		Enemy: ShooterEnemy{
			Width:  36,
			Height: 20,
			Speed:  2,
		},
		Spawn: ShooterSpawn{
			Interval: 60, // One enemy per second at 60 ticks/s
		},
		Scoring: ShooterScoring{
			Reward: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}
