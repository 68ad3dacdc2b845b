// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// ShooterConfig contains all configuration for the Space Shooter game.
// Distances are in playfield units and speeds in units per tick.
type ShooterConfig struct {
	Playfield  ShooterPlayfield  `yaml:"playfield"`
	Player     ShooterPlayer     `yaml:"player"`
	Projectile ShooterProjectile `yaml:"projectile"`
	Enemy      ShooterEnemy      `yaml:"enemy"`
	Spawn      ShooterSpawn      `yaml:"spawn"`
	Scoring    ShooterScoring    `yaml:"scoring"`
}

// ShooterPlayfield defines the bounds all entities move within.
type ShooterPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShooterPlayer defines the player craft.
type ShooterPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between craft and playfield bottom
}

// ShooterProjectile defines the player's shots.
type ShooterProjectile struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// ShooterEnemy defines the descending enemies.
type ShooterEnemy struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// ShooterSpawn defines enemy spawn cadence.
type ShooterSpawn struct {
	Interval int `yaml:"interval"` // Ticks between spawns
}

// ShooterScoring defines score rewards.
type ShooterScoring struct {
	Reward int `yaml:"reward"` // Points per destroyed enemy
}
