package shooter

import (
	"errors"
	"math"
	"testing"

	"github.com/ogawakh/game-test/internal/config"
	"github.com/ogawakh/game-test/internal/core"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("DefaultSettings().Validate() = %v, expected nil", err)
	}

	expected := Settings{
		PlayfieldWidth: 480, PlayfieldHeight: 640,
		PlayerWidth: 40, PlayerHeight: 20, PlayerSpeed: 5, PlayerMargin: 10,
		ProjectileWidth: 4, ProjectileHeight: 10, ProjectileSpeed: 7,
		EnemyWidth: 36, EnemyHeight: 20, EnemySpeed: 2,
		SpawnInterval: 60, Reward: 10,
	}
	if s != expected {
		t.Errorf("DefaultSettings() = %+v, expected %+v", s, expected)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Player.Speed = 9
	cfg.Spawn.Interval = 15
	cfg.Scoring.Reward = 25

	s := SettingsFromConfig(cfg)
	if s.PlayerSpeed != 9 {
		t.Errorf("PlayerSpeed = %v, expected 9", s.PlayerSpeed)
	}
	if s.SpawnInterval != 15 {
		t.Errorf("SpawnInterval = %d, expected 15", s.SpawnInterval)
	}
	if s.Reward != 25 {
		t.Errorf("Reward = %d, expected 25", s.Reward)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"zero playfield width", func(s *Settings) { s.PlayfieldWidth = 0 }},
		{"negative playfield height", func(s *Settings) { s.PlayfieldHeight = -1 }},
		{"zero player width", func(s *Settings) { s.PlayerWidth = 0 }},
		{"zero player height", func(s *Settings) { s.PlayerHeight = 0 }},
		{"zero player speed", func(s *Settings) { s.PlayerSpeed = 0 }},
		{"NaN player speed", func(s *Settings) { s.PlayerSpeed = math.NaN() }},
		{"zero projectile width", func(s *Settings) { s.ProjectileWidth = 0 }},
		{"zero projectile height", func(s *Settings) { s.ProjectileHeight = 0 }},
		{"negative projectile speed", func(s *Settings) { s.ProjectileSpeed = -7 }},
		{"zero enemy width", func(s *Settings) { s.EnemyWidth = 0 }},
		{"zero enemy height", func(s *Settings) { s.EnemyHeight = 0 }},
		{"zero enemy speed", func(s *Settings) { s.EnemySpeed = 0 }},
		{"zero spawn interval", func(s *Settings) { s.SpawnInterval = 0 }},
		{"negative reward", func(s *Settings) { s.Reward = -10 }},
		{"negative margin", func(s *Settings) { s.PlayerMargin = -1 }},
		{"player wider than playfield", func(s *Settings) { s.PlayerWidth = 481 }},
		{"enemy wider than playfield", func(s *Settings) { s.EnemyWidth = 500 }},
		{"player taller than playfield", func(s *Settings) { s.PlayerHeight = 635 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.modify(&s)

			if err := s.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfiguration", err)
			}
			if _, err := NewEngine(s, &core.FixedRand{}); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("NewEngine() error = %v, expected ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestValidateAcceptsEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"zero margin", func(s *Settings) { s.PlayerMargin = 0 }},
		{"player as wide as playfield", func(s *Settings) { s.PlayerWidth = 480 }},
		{"enemy as wide as playfield", func(s *Settings) { s.EnemyWidth = 480 }},
		{"speed larger than playfield", func(s *Settings) { s.PlayerSpeed = 10000 }},
		{"spawn every tick", func(s *Settings) { s.SpawnInterval = 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.modify(&s)
			if err := s.Validate(); err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
		})
	}
}

func TestNewEngineRequiresRandSource(t *testing.T) {
	_, err := NewEngine(DefaultSettings(), nil)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewEngine(nil rng) error = %v, expected ErrInvalidConfiguration", err)
	}
}
