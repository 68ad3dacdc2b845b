package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads Space Shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Values missing from a file keep their defaults, so a partial file only
// overrides what it names.
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoadShooter(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoadShooter(filepath.Join("configs", "shooter.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultShooterConfig()
	if err := yaml.Unmarshal(defaultShooterYAML, &embedded); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoadShooter reads an optional config file; unreadable or malformed
// files are skipped.
func tryLoadShooter(path string) (ShooterConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShooterConfig{}, false
	}
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, false
	}
	return cfg, true
}

// MarshalShooter renders a configuration as YAML.
func MarshalShooter(cfg ShooterConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ShooterSource reports where LoadShooter takes its configuration from:
// a file path, or "embedded" when no file applies.
func ShooterSource(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if _, ok := tryLoadShooter(userCfgPath); ok {
			return userCfgPath
		}
	}
	local := filepath.Join("configs", "shooter.yaml")
	if _, ok := tryLoadShooter(local); ok {
		return local
	}
	return "embedded"
}
