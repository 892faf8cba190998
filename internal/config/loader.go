package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.hanoi/config.yaml -> ./hanoi.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first; here a failure is an error, the user asked
	// for this exact file.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return applyDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return applyDefaults(cfg), nil
			}
		}
	}

	// Try working directory
	if data, err := os.ReadFile("hanoi.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return applyDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return applyDefaults(cfg), nil
}

// applyDefaults fills zero-valued fields so a partial config file still
// yields a usable configuration.
func applyDefaults(cfg Config) Config {
	def := Default()
	if cfg.Render.DelayMS <= 0 {
		cfg.Render.DelayMS = def.Render.DelayMS
	}
	if cfg.Colormap.Path == "" {
		cfg.Colormap.Path = def.Colormap.Path
	}
	if cfg.Viewer.TickRate <= 0 {
		cfg.Viewer.TickRate = def.Viewer.TickRate
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = def.Storage.Path
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hanoi", filename)
}
