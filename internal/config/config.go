// Package config provides YAML-based configuration loading for the
// animator: frame pacing, colormap location, viewer tick rate, and the
// run-history database path.
package config

import "time"

// Config contains all tunables of the program.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Colormap ColormapConfig `yaml:"colormap"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Storage  StorageConfig  `yaml:"storage"`
}

// RenderConfig controls the classic ANSI animation.
type RenderConfig struct {
	// DelayMS is the pause after each frame in milliseconds.
	DelayMS int `yaml:"delay_ms"`
}

// Delay returns the per-frame pause as a duration.
func (r RenderConfig) Delay() time.Duration {
	return time.Duration(r.DelayMS) * time.Millisecond
}

// ColormapConfig locates the disk color table.
type ColormapConfig struct {
	// Path to the CSV colormap file, relative to the working directory.
	Path string `yaml:"path"`
}

// ViewerConfig controls the interactive TUI viewer.
type ViewerConfig struct {
	// TickRate is the number of animation steps per second.
	TickRate int `yaml:"tick_rate"`
}

// StorageConfig locates the run-history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Default returns the hardcoded fallback configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Render:   RenderConfig{DelayMS: 1000},
		Colormap: ColormapConfig{Path: "CET-I1.csv"},
		Viewer:   ViewerConfig{TickRate: 4},
		Storage:  StorageConfig{Path: "~/.hanoi/runs.db"},
	}
}
