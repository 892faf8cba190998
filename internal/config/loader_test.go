package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// Run from a directory with no hanoi.yaml and an empty home so the
	// embedded default wins.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Render.DelayMS != 1000 {
		t.Errorf("DelayMS = %d, want 1000", cfg.Render.DelayMS)
	}
	if cfg.Colormap.Path != "CET-I1.csv" {
		t.Errorf("Colormap.Path = %q, want CET-I1.csv", cfg.Colormap.Path)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "render:\n  delay_ms: 50\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Render.DelayMS != 50 {
		t.Errorf("DelayMS = %d, want 50", cfg.Render.DelayMS)
	}
	// Unset fields are filled with defaults.
	if cfg.Viewer.TickRate != 4 {
		t.Errorf("TickRate = %d, want default 4", cfg.Viewer.TickRate)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("render: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestDelayConversion(t *testing.T) {
	r := RenderConfig{DelayMS: 250}
	if got := r.Delay().Milliseconds(); got != 250 {
		t.Errorf("Delay() = %dms, want 250ms", got)
	}
}
