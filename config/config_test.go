package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("missing")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetMaxExtensions(); got != 1000 {
		t.Errorf("GetMaxExtensions() = %d, want 1000", got)
	}
	if got := cfg.GetWindowWidth(); got != 1200 {
		t.Errorf("GetWindowWidth() = %d, want 1200", got)
	}
	if got := cfg.GetStatsInterval(); got != 5 {
		t.Errorf("GetStatsInterval() = %d, want 5", got)
	}
	if cfg.GetHeadless() {
		t.Error("GetHeadless() = true by default")
	}
}

func TestLoadLocalFile(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetWindowTitle(); got != "optics2d" {
		t.Errorf("GetWindowTitle() = %q, want optics2d", got)
	}
	if got := cfg.GetSnapshotFile(); got != "optics2d.png" {
		t.Errorf("GetSnapshotFile() = %q, want optics2d.png", got)
	}
	if got := cfg.GetSceneFile(); got != "" {
		t.Errorf("GetSceneFile() = %q, want the built-in scene", got)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("TRACE_MAX_EXTENSIONS", "50")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SCENE_FILE", "/tmp/bench.yaml")
	t.Setenv("HEADLESS", "true")

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetMaxExtensions(); got != 50 {
		t.Errorf("GetMaxExtensions() = %d, want 50", got)
	}
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want warn", got)
	}
	if got := cfg.GetSceneFile(); got != "/tmp/bench.yaml" {
		t.Errorf("GetSceneFile() = %q", got)
	}
	if !cfg.GetHeadless() {
		t.Error("GetHeadless() = false with HEADLESS=true")
	}
}
