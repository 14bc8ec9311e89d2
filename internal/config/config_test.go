package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// isolate points the search paths at an empty temporary directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestEmbeddedMatchesDefaultConfig(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	cfg.Source = "embedded"

	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML and DefaultConfig differ:\n%+v\n%+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadEmbeddedFallback(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}
	if cfg.Theme.Grid != (Color{53, 208, 173}) {
		t.Errorf("grid color = %v, expected the default blue-green", cfg.Theme.Grid)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
simulation:
  placement: rejection
theme:
  trail: "#102030"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Simulation.Placement != "rejection" {
		t.Errorf("placement = %q, expected rejection", cfg.Simulation.Placement)
	}
	if cfg.Theme.Trail != (Color{0x10, 0x20, 0x30}) {
		t.Errorf("trail = %v, expected #102030", cfg.Theme.Trail)
	}
	// Unspecified values keep their defaults.
	if cfg.Theme.Grow != DefaultConfig().Theme.Grow {
		t.Errorf("grow = %v, expected default", cfg.Theme.Grow)
	}
	if cfg.Window.Size != 640 {
		t.Errorf("window size = %d, expected 640", cfg.Window.Size)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "configs", FileName), "log:\n  level: warn\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("level = %q, expected warn from ./configs", cfg.Log.Level)
	}

	// The user file wins over the local one.
	writeFile(t, filepath.Join(dir, ".blocken", "config.yaml"), "log:\n  level: debug\n")

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q, expected debug from ~/.blocken", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad placement", "simulation:\n  placement: spiral\n", "unknown placement"},
		{"bad color", "theme:\n  grid: teal\n", "invalid color"},
		{"bad volume", "audio:\n  volume: 2\n", "audio.volume"},
		{"bad repeat", "input:\n  repeat_window_ms: 0\n", "repeat_window_ms"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"tiny window", "window:\n  size: 10\n", "window.size"},
		{"not yaml", "simulation: [\n", "failed to parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			writeFile(t, path, tc.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestColor(t *testing.T) {
	c, err := ParseColor("#35d0ad")
	if err != nil {
		t.Fatalf("ParseColor() failed: %v", err)
	}
	if c != (Color{53, 208, 173}) {
		t.Errorf("ParseColor = %v", c)
	}
	if c.Hex() != "#35D0AD" {
		t.Errorf("Hex() = %q", c.Hex())
	}
	if rgba := c.RGBA(); rgba.A != 0xff || rgba.G != 208 {
		t.Errorf("RGBA() = %v", rgba)
	}

	for _, bad := range []string{"35d0ad", "#35d0a", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestInputDurations(t *testing.T) {
	in := InputConfig{RepeatWindowMS: 150, ReleaseTimeoutMS: 250}
	if in.RepeatWindow() != 150*time.Millisecond || in.ReleaseTimeout() != 250*time.Millisecond {
		t.Errorf("durations = %v/%v", in.RepeatWindow(), in.ReleaseTimeout())
	}
}
