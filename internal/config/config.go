// Package config provides YAML-based configuration loading for blocken.
package config

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blocken/internal/games/blocken"
)

// Config contains all user-tunable settings.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Theme      ThemeConfig      `yaml:"theme"`
	Input      InputConfig      `yaml:"input"`
	Window     WindowConfig     `yaml:"window"`
	Audio      AudioConfig      `yaml:"audio"`
	Log        LogConfig        `yaml:"log"`

	// Source is the file the config was read from, or "embedded".
	Source string `yaml:"-"`
}

// SimulationConfig selects simulation strategies.
type SimulationConfig struct {
	Placement string `yaml:"placement"` // "freelist" or "rejection"
}

// ThemeConfig holds the colors used by both frontends.
type ThemeConfig struct {
	Background Color `yaml:"background"`
	Grid       Color `yaml:"grid"`
	Trail      Color `yaml:"trail"`
	Head       Color `yaml:"head"`
	Grow       Color `yaml:"grow"`
	Speed      Color `yaml:"speed"`
	HUD        Color `yaml:"hud"`
	Alert      Color `yaml:"alert"`
}

// InputConfig tunes key phase detection in the terminal.
type InputConfig struct {
	RepeatWindowMS   int `yaml:"repeat_window_ms"`
	ReleaseTimeoutMS int `yaml:"release_timeout_ms"`
}

// RepeatWindow returns the repeat window as a duration.
func (c InputConfig) RepeatWindow() time.Duration {
	return time.Duration(c.RepeatWindowMS) * time.Millisecond
}

// ReleaseTimeout returns the release timeout as a duration.
func (c InputConfig) ReleaseTimeout() time.Duration {
	return time.Duration(c.ReleaseTimeoutMS) * time.Millisecond
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Size  int    `yaml:"size"` // Initial width and height in pixels
	Title string `yaml:"title"`
}

// AudioConfig controls the sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Simulation.Placement {
	case blocken.PlacementFreeList, blocken.PlacementRejection:
	default:
		return fmt.Errorf("config: unknown placement %q", c.Simulation.Placement)
	}
	if c.Input.RepeatWindowMS <= 0 {
		return fmt.Errorf("config: input.repeat_window_ms must be positive, got %d", c.Input.RepeatWindowMS)
	}
	if c.Input.ReleaseTimeoutMS <= 0 {
		return fmt.Errorf("config: input.release_timeout_ms must be positive, got %d", c.Input.ReleaseTimeoutMS)
	}
	if c.Window.Size < blocken.Columns {
		return fmt.Errorf("config: window.size must be at least %d, got %d", blocken.Columns, c.Window.Size)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// Color is an RGB color written as "#RRGGBB" in YAML.
type Color struct {
	R, G, B uint8
}

// ParseColor parses "#RRGGBB".
func ParseColor(s string) (Color, error) {
	var c Color
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("config: invalid color %q, expected #RRGGBB", s)
	}
	if _, err := fmt.Sscanf(strings.ToLower(s[1:]), "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	return c, nil
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA returns the opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}
