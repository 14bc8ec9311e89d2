package config

import (
	_ "embed"
)

//go:embed defaults/blocken.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/blocken.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			Placement: "freelist",
		},
		Theme: ThemeConfig{
			Background: Color{255, 255, 255},
			Grid:       Color{53, 208, 173},
			Trail:      Color{227, 203, 156},
			Head:       Color{168, 131, 74},
			Grow:       Color{191, 89, 34},
			Speed:      Color{220, 240, 143},
			HUD:        Color{58, 58, 58},
			Alert:      Color{215, 38, 61},
		},
		Input: InputConfig{
			RepeatWindowMS:   150,
			ReleaseTimeoutMS: 250,
		},
		Window: WindowConfig{
			Size:  640,
			Title: "Blocken",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: "embedded",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
