package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "blocken.yaml"

// Load reads the configuration. Values missing from the file keep their
// defaults.
// Search order: customPath -> ~/.blocken/config.yaml -> ./configs/blocken.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := embeddedDefault()

	// A custom path must exist
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return decode(cfg, data, customPath)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		return decode(cfg, data, path)
	}

	return cfg, nil
}

// decode overlays data on top of base and validates the result.
func decode(base Config, data []byte, source string) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	cfg.Source = source
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// embeddedDefault parses the embedded YAML.
func embeddedDefault() Config {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg
}

// searchPaths returns the optional config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".blocken", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", FileName))
}
