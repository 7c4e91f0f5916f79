package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.borderwalk/config.yaml -> ./configs/borderwalk.yaml -> embedded default.
// Files are overlaid on the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "borderwalk.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside a command.
func (c Config) Validate() error {
	var errs []error
	if c.Watch.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("watch.tick_rate must be positive, got %d", c.Watch.TickRate))
	}
	if c.Watch.StepsPerTick <= 0 {
		errs = append(errs, fmt.Errorf("watch.steps_per_tick must be positive, got %d", c.Watch.StepsPerTick))
	}
	g := c.Render.Glyphs
	for name, s := range map[string]string{
		"inside": g.Inside, "outside": g.Outside, "border": g.Border, "start": g.Start, "cursor": g.Cursor,
	} {
		if utf8.RuneCountInString(s) != 1 {
			errs = append(errs, fmt.Errorf("render.glyphs.%s must be a single character, got %q", name, s))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".borderwalk", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
