// Package config provides YAML-based configuration loading for borderwalk.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Shapes  ShapesConfig  `yaml:"shapes"`
	Render  RenderConfig  `yaml:"render"`
	Watch   WatchConfig   `yaml:"watch"`
	SSH     SSHConfig     `yaml:"ssh"`
	HTTP    HTTPConfig    `yaml:"http"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig locates the SQLite database of saved laps.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ShapesConfig points at an optional directory of extra shape files.
type ShapesConfig struct {
	Dir string `yaml:"dir"`
}

// RenderConfig defines how areas and laps are drawn in the terminal.
type RenderConfig struct {
	Glyphs Glyphs `yaml:"glyphs"`
	Colors Colors `yaml:"colors"`
}

// Glyphs are single-character strings for each kind of cell.
type Glyphs struct {
	Inside  string `yaml:"inside"`
	Outside string `yaml:"outside"`
	Border  string `yaml:"border"`
	Start   string `yaml:"start"`
	Cursor  string `yaml:"cursor"`
}

// Colors are ANSI 256-color codes for each kind of cell.
type Colors struct {
	Inside  string `yaml:"inside"`
	Outside string `yaml:"outside"`
	Border  string `yaml:"border"`
	Start   string `yaml:"start"`
	Cursor  string `yaml:"cursor"`
}

// WatchConfig drives the lap animation.
type WatchConfig struct {
	TickRate     int  `yaml:"tick_rate"`      // Ticks per second
	StepsPerTick int  `yaml:"steps_per_tick"` // Visits revealed per tick
	Loop         bool `yaml:"loop"`           // Restart when the lap completes
}

// SSHConfig holds configuration for the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// HTTPConfig holds configuration for the HTTP API.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	TraceTimeout time.Duration `yaml:"trace_timeout"` // Upper bound for a single lap
}
