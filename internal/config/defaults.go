package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/borderwalk.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded defaults. It matches the embedded
// defaults/borderwalk.yaml and is used when that cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DBPath: "~/.borderwalk/traces.db",
		},
		Render: RenderConfig{
			Glyphs: Glyphs{
				Inside:  "#",
				Outside: ".",
				Border:  "o",
				Start:   "S",
				Cursor:  "@",
			},
			Colors: Colors{
				Inside:  "7",
				Outside: "240",
				Border:  "10",
				Start:   "11",
				Cursor:  "208",
			},
		},
		Watch: WatchConfig{
			TickRate:     20,
			StepsPerTick: 1,
			Loop:         true,
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		HTTP: HTTPConfig{
			Address:      "127.0.0.1:8085",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			TraceTimeout: 2 * time.Second,
		},
	}
}
