// borderwalk traces the outer border of areas on an 8-connected grid.
//
// Usage:
//
//	borderwalk list                 - List registered areas
//	borderwalk trace <area>         - Print one lap around an area
//	borderwalk watch [area]         - Animate laps in the terminal
//	borderwalk history [area]       - Show saved laps
//	borderwalk serve                - Start SSH server with the watch view
//	borderwalk api                  - Start HTTP/websocket API
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.borderwalk, ./configs)
//	--db <path>         - Database path (overrides config)
//	--log-level <lvl>   - debug, info, warn, error (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/borderwalk/internal/area"
	"github.com/vovakirdan/borderwalk/internal/config"
	"github.com/vovakirdan/borderwalk/internal/registry"
	"github.com/vovakirdan/borderwalk/internal/storage"

	// Import built-in shapes to register them
	_ "github.com/vovakirdan/borderwalk/internal/shapes"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "borderwalk",
	Short: "Trace the outer border of grid areas",
	Long: `borderwalk walks around an area on an 8-connected grid and reports
every outside cell that touches it, in wall-following order.

Available commands:
  list     - Show all registered areas
  trace    - Print one lap around an area
  watch    - Animate laps in the terminal
  history  - Show saved laps
  serve    - Start SSH server with the watch view
  api      - Start HTTP API with websocket streaming

Examples:
  borderwalk list
  borderwalk trace ell
  borderwalk trace --file ./shapes/blob.yaml --map
  borderwalk watch plus
  borderwalk serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to laps database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// setup loads the config, applies global flag overrides, builds the logger
// and registers shapes from the configured shapes directory.
func setup() (config.Config, *log.Logger) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "borderwalk",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		fatal("config: %v", err)
	}
	logger.SetLevel(level)

	if cfg.Shapes.Dir != "" {
		registerShapeDir(cfg.Shapes.Dir, logger)
	}
	return cfg, logger
}

func registerShapeDir(dir string, logger *log.Logger) {
	dir, err := config.ExpandHome(dir)
	if err != nil {
		logger.Warn("cannot resolve shapes directory", "dir", dir, "error", err)
		return
	}
	shapes, err := area.NewLoader(dir).LoadAll()
	if err != nil {
		logger.Warn("cannot load shapes", "dir", dir, "error", err)
		return
	}
	for _, id := range registry.RegisterShapes(shapes) {
		logger.Warn("shape id already registered, skipping", "id", id, "dir", dir)
	}
	logger.Debug("shapes loaded", "dir", dir, "count", len(shapes))
}

// openStore opens the laps database. When optional is set, a failure is
// logged and nil is returned so the command can continue without saving.
func openStore(cfg config.Config, logger *log.Logger, optional bool) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		if optional {
			logger.Warn("could not open laps database", "error", err)
			return nil
		}
		fatal("%v", err)
	}
	return store
}
