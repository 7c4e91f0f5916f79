package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/borderwalk/internal/platform/tui"
	"github.com/vovakirdan/borderwalk/internal/registry"
)

var (
	flagSpeed  int
	flagNoLoop bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [area]",
	Short: "Animate laps in the terminal",
	Long: `Show an area and reveal its lap cell by cell.

Controls:
  Space/P    - Pause
  R          - Restart lap
  +/-        - Faster / slower
  N/B        - Next / previous area
  S          - Save lap
  ?          - Help
  Q/Ctrl+C   - Quit

Examples:
  borderwalk watch
  borderwalk watch comb --speed 4`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Cells revealed per tick (overrides config)")
	watchCmd.Flags().BoolVar(&flagNoLoop, "no-loop", false, "Stop at the end of the lap")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, logger := setup()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fatal("watch needs a terminal; use 'borderwalk trace --map' instead")
	}

	current := ""
	if len(args) > 0 {
		current = args[0]
		if !registry.Exists(current) {
			fatal("unknown area %q", current)
		}
	}
	if flagSpeed > 0 {
		cfg.Watch.StepsPerTick = flagSpeed
	}
	if flagNoLoop {
		cfg.Watch.Loop = false
	}

	infos := registry.List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}

	store := openStore(cfg, logger, true)
	if store != nil {
		defer store.Close()
	}

	// No logger: stderr output would draw over the alternate screen.
	model, err := tui.NewModel(ids, current, tui.Options{
		Watch: cfg.Watch,
		Theme: tui.NewTheme(cfg.Render),
		Store: store,
	})
	if err != nil {
		fatal("%v", err)
	}

	if err := tui.Run(model); err != nil {
		fatal("%v", err)
	}
}
