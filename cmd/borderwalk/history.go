package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/borderwalk/internal/platform/tui"
)

var (
	flagLimit int
	flagClear bool
	flagTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [area]",
	Short: "Show saved laps",
	Long: `Display the most recent saved laps, optionally for one area only.

Examples:
  borderwalk history
  borderwalk history ell --limit 5
  borderwalk history ell --clear
  borderwalk history --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of laps to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the saved laps of the area")
	historyCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse laps interactively")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, logger := setup()

	areaID := ""
	if len(args) > 0 {
		areaID = args[0]
	}

	store := openStore(cfg, logger, false)
	defer store.Close()

	if flagClear {
		if areaID == "" {
			store.Close()
			fatal("--clear needs an area")
		}
		n, err := store.DeleteTraces(areaID)
		if err != nil {
			store.Close()
			fatal("%v", err)
		}
		fmt.Printf("Deleted %d laps of %s.\n", n, areaID)
		return
	}

	if flagTUI {
		width, height := 80, 24 // Defaults
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, tui.NewTheme(cfg.Render), areaID, width, height); err != nil {
			store.Close()
			fatal("%v", err)
		}
		return
	}

	traces, err := store.RecentTraces(areaID, flagLimit)
	if err != nil {
		store.Close()
		fatal("%v", err)
	}

	if areaID == "" {
		fmt.Println("Saved laps")
	} else {
		fmt.Printf("Saved laps - %s\n", areaID)
	}
	fmt.Println()

	if len(traces) == 0 {
		fmt.Println("No laps saved yet.")
		fmt.Println()
		fmt.Println("Run 'borderwalk trace <area> --save' to save one.")
		return
	}

	fmt.Printf("  %-6s  %-12s  %-10s  %-5s  %s\n", "ID", "Area", "Start", "Cells", "Date")
	fmt.Printf("  %-6s  %-12s  %-10s  %-5s  %s\n", "--", "----", "-----", "-----", "----")

	for _, tr := range traces {
		dateStr := tr.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6d  %-12s  %-10s  %-5d  %s\n", tr.ID, tr.AreaID, tr.Start, tr.CellCount, dateStr)
	}
}
