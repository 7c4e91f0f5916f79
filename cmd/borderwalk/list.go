package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/borderwalk/internal/border"
	"github.com/vovakirdan/borderwalk/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered areas",
	Long: `Shows every built-in area and those loaded from the shapes directory,
with their lap length and the number of distinct outside cells around them.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	setup()
	areas := registry.List()

	if len(areas) == 0 {
		fmt.Println("No areas available.")
		return
	}

	fmt.Println("Available areas:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, a := range areas {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	fmt.Printf("  %-*s  %5s  %5s  %s\n", maxIDLen, "ID", "Lap", "Ring", "Title")
	fmt.Printf("  %-*s  %5s  %5s  %s\n", maxIDLen, "--", "---", "----", "-----")

	for _, a := range areas {
		lap, ring := "-", "-"
		if shape, err := registry.Create(a.ID); err == nil {
			r := shape.Region()
			ring = fmt.Sprint(len(border.Ring(r.Contains, r.Coords())))
			if start, err := shape.StartCell(); err == nil {
				lap = fmt.Sprint(len(border.Collect(r.Contains, start)))
			}
		}
		fmt.Printf("  %-*s  %5s  %5s  %s\n", maxIDLen, a.ID, lap, ring, a.Title)
	}

	fmt.Println()
	fmt.Println("Run 'borderwalk trace <id>' to print a lap.")
}
