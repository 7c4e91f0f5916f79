package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/borderwalk/internal/area"
	"github.com/vovakirdan/borderwalk/internal/border"
	"github.com/vovakirdan/borderwalk/internal/grid"
	"github.com/vovakirdan/borderwalk/internal/platform/tui"
	"github.com/vovakirdan/borderwalk/internal/registry"
	"github.com/vovakirdan/borderwalk/internal/storage"
)

var (
	flagStart    string
	flagFile     string
	flagSave     bool
	flagDistinct bool
	flagTimeout  time.Duration
	flagMap      bool
)

var traceCmd = &cobra.Command{
	Use:   "trace [area]",
	Short: "Print one lap around an area",
	Long: `Walk once around the border of an area and print every outside cell
touching it, one "x,y" per line, in wall-following order.

The start cell must be inside the area; a start with no outside
neighbour gives an empty lap. It defaults to the area's configured
start, or the first border cell in row order.

Examples:
  borderwalk trace dot
  borderwalk trace rect --start 3,0
  borderwalk trace comb --distinct
  borderwalk trace --file ./blob.yaml --map
  borderwalk trace ell --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagStart, "start", "", "Start cell as x,y")
	traceCmd.Flags().StringVar(&flagFile, "file", "", "Trace a shape YAML file instead of a registered area")
	traceCmd.Flags().BoolVar(&flagSave, "save", false, "Save the lap to the database")
	traceCmd.Flags().BoolVar(&flagDistinct, "distinct", false, "Report each cell at most once")
	traceCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Abort the lap after this long (0 = no limit)")
	traceCmd.Flags().BoolVar(&flagMap, "map", false, "Draw the area and lap instead of listing cells")
}

func runTrace(cmd *cobra.Command, args []string) {
	cfg, logger := setup()

	shape := resolveShape(args)
	r := shape.Region()

	start, err := shape.StartCell()
	if flagStart != "" {
		start, err = grid.ParseCoord(flagStart)
	}
	if err != nil {
		fatal("%v", err)
	}
	onBorder, err := checkStart(shape.ID, r, start)
	if err != nil {
		fatal("%v", err)
	}
	if !onBorder {
		logger.Warn("start is not a border cell, the lap is empty", "area", shape.ID, "start", start)
	}

	ctx := context.Background()
	if flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagTimeout)
		defer cancel()
	}

	var cells []grid.Coord
	collect := border.VisitFunc(func(x, y int) {
		cells = append(cells, grid.C(x, y))
	})
	if flagDistinct {
		collect = border.Distinct(collect)
	}
	err = border.Walk(r.Contains, start, func(x, y int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		collect(x, y)
		return nil
	})
	if err != nil {
		fatal("lap aborted after %d cells: %v", len(cells), err)
	}
	logger.Debug("lap traced", "area", shape.ID, "start", start, "cells", len(cells))

	if flagMap {
		theme := tui.NewTheme(cfg.Render)
		lap := tui.Lap{Shape: shape, Area: r, Start: start, Cells: cells}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println(theme.Render(lap.Canvas(len(cells))))
		} else {
			fmt.Println(theme.Plain(lap.Canvas(len(cells))))
		}
	} else {
		w := bufio.NewWriter(os.Stdout)
		for _, c := range cells {
			fmt.Fprintf(w, "%d,%d\n", c.X, c.Y)
		}
		if err := w.Flush(); err != nil {
			fatal("%v", err)
		}
	}

	if flagSave {
		store := openStore(cfg, logger, false)
		defer store.Close()

		id, err := store.SaveTrace(storage.Trace{AreaID: shape.ID, Start: start, Cells: cells})
		if err != nil {
			fatal("%v", err)
		}
		logger.Info("lap saved", "id", id, "area", shape.ID, "cells", len(cells))
	}
}

// resolveShape returns the shape named by --file or the area argument.
func resolveShape(args []string) area.Shape {
	if flagFile != "" {
		shape, err := area.LoadFile(flagFile)
		if err != nil {
			fatal("%v", err)
		}
		return shape
	}
	if len(args) == 0 {
		fatal("an area or --file is required")
	}

	shape, err := registry.Create(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown area %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'borderwalk list' to see available areas.")
		os.Exit(1)
	}
	return shape
}

// checkStart rejects a start outside the area and reports whether it is a
// border cell. An interior start is valid and yields an empty lap.
func checkStart(id string, r area.Region, start grid.Coord) (onBorder bool, err error) {
	if !r.Contains(start.X, start.Y) {
		return false, fmt.Errorf("start %v is outside area %q", start, id)
	}
	return area.OnBorder(r, start), nil
}
