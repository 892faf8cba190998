package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/colormap"
	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagWatchSpeed    int
	flagWatchColormap string
)

var watchCmd = &cobra.Command{
	Use:   "watch [num_layers]",
	Short: "Watch the solve in an interactive viewer",
	Long: `Open a full-screen viewer that animates the solve with a progress
bar and adjustable speed.

Controls:
  space/p    - Pause
  +/-        - Faster / slower
  r          - Restart
  q/Ctrl+C   - Quit

Examples:
  hanoi watch
  hanoi watch 7
  hanoi watch 7 --speed 10`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagWatchSpeed, "speed", 0, "Moves per second (default from config)")
	watchCmd.Flags().StringVar(&flagWatchColormap, "colormap", "", "Path to colormap CSV file")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	layers := 5
	if len(args) == 1 {
		layers, err = hanoi.ParseLayers(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	tickRate := cfg.Viewer.TickRate
	if flagWatchSpeed > 0 {
		tickRate = flagWatchSpeed
	}
	colormapPath := cfg.Colormap.Path
	if flagWatchColormap != "" {
		colormapPath = flagWatchColormap
	}

	// The viewer does not insist on the colormap file; the built-in ramp
	// is a fine fallback there.
	cm, err := colormap.Load(colormapPath)
	if err != nil || cm.Len() == 0 {
		log.Warn("using built-in colormap", "path", colormapPath, "error", err)
		cm = colormap.Builtin()
	}

	dbPath := cfg.Storage.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		log.Warn("could not open run history database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(layers, cm, store, tickRate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
