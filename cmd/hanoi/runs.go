package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsLayers int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded solve history",
	Long: `Display recently recorded solves: board size, move count and the
wall time the animation took.

Examples:
  hanoi runs
  hanoi runs --limit 25
  hanoi runs --layers 5`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().IntVar(&flagRunsLayers, "layers", 0, "Only show runs for this board size")
}

func runRuns(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dbPath := cfg.Storage.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var entries []storage.RunEntry
	if flagRunsLayers > 0 {
		entries, err = store.RunsForLayers(flagRunsLayers)
	} else {
		entries, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'hanoi <num_layers>' to record the first one.")
		return
	}

	fmt.Printf("  %-8s  %-12s  %-10s  %s\n", "Layers", "Moves", "Duration", "Date")
	fmt.Printf("  %-8s  %-12s  %-10s  %s\n", "------", "-----", "--------", "----")
	for _, e := range entries {
		fmt.Printf("  %-8d  %-12d  %-10s  %s\n",
			e.Layers, e.Moves, e.Duration(), e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
