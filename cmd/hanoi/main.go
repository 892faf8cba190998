// hanoi is an animated terminal visualizer of the Tower of Hanoi puzzle.
//
// Usage:
//
//	hanoi [num_layers]       - Animate the solve for the given board size
//	hanoi watch [num_layers] - Watch the solve in the interactive viewer
//	hanoi runs               - Show recorded solve history
//	hanoi serve              - Serve the viewer over SSH
//
// With no argument the program prompts for the number of layers on
// standard input. The board is redrawn in place after every move using
// 24-bit ANSI color; disk colors come from a colormap CSV file
// (CET-I1.csv by default).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/colormap"
	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/render"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string

	// Root command flags
	flagDelay    time.Duration
	flagColormap string
)

func main() {
	// A negative count like "hanoi -3" looks like an unknown flag to the
	// flag parser; route it to the number parser so the user sees the
	// range error instead of a usage dump.
	if arg, ok := negativeLayerArg(os.Args[1:]); ok {
		_, err := hanoi.ParseLayers(arg)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// negativeLayerArg returns the first argument that is a minus sign
// followed only by digits.
func negativeLayerArg(args []string) (string, bool) {
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		digits := true
		for _, c := range arg[1:] {
			if c < '0' || c > '9' {
				digits = false
				break
			}
		}
		if digits {
			return arg, true
		}
	}
	return "", false
}

var rootCmd = &cobra.Command{
	Use:   "hanoi [num_layers]",
	Short: "Animated Tower of Hanoi in your terminal",
	Long: `hanoi solves the Tower of Hanoi puzzle for a given number of disks
and animates every move in place, with disks colored from a perceptually
uniform colormap.

With no argument the number of layers is read interactively. One second
passes between moves by default; tune it with --delay.

Examples:
  hanoi 5
  hanoi 8 --delay 200ms
  hanoi watch 6
  hanoi runs
  hanoi serve --ssh :2222`,
	Args: cobra.ArbitraryArgs,
	Run:  runSolve,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")

	rootCmd.Flags().DurationVar(&flagDelay, "delay", time.Second, "Pause between frames")
	rootCmd.Flags().StringVar(&flagColormap, "colormap", "", "Path to colormap CSV file")

	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
}

func runSolve(cmd *cobra.Command, args []string) {
	if len(args) > 1 {
		fmt.Println("Usage: hanoi [num_layers]")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	delay := cfg.Render.Delay()
	if cmd.Flags().Changed("delay") {
		delay = flagDelay
	}
	colormapPath := cfg.Colormap.Path
	if flagColormap != "" {
		colormapPath = flagColormap
	}

	// Resolve the number of layers from the argument or interactively.
	var layers int
	if len(args) == 1 {
		layers, err = hanoi.ParseLayers(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		layers, err = promptLayers(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cm, err := colormap.Load(colormapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board, err := hanoi.New(layers, cm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("num_layers: %d\n", layers)
	warnIfTooNarrow(layers)

	r := render.New(os.Stdout, delay)
	if err := r.Draw(board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	if err := hanoi.Solve(board, r); err != nil {
		// Repaint so the offending state is visible, then die. This path
		// is unreachable with a correct planner.
		//nolint:errcheck // Best-effort repaint on the way out
		r.Draw(board)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	recordRun(cfg, layers, board.Moves(), time.Since(start))
}

// promptLayers asks the user for the number of layers until a valid value
// arrives. Blank lines re-prompt silently; parse failures re-prompt with a
// message; end of input is an error.
func promptLayers(in io.Reader) (int, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("Enter the number of layers: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("no input")
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		layers, err := hanoi.ParseLayers(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		return layers, nil
	}
}

// warnIfTooNarrow warns when the frame will not fit the terminal. The
// animation still runs; wrapped lines just break the in-place redraw.
func warnIfTooNarrow(layers int) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if need := render.FrameWidth(layers); width < need {
		log.Warn("terminal narrower than the frame, redraw will glitch",
			"terminal", width, "frame", need)
	}
}

// recordRun appends the completed solve to the run history. History is
// telemetry; failures only warn.
func recordRun(cfg config.Config, layers int, moves uint64, duration time.Duration) {
	dbPath := cfg.Storage.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		log.Warn("could not open run history database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(layers, moves, duration); err != nil {
		log.Warn("could not record run", "error", err)
	}
}
