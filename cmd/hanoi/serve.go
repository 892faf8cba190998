package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeLayers int
	flagServeSpeed  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solve viewer over SSH",
	Long: `Start an SSH server; each connecting user watches the animated
solve in their own session.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hanoi/host_key

Examples:
  hanoi serve                      # Listen on :23234
  hanoi serve --ssh :2222
  hanoi serve --layers 8 --speed 10

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeLayers, "layers", 5, "Board size each session watches")
	serveCmd.Flags().IntVar(&flagServeSpeed, "speed", 0, "Moves per second (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.Layers = flagServeLayers
	srvCfg.TickRate = cfg.Viewer.TickRate
	if flagServeSpeed > 0 {
		srvCfg.TickRate = flagServeSpeed
	}
	srvCfg.ColormapPath = cfg.Colormap.Path
	srvCfg.DBPath = cfg.Storage.Path
	if flagDBPath != "" {
		srvCfg.DBPath = flagDBPath
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
