package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mysticalg/ManicWilly/internal/config"
	"github.com/mysticalg/ManicWilly/internal/core"
	"github.com/mysticalg/ManicWilly/internal/game"
	"github.com/mysticalg/ManicWilly/internal/level"
	"github.com/mysticalg/ManicWilly/internal/platform/tui"
	"github.com/mysticalg/ManicWilly/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a session in the local terminal.

Controls:
  A/D, Left/Right  - Move
  W/S, Up/Down     - Climb stairs / enter stair transitions
  Space            - Jump
  P/Esc            - Pause
  H                - Fastest clears (on the splash and win screens)
  Q/Ctrl+C         - Quit

Examples:
  manicwilly play
  manicwilly play --rooms ./my-mansion.yaml
  manicwilly play --config ./my-tuning.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	graph, err := loadGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rooms: %v\n", err)
		os.Exit(1)
	}

	// A broken room set would make the session unwinnable; refuse to start.
	if err := level.Validate(graph); err != nil {
		fmt.Fprintf(os.Stderr, "Error: room set failed validation: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'manicwilly validate' for details.")
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game.New(graph, gameCfg), store, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
