package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mysticalg/ManicWilly/internal/level"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a room set for structural problems",
	Long: `Load a room set and run the structural checks without playing:

  - every room is reachable from the start room
  - every stair transition has a matching neighbor declaration
  - every collectible can actually be reached
  - no two rooms share an identical layout

Exits non-zero if any check fails.

Examples:
  manicwilly validate
  manicwilly validate --rooms ./my-mansion.yaml`,
	Run: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "validate",
	})

	graph, err := loadGraph()
	if err != nil {
		logger.Error("cannot load room set", "error", err)
		os.Exit(1)
	}

	logger.Info("loaded room set",
		"rooms", len(graph.Rooms),
		"start", graph.StartRoom,
		"collectibles", graph.CollectibleCount(),
	)

	checks := []struct {
		name string
		fn   func(*level.Graph) error
	}{
		{"connectivity", level.CheckConnectivity},
		{"stair duality", level.CheckStairs},
		{"full clear", level.CheckFullClear},
		{"layout uniqueness", level.CheckLayoutUniqueness},
	}

	failed := false
	for _, check := range checks {
		if err := check.fn(graph); err != nil {
			logger.Error("check failed", "check", check.name, "reason", err)
			failed = true
			continue
		}
		logger.Info("check passed", "check", check.name)
	}

	if failed {
		os.Exit(1)
	}
	logger.Info("room set is valid")
}
