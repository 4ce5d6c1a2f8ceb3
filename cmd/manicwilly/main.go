// manicwilly is a terminal platformer: roam a mansion of connected rooms,
// dodge the patrols and collect every item before your nerves give out.
//
// Usage:
//
//	manicwilly play              - Play in the local terminal
//	manicwilly validate          - Validate a room set without playing
//	manicwilly scores            - Show the fastest recorded clears
//	manicwilly serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--db <path>      - Set database path (default: ~/.manicwilly/scores.db)
//	--rooms <path>   - Use a custom room set YAML instead of the built-in one
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mysticalg/ManicWilly/internal/level"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagRooms  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "manicwilly",
	Short: "ManicWilly - a room-graph platformer in your terminal",
	Long: `ManicWilly is a terminal platformer in the spirit of the old
jet-set classics: a mansion of connected rooms, patrolling hazards, and a
pile of items to collect against the clock.

Available commands:
  play      - Play in the local terminal
  validate  - Check a room set for structural problems
  scores    - View the fastest clears
  serve     - Start SSH server for remote play

Examples:
  manicwilly play
  manicwilly play --rooms ./my-mansion.yaml
  manicwilly validate --rooms ./my-mansion.yaml
  manicwilly serve --ssh :2222
  manicwilly scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.manicwilly/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagRooms, "rooms", "", "Path to a custom room set YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGraph loads the room set named by --rooms, or the built-in one.
func loadGraph() (*level.Graph, error) {
	if flagRooms != "" {
		return level.LoadFile(flagRooms)
	}
	return level.LoadDefault()
}
