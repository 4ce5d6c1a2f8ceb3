package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mysticalg/ManicWilly/internal/platform/tui"
	"github.com/mysticalg/ManicWilly/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the fastest recorded clears",
	Long: `Display the ten fastest full clears recorded on this machine.

Examples:
  manicwilly scores
  manicwilly scores --db ./scores.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.FastestClears(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving clears: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Fastest clears")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Println("Run 'manicwilly play' and collect everything to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "----", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, tui.FormatClearTime(entry.Seconds), dateStr)
	}

	fmt.Println()
	best, err := store.BestTime()
	if err == nil && best > 0 {
		fmt.Printf("Best: %s\n", tui.FormatClearTime(best))
	}
}
