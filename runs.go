package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blueprince/pkg/game/config"
	"blueprince/pkg/game/storage"
)

var flagLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show run history and statistics",
	Long: `Display the most recent runs and aggregate statistics.

Examples:
  blueprince runs
  blueprince runs --limit 20`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blueprince play' to start your first run!")
		return
	}

	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-7s  %-5s  %-5s  %-5s  %-8s  %s\n", "Outcome", "Rooms", "Steps", "Coins", "Time", "Date")
	fmt.Printf("  %-7s  %-5s  %-5s  %-5s  %-8s  %s\n", "-------", "-----", "-----", "-----", "----", "----")

	for _, r := range runs {
		duration := fmt.Sprintf("%dm%02ds", r.DurationSecs/60, r.DurationSecs%60)
		fmt.Printf("  %-7s  %-5d  %-5d  %-5d  %-8s  %s\n",
			r.Outcome, r.RoomsPlaced, r.StepsLeft, r.Coins, duration,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	winRate := 0.0
	if stats.Runs > 0 {
		winRate = float64(stats.Wins) / float64(stats.Runs) * 100
	}
	fmt.Printf("Runs: %d  Wins: %d (%.0f%%)  Avg rooms: %.1f\n", stats.Runs, stats.Wins, winRate, stats.AvgRooms)
	if stats.Wins > 0 {
		fmt.Printf("Best win: %d steps to spare\n", stats.BestSteps)
	}
}
