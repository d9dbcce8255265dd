// blueprince is a roguelike mansion-drafting game. Each run starts at the
// Entrance Hall of a 9x5 manor; the player drafts rooms onto the board one
// doorway at a time, racing a dwindling step count toward the Antechamber.
//
// Usage:
//
//	blueprince play          - Start a run in a window
//	blueprince play --tui    - Start a run in the terminal
//	blueprince runs          - Show run history and statistics
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blueprince",
	Short: "Blue Prince - draft your way through the mansion",
	Long: `Blue Prince is a mansion-drafting roguelike. Walk into an unbuilt
cell and the house offers three rooms; the one you pick is built in place,
doors, loot and all. Reach the Antechamber before your steps run out.

Examples:
  blueprince play
  blueprince play --tui
  blueprince play --seed 42
  blueprince runs --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
}
