package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/giftrun/internal/platform/tui"
	"github.com/vovakirdan/giftrun/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show saved runs",
	Long: `Display the best saved runs.

Examples:
  giftrun scores
  giftrun scores --limit 25
  giftrun scores --interactive
  giftrun scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagInteractive {
		rt := runtimeConfig()
		if err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	runs, err := store.TopScores(flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - giftrun")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'giftrun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "----", "----")
	for i, r := range runs {
		d := r.Duration.Round(time.Second)
		fmt.Printf("  %-4d  %-8d  %-5d  %-6s  %s\n",
			i+1, r.Score, r.Level,
			fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60),
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Deepest level: %d\n",
		stats.Best, stats.Runs, stats.Average, stats.MaxLevel)
}
