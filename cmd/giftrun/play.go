package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/giftrun/internal/platform/tui"
	"github.com/vovakirdan/giftrun/internal/storage"
)

var flagHold time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of giftrun.

Controls:
  Left/Right, A/D  - Walk
  Up/Down, W/S     - Climb ladders
  Space            - Jump
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  giftrun play
  giftrun play --seed 42
  giftrun play --config ./my-giftrun.yaml --log-level debug`,
	Run: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Show the title screen. After a run ends you return to it.

Controls:
  Up/Down      - Navigate
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit`,
	Run: runMenu,
}

func init() {
	playCmd.Flags().DurationVar(&flagHold, "hold", 0, "How long a key press counts as held (default from config)")
}

// openStore opens the scores database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "fps", flagFPS, "seed", flagSeed, "db", flagDBPath)
	runErr := tui.Run(cfg, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Hold:   flagHold,
	})
	if runErr != nil {
		logger.Error("run failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		if store != nil {
			store.Close()
		}
		closeLog()
		os.Exit(1)
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig()
	for {
		choice, updated, err := tui.RunMenu(store, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rt = updated

		switch choice {
		case tui.MenuPlay:
			err = tui.Run(cfg, rt, tui.Options{Store: store, Logger: logger, Hold: flagHold})
		case tui.MenuScores:
			err = tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
		default:
			return
		}
		if err != nil {
			logger.Error("screen failed", "err", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
