package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Leaving a game returns to the picker.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Recorded runs
  Q            - Quit

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./flappy.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagRecord, "record", false, "Record finished rounds as replayable runs")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Start without sound")
	menuCmd.Flags().BoolVar(&flagFixedStep, "fixed-step", false, "Advance exactly 1/fps seconds per tick instead of wall-clock time")
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	exitOnError("loading config", err)

	logger, closeLog := openFileLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsRuns {
			goBack, sbErr := tui.RunRunsBrowser(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if err := playGame(menuResult.GameID, gameCfg, store, logger, flagRecord); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
