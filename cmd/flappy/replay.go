package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagReplayDelete bool

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run",
	Long: `Re-simulate a recorded run headlessly and compare the outcome with
the recorded score.

The run is replayed with the current configuration (--config and
--difficulty apply). If it differs from the one the run was recorded
with, a warning is printed and the outcome will usually diverge.

Examples:
  flappy replay 3f2a9c1e-8d4b-4e6f-9a01-2b3c4d5e6f70
  flappy replay 3f2a9c1e-8d4b-4e6f-9a01-2b3c4d5e6f70 --delete`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayDelete, "delete", false, "Delete the run after replaying it")
}

func runReplay(_ *cobra.Command, args []string) {
	logger := newStderrLogger()

	gameCfg, err := loadGameConfig()
	exitOnError("loading config", err)

	store, err := storage.Open(flagDBPath)
	exitOnError("opening database", err)
	defer store.Close()

	run, err := findRun(store, args[0])
	exitOnError("loading run", err)

	frames, err := replay.Decode(run.Frames)
	exitOnError("decoding run", err)

	game, err := registry.Create(run.GameID, registry.Env{Config: gameCfg, Logger: logger})
	exitOnError("creating game", err)

	hash, err := gameFingerprint(game)
	exitOnError("fingerprinting config", err)
	if hash != run.ConfigHash {
		logger.Warn("config differs from the recording", "recorded", run.ConfigHash, "current", hash)
	}

	state, err := replay.Run(game, core.RuntimeConfig{
		ScreenW:  run.ScreenW,
		ScreenH:  run.ScreenH,
		TickRate: flagFPS,
		Seed:     run.Seed,
	}, frames)
	exitOnError("replaying run", err)

	fmt.Printf("Run %s (%s, seed %d, %dx%d, %d frames)\n",
		run.ID, run.GameID, run.Seed, run.ScreenW, run.ScreenH, len(frames))
	fmt.Printf("  recorded score:  %d\n", run.Score)
	fmt.Printf("  replayed score:  %d (%s)\n", state.Score, state.Mode)

	if flagReplayDelete {
		exitOnError("deleting run", store.DeleteRun(run.ID))
		fmt.Println("  deleted")
	}

	if state.Score != run.Score || !state.GameOver {
		fmt.Fprintln(os.Stderr, "Replay diverged from the recording.")
		os.Exit(1)
	}
	fmt.Println("  reproduced")
}
