package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRecord    bool
	flagMute      bool
	flagFixedStep bool
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Space/Up   - Flap
  Enter      - Start / continue after game over
  M          - Mute
  Esc/B      - Leave
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

With --record every finished round is stored as a run that
'flappy replay' can re-simulate. Resizing the terminal mid-game
discards the recording.

Examples:
  flappy play flappy
  flappy play flappy_quick --difficulty hard
  flappy play flappy --record --seed 42
  flappy play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record finished rounds as replayable runs")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start without sound")
	playCmd.Flags().BoolVar(&flagFixedStep, "fixed-step", false, "Advance exactly 1/fps seconds per tick instead of wall-clock time")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available variants.")
		os.Exit(1)
	}

	cfg, err := loadGameConfig()
	exitOnError("loading config", err)

	logger, closeLog := openFileLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := playGame(gameID, cfg, store, logger, flagRecord)

	if store != nil {
		store.Close()
	}
	exitOnError("running game", runErr)
}

// playGame runs one variant until the player leaves it.
func playGame(gameID string, cfg *config.FlappyConfig, store *storage.Store, logger *log.Logger, record bool) error {
	sound := audio.New(logger, flagMute)
	if p, ok := sound.(*audio.Player); ok {
		defer p.Close()
	}
	muter, _ := sound.(tui.Muter)

	game, err := registry.Create(gameID, registry.Env{
		Config: cfg,
		Audio:  sound,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	var clock core.Clock
	if flagFixedStep {
		clock = core.FixedClockForRate(flagFPS)
	}

	return tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		Muter:      muter,
		Clock:      clock,
		Record:     record,
		QuitOnBack: true,
	})
}
