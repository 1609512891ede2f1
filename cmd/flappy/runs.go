package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsGame  string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `List the most recent recorded runs, newest first.

Runs are recorded with 'flappy play --record'. Pass a run ID to
'flappy replay' to re-simulate it.

Examples:
  flappy runs
  flappy runs --limit 5
  flappy runs --game flappy_quick`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to list")
	runsCmd.Flags().StringVar(&flagRunsGame, "game", "", "Only list runs of this variant")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	exitOnError("opening database", err)
	defer store.Close()

	runs, err := store.ListRuns(flagRunsGame, flagRunsLimit)
	exitOnError("listing runs", err)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'flappy play <variant> --record' to record one.")
		return
	}

	fmt.Printf("  %-36s  %-12s  %5s  %7s  %-7s  %s\n", "ID", "Variant", "Score", "Frames", "Screen", "Date")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-12s  %5d  %7d  %-7s  %s\n",
			r.ID, r.GameID, r.Score, r.FrameCount,
			fmt.Sprintf("%dx%d", r.ScreenW, r.ScreenH),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// findRun loads a run by ID, failing with a readable error when it is
// missing.
func findRun(store *storage.Store, id string) (*storage.Run, error) {
	run, err := store.GetRun(id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("no run with ID %q", id)
	}
	return run, nil
}
