package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// logPath is where interactive commands log; stderr belongs to the TUI.
const logPath = "~/.arcade/flappy.log"

// loadGameConfig applies --config and --difficulty.
func loadGameConfig() (*config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyFlappyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// runtimeConfig sizes the game to the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// newStderrLogger returns the logger of non-interactive commands.
func newStderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
}

// openFileLogger logs to logPath. If the file cannot be opened it falls
// back to a logger that only reports errors to stderr after the fact.
func openFileLogger() (*log.Logger, func()) {
	path := expandHome(logPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
			logger := log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          "flappy",
			})
			return logger, func() { f.Close() }
		}
	}
	logger := newStderrLogger()
	logger.SetLevel(log.ErrorLevel)
	return logger, func() {}
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// gameFingerprint returns the config fingerprint of a game, or "" for games
// that do not expose their config.
func gameFingerprint(g registry.Game) (string, error) {
	c, ok := g.(interface{ Config() config.FlappyConfig })
	if !ok {
		return "", nil
	}
	return config.Fingerprint(c.Config())
}

// exitOnError prints err and exits when it is non-nil.
func exitOnError(context string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
		os.Exit(1)
	}
}
