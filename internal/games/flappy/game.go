// Package flappy adapts the flappy simulation to the arcade platform.
// The bird falls under gravity, flaps upward on input and must pass through
// the gaps of scrolling pipe pairs.
package flappy

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Variant is a registered flavour of the game. Variants differ only in what
// follows GameOver.
type Variant struct {
	ID      string
	Title   string
	Restart config.RestartMode
}

// Variants lists every registered variant.
var Variants = []Variant{
	{ID: "flappy", Title: "Flappy Bird", Restart: config.RestartMenu},
	{ID: "flappy_quick", Title: "Flappy Bird (quick restart)", Restart: config.RestartDirect},
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func(env registry.Env) registry.Game {
			return New(v, env)
		})
	}
}

// Game implements registry.Game on top of sim.Simulation.
type Game struct {
	variant Variant
	cfg     config.FlappyConfig
	audio   sim.Audio
	logger  *log.Logger
	window  *CellWindow
	sim     *sim.Simulation
}

// New creates a game for the variant. The simulation is built on Reset.
func New(v Variant, env registry.Env) *Game {
	cfg := config.DefaultFlappyConfig()
	if env.Config != nil {
		cfg = *env.Config
	}
	cfg.Rules.Restart = v.Restart

	audio := env.Audio
	if audio == nil {
		audio = sim.NullAudio{}
	}
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		variant: v,
		cfg:     cfg,
		audio:   audio,
		logger:  logger.With("game", v.ID),
		window:  &CellWindow{World: cfg.World},
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name of the variant.
func (g *Game) Title() string {
	return g.variant.Title
}

// Config returns the effective configuration, variant rules applied.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset builds a new simulation sized to the screen and seeded for
// reproducible pipe layouts.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	g.window.Resize(rc.ScreenW, rc.ScreenH)
	s, err := sim.New(g.cfg, g.window, g.audio, rand.New(rand.NewSource(rc.Seed)))
	if err != nil {
		return err
	}
	g.sim = s
	g.logger.Debug("simulation reset", "seed", rc.Seed, "cols", rc.ScreenW, "rows", rc.ScreenH)
	g.warnIfNoWindow()
	return nil
}

// Resize updates the window the simulation sees.
func (g *Game) Resize(cols, rows int) {
	g.window.Resize(cols, rows)
	g.logger.Debug("window resized", "cols", cols, "rows", rows)
	g.warnIfNoWindow()
}

// Pipes, boundaries and despawn are skipped while the window is unavailable.
func (g *Game) warnIfNoWindow() {
	if _, _, ok := g.window.Size(); !ok {
		g.logger.Warn("window unavailable, pipes will not spawn", "cols", g.window.Cols, "rows", g.window.Rows)
	}
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}
	err := g.sim.Step(dt, in)
	if err != nil {
		g.logger.Error("simulation step failed",
			"frame", g.sim.Frames(),
			"entities", g.sim.World().EntityCount(),
			"err", err,
		)
	}
	return core.StepResult{State: g.State(), Err: err}
}

// State returns the score and mode of the running simulation.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Mode: sim.ModeMainMenu.String()}
	}
	mode := g.sim.Mode()
	return core.GameState{
		Score:    g.sim.Score(),
		Mode:     mode.String(),
		GameOver: mode == sim.ModeGameOver,
	}
}

// Simulation returns the running simulation, or nil before Reset.
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}

// CellWindow reports a terminal of Cols x Rows cells as a window in world
// units.
type CellWindow struct {
	World      config.FlappyWorld
	Cols, Rows int
}

// Resize sets the terminal size in cells.
func (w *CellWindow) Resize(cols, rows int) {
	w.Cols, w.Rows = cols, rows
}

// Size returns the window in world units. It is unavailable until the
// terminal reports a non-empty size.
func (w *CellWindow) Size() (float64, float64, bool) {
	if w.Cols <= 0 || w.Rows <= 0 {
		return 0, 0, false
	}
	return float64(w.Cols) * w.World.CellW, float64(w.Rows) * w.World.CellH, true
}
