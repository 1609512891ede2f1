// Package sim is the per-frame simulation of the flappy game: physics, flap
// impulse, parallax scrolling, pipe generation, scoring, collision,
// boundaries, despawning and the game-mode state machine.
//
// The simulation is deterministic given the sequence of (dt, input) pairs
// and the draws of its random source.
package sim

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/component"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// pass is one step of the frame. A nil modes list runs in every mode.
type pass struct {
	name  string
	modes []Mode
	run   func(*Context) error
}

func (p pass) activeIn(m Mode) bool {
	return p.modes == nil || slices.Contains(p.modes, m)
}

// frameOrder is the fixed pass sequence of every frame. Pending mode
// transitions are applied after the last pass.
var frameOrder = []pass{
	{name: "input", run: inputPass},
	{name: "flap", modes: []Mode{ModeInGame}, run: flapPass},
	{name: "physics", run: physicsPass},
	{name: "parallax", modes: []Mode{ModeMainMenu, ModeInGame}, run: parallaxPass},
	{name: "pipes", modes: []Mode{ModeInGame}, run: pipeGeneratorPass},
	{name: "score", modes: []Mode{ModeInGame}, run: scorePass},
	{name: "collision", modes: []Mode{ModeInGame}, run: collisionPass},
	{name: "boundary", modes: []Mode{ModeInGame}, run: boundaryPass},
	{name: "despawn", run: despawnPass},
}

// Simulation owns the world and runs the passes.
type Simulation struct {
	ctx    *Context
	frames uint64
}

// New creates a simulation and enters MainMenu. A nil audio plays nothing.
func New(cfg config.FlappyConfig, window Window, audio Audio, rng Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if window == nil {
		return nil, fmt.Errorf("sim: window is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("sim: random source is required")
	}
	if audio == nil {
		audio = NullAudio{}
	}

	ctx := &Context{
		World:      ecs.NewWorld(),
		Config:     cfg,
		Machine:    NewMachine(cfg.Rules.Restart),
		Window:     window,
		Audio:      audio,
		Rand:       rng,
		Input:      core.NewInputFrame(),
		Flaps:      &FlapQueue{},
		SpawnTimer: NewTimer(cfg.Pipes.SpawnInterval),
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	s := &Simulation{ctx: ctx}

	spawnPlayer(ctx.World, cfg)
	spawnParallax(ctx.World, cfg.Parallax)
	s.registerModeActions()
	ctx.Machine.Start(ModeMainMenu)
	return s, nil
}

func (s *Simulation) registerModeActions() {
	ctx := s.ctx
	m := ctx.Machine
	w := ctx.World

	m.OnEnter(ModeMainMenu, func() {
		s.resetRound()
		spawnMessage(w, component.MessageTitle, "F L A P P Y", "", "enter to start", "space to flap")
	})
	m.OnExit(ModeMainMenu, func() {
		despawnMessages(w, component.MessageTitle)
	})

	m.OnEnter(ModeInGame, func() {
		s.resetRound()
		ctx.Score = 0
		ctx.Ticks = 0
		ctx.SpawnTimer.Reset()
	})

	m.OnEnter(ModeGameOver, func() {
		w.Velocities.Each(func(_ ecs.Entity, v *component.Velocity) {
			*v = component.Velocity{}
		})
		ctx.Flaps.Clear()
		hint := "enter for menu"
		if m.RestartTarget() == ModeInGame {
			hint = "enter to retry"
		}
		spawnMessage(w, component.MessageGameOver, "GAME OVER", "", hint)
	})
	m.OnExit(ModeGameOver, func() {
		despawnMessages(w, component.MessageGameOver)
	})
}

// resetRound puts the player back at spawn and clears pipes and messages.
func (s *Simulation) resetRound() {
	ctx := s.ctx
	w := ctx.World
	despawnPipes(w)
	despawnMessages(w)
	ctx.Flaps.Clear()

	e, ok := w.Player()
	if !ok {
		e = spawnPlayer(w, ctx.Config)
	}
	w.Transforms.Set(e, component.Transform{X: ctx.Config.Player.SpawnX, Y: ctx.Config.Player.SpawnY})
	w.Velocities.Set(e, component.Velocity{})
}

// Step advances the simulation by dt seconds with the given input.
// The only error is an invalid mode transition, which is fatal.
func (s *Simulation) Step(dt float64, in core.InputFrame) error {
	ctx := s.ctx
	ctx.DT = dt
	ctx.Input = in

	mode := ctx.Machine.Mode()
	for _, p := range frameOrder {
		if !p.activeIn(mode) {
			continue
		}
		if err := p.run(ctx); err != nil {
			return fmt.Errorf("%s pass: %w", p.name, err)
		}
	}
	if mode == ModeInGame {
		ctx.Ticks++
	}
	ctx.Machine.Apply()
	s.frames++
	return nil
}

// World exposes the entity store for rendering. Callers must not mutate it.
func (s *Simulation) World() *ecs.World {
	return s.ctx.World
}

// Mode returns the active game mode.
func (s *Simulation) Mode() Mode {
	return s.ctx.Machine.Mode()
}

// Score returns the score of the current or last round.
func (s *Simulation) Score() int {
	return s.ctx.Score
}

// Frames returns the number of steps taken.
func (s *Simulation) Frames() uint64 {
	return s.frames
}

