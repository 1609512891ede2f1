// Package config provides YAML-based game configuration loading and
// difficulty management for the flappy simulation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// FlappyConfig contains all tunables of the simulation and its renderer.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Player     FlappyPlayer     `yaml:"player"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	World      FlappyWorld      `yaml:"world"`
	Parallax   []ParallaxLayer  `yaml:"parallax"`
	Rules      FlappyRules      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines the player's motion constants.
// Velocities are world units per second, angles are radians.
type FlappyPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	FlapVelocityY float64 `yaml:"flap_velocity_y"`
	MaxVelocityY  float64 `yaml:"max_velocity_y"`
	MaxAngleUp    float64 `yaml:"max_angle_up"`
	MaxAngleDown  float64 `yaml:"max_angle_down"`
}

// FlappyPlayer defines the player's spawn point and sprite.
type FlappyPlayer struct {
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	HitboxScale float64 `yaml:"hitbox_scale"` // Fraction of the sprite used for collisions
}

// FlappyPipes defines obstacle generation.
type FlappyPipes struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	SpawnInterval   float64 `yaml:"spawn_interval"`     // Seconds between pipe pairs
	MinHalfGapRatio float64 `yaml:"min_half_gap_ratio"` // Of window height
	MaxHalfGapRatio float64 `yaml:"max_half_gap_ratio"` // Of window height
	EdgeMarginRatio float64 `yaml:"edge_margin_ratio"`  // Keeps the gap away from ceiling and ground
	DespawnMargin   float64 `yaml:"despawn_margin"`     // Beyond the window half-width
}

// FlappyWorld defines world-level geometry and the world-to-cell mapping.
type FlappyWorld struct {
	GroundHeight float64 `yaml:"ground_height"`
	CellW        float64 `yaml:"cell_w"` // World units per terminal column
	CellH        float64 `yaml:"cell_h"` // World units per terminal row
}

// ParallaxLayer is one endlessly scrolling background strip.
type ParallaxLayer struct {
	Name    string  `yaml:"name"`
	Speed   float64 `yaml:"speed"`
	LoopX   float64 `yaml:"loop_x"`
	Anchor  string  `yaml:"anchor"` // "sky" (from the top) or "ground" (from the ground line)
	Row     int     `yaml:"row"`    // Row offset from the anchor
	Pattern string  `yaml:"pattern"`
	Color   string  `yaml:"color"`
}

// RestartMode selects the GameOver exit edge.
type RestartMode string

const (
	RestartMenu   RestartMode = "menu"   // GameOver -> MainMenu
	RestartDirect RestartMode = "direct" // GameOver -> InGame
)

// FlappyRules defines mode-machine behavior.
type FlappyRules struct {
	Restart RestartMode `yaml:"restart"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to pipe speed factor at max difficulty
	GapReduction    float64 `yaml:"gap_reduction"`    // Subtracted from max_half_gap_ratio at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the invariants the simulation relies on.
func (c FlappyConfig) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	p := c.Physics
	if p.MaxVelocityY <= 0 {
		return fail("physics.max_velocity_y must be positive, got %g", p.MaxVelocityY)
	}
	if p.FlapVelocityY <= 0 || p.FlapVelocityY > p.MaxVelocityY {
		return fail("physics.flap_velocity_y must be in (0, %g], got %g", p.MaxVelocityY, p.FlapVelocityY)
	}
	if p.Gravity < 0 {
		return fail("physics.gravity must not be negative, got %g", p.Gravity)
	}
	if p.MaxAngleDown > p.MaxAngleUp {
		return fail("physics.max_angle_down (%g) exceeds max_angle_up (%g)", p.MaxAngleDown, p.MaxAngleUp)
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fail("player extents must be positive")
	}
	if c.Player.HitboxScale <= 0 || c.Player.HitboxScale > 1 {
		return fail("player.hitbox_scale must be in (0, 1], got %g", c.Player.HitboxScale)
	}

	pp := c.Pipes
	if pp.Width <= 0 || pp.Height <= 0 {
		return fail("pipe extents must be positive")
	}
	if pp.SpawnInterval <= 0 {
		return fail("pipes.spawn_interval must be positive, got %g", pp.SpawnInterval)
	}
	if pp.MinHalfGapRatio <= 0 || pp.MinHalfGapRatio > pp.MaxHalfGapRatio {
		return fail("pipes.min_half_gap_ratio must be in (0, max_half_gap_ratio]")
	}
	if pp.DespawnMargin <= pp.Width/2 {
		return fail("pipes.despawn_margin (%g) must exceed half the pipe width (%g)", pp.DespawnMargin, pp.Width/2)
	}

	if c.World.CellW <= 0 || c.World.CellH <= 0 {
		return fail("world cell size must be positive")
	}
	if c.World.GroundHeight < 0 {
		return fail("world.ground_height must not be negative")
	}

	for _, l := range c.Parallax {
		if l.LoopX <= 0 {
			return fail("parallax layer %q: loop_x must be positive", l.Name)
		}
		if l.Speed < 0 {
			return fail("parallax layer %q: speed must not be negative", l.Name)
		}
		if _, ok := core.ParseColor(l.Color); !ok {
			return fail("parallax layer %q: unknown color %q", l.Name, l.Color)
		}
	}

	switch c.Rules.Restart {
	case RestartMenu, RestartDirect:
	default:
		return fail("rules.restart must be %q or %q, got %q", RestartMenu, RestartDirect, c.Rules.Restart)
	}
	return nil
}
