package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors the
// embedded defaults/flappy.yaml and is used when that file fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:       1000,
			FlapVelocityY: 300,
			MaxVelocityY:  400,
			MaxAngleUp:    0.5,
			MaxAngleDown:  -1.2,
		},
		Player: FlappyPlayer{
			SpawnX:      -120,
			SpawnY:      0,
			Width:       16,
			Height:      16,
			HitboxScale: 0.8,
		},
		Pipes: FlappyPipes{
			Width:           40,
			Height:          800,
			Speed:           120,
			SpawnInterval:   1.8,
			MinHalfGapRatio: 0.14,
			MaxHalfGapRatio: 0.2,
			EdgeMarginRatio: 0.05,
			DespawnMargin:   100,
		},
		World: FlappyWorld{
			GroundHeight: 32,
			CellW:        8,
			CellH:        16,
		},
		Parallax: []ParallaxLayer{
			{
				Name:    "clouds",
				Speed:   15,
				LoopX:   320,
				Anchor:  "sky",
				Row:     2,
				Pattern: "   .--.     .-.          .---.          ",
				Color:   "white",
			},
			{
				Name:    "hills",
				Speed:   40,
				LoopX:   160,
				Anchor:  "ground",
				Row:     1,
				Pattern: "    /\\      /\\/\\    ",
				Color:   "gray",
			},
			{
				Name:    "ground",
				Speed:   120,
				LoopX:   48,
				Anchor:  "ground",
				Row:     0,
				Pattern: "=-=-=-",
				Color:   "orange",
			},
		},
		Rules: FlappyRules{
			Restart: RestartMenu,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
				GapReduction:    0.05,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
