package sim

import (
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/component"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

func spawnPlayer(w *ecs.World, cfg config.FlappyConfig) ecs.Entity {
	e := w.CreateEntity()
	w.Players.Set(e, component.Player{})
	w.Transforms.Set(e, component.Transform{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY})
	w.Velocities.Set(e, component.Velocity{})
	w.Gravities.Set(e, component.Gravity{Magnitude: cfg.Physics.Gravity})
	w.Sprites.Set(e, component.Sprite{
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		Glyph: '>',
		Color: core.ColorBrightYellow,
		Layer: 2,
	})
	w.Hitboxes.Set(e, component.Hitbox{Scale: cfg.Player.HitboxScale})
	return e
}

func spawnParallax(w *ecs.World, layers []config.ParallaxLayer) {
	for _, l := range layers {
		color, _ := core.ParseColor(l.Color)
		e := w.CreateEntity()
		w.Transforms.Set(e, component.Transform{})
		w.Parallaxes.Set(e, component.Parallax{
			Name:    l.Name,
			Speed:   l.Speed,
			LoopX:   l.LoopX,
			Anchor:  l.Anchor,
			Row:     l.Row,
			Pattern: []rune(l.Pattern),
			Color:   color,
		})
	}
}

func spawnMessage(w *ecs.World, kind component.MessageKind, lines ...string) ecs.Entity {
	e := w.CreateEntity()
	w.Messages.Set(e, component.Message{Kind: kind, Lines: lines})
	return e
}

// despawnMessages destroys every message of the given kinds, or all
// messages when no kind is given.
func despawnMessages(w *ecs.World, kinds ...component.MessageKind) {
	for _, e := range w.Messages.Entities() {
		m, _ := w.Messages.Get(e)
		if len(kinds) == 0 || slices.Contains(kinds, m.Kind) {
			w.DestroyEntity(e)
		}
	}
}

func despawnPipes(w *ecs.World) {
	for _, e := range w.Pipes.Entities() {
		w.DestroyEntity(e)
	}
}
