package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/component"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// PipeGap is the opening of one pipe pair.
type PipeGap struct {
	GapY    float64 // Centre of the opening
	HalfGap float64
}

// BottomY returns the centre y of the bottom pipe for a pipe of height ph.
func (g PipeGap) BottomY(ph float64) float64 {
	return g.GapY - g.HalfGap - ph/2
}

// TopY returns the centre y of the top pipe for a pipe of height ph.
func (g PipeGap) TopY(ph float64) float64 {
	return g.GapY + g.HalfGap + ph/2
}

// drawGap picks the half gap first, then a gap centre that keeps the whole
// opening between the ground and the ceiling margins. If the window is too
// short for that, the opening is centred in the free band.
func drawGap(ctx *Context, h float64) PipeGap {
	pc := ctx.Config.Pipes
	maxRatio := ctx.Difficulty.MaxHalfGapRatio(pc.MinHalfGapRatio, pc.MaxHalfGapRatio, ctx.Score, ctx.Ticks)
	halfGap := h * core.Lerp(pc.MinHalfGapRatio, maxRatio, ctx.Rand.Float64())

	margin := pc.EdgeMarginRatio * h
	lo := -h/2 + ctx.Config.World.GroundHeight + margin + halfGap
	hi := h/2 - margin - halfGap

	var gapY float64
	if hi < lo {
		gapY = (lo + hi) / 2
	} else {
		gapY = core.Lerp(lo, hi, ctx.Rand.Float64())
	}
	return PipeGap{GapY: gapY, HalfGap: halfGap}
}

// pipeGeneratorPass spawns a pipe pair each time the spawn timer fires.
func pipeGeneratorPass(ctx *Context) error {
	if !ctx.SpawnTimer.Tick(ctx.DT) {
		return nil
	}
	width, height, ok := ctx.Window.Size()
	if !ok {
		return nil
	}
	spawnPipePair(ctx, width, drawGap(ctx, height))
	return nil
}

// spawnPipePair creates both pipes just off the right edge. Only the bottom
// pipe carries the score gate.
func spawnPipePair(ctx *Context, width float64, gap PipeGap) (bottom, top ecs.Entity) {
	pc := ctx.Config.Pipes
	x := width/2 + pc.Width/2
	vx := -ctx.pipeSpeed()

	spawn := func(isTop bool, y float64) ecs.Entity {
		w := ctx.World
		e := w.CreateEntity()
		w.Transforms.Set(e, component.Transform{X: x, Y: y})
		w.Velocities.Set(e, component.Velocity{VX: vx})
		w.Sprites.Set(e, component.Sprite{W: pc.Width, H: pc.Height, Glyph: '█', Color: core.ColorGreen, Layer: 1})
		w.Pipes.Set(e, component.Pipe{Top: isTop, GapY: gap.GapY, HalfGap: gap.HalfGap})
		w.Despawnables.Set(e, component.Despawnable{})
		return e
	}

	bottom = spawn(false, gap.BottomY(pc.Height))
	top = spawn(true, gap.TopY(pc.Height))
	ctx.World.ScoreGates.Set(bottom, component.ScoreGate{})
	return bottom, top
}
