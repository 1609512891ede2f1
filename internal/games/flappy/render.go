package flappy

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/component"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀' // Lower end of a top pipe
	PipeCapBottom = '▄' // Upper end of a bottom pipe
	GroundFill    = '▓'
	BirdBody      = '●'
)

// Rotation beyond which the bird's head tilts.
const tiltThreshold = 0.25

// viewport maps world coordinates to screen cells. The world origin is the
// screen centre with +Y up.
type viewport struct {
	w, h         float64 // World size
	cellW, cellH float64
	cols, rows   int
}

// span returns the half-open cell range [start, end) whose centres lie in
// [lo, hi), where lo and hi are offsets from the first cell edge.
func span(lo, hi, size float64, n int) (int, int) {
	start := int(math.Ceil(lo/size - 0.5))
	end := int(math.Ceil(hi/size - 0.5))
	return core.Clamp(start, 0, n), core.Clamp(end, 0, n)
}

// colSpan returns the columns covered by [left, right) in world x.
func (v viewport) colSpan(left, right float64) (int, int) {
	return span(left+v.w/2, right+v.w/2, v.cellW, v.cols)
}

// rowSpan returns the rows covered by [bottom, top) in world y.
func (v viewport) rowSpan(bottom, top float64) (int, int) {
	return span(v.h/2-top, v.h/2-bottom, v.cellH, v.rows)
}

// cell returns the cell containing a world point.
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor((x + v.w/2) / v.cellW)), int(math.Floor((v.h/2 - y) / v.cellH))
}

// centreX returns the world x of a column centre.
func (v viewport) centreX(col int) float64 {
	return (float64(col)+0.5)*v.cellW - v.w/2
}

// groundRow returns the first row drawn as ground.
func (v viewport) groundRow(groundHeight float64) int {
	rows := int(math.Round(groundHeight / v.cellH))
	return core.Clamp(v.rows-rows, 0, v.rows)
}

// Render draws the world, the score and any mode message.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	w, h, ok := g.window.Size()
	if !ok {
		return
	}
	vp := viewport{
		w: w, h: h,
		cellW: g.cfg.World.CellW, cellH: g.cfg.World.CellH,
		cols: dst.Width(), rows: dst.Height(),
	}
	world := g.sim.World()
	ground := vp.groundRow(g.cfg.World.GroundHeight)

	drawParallax(dst, world, vp, ground, "sky")
	drawPipes(dst, world, vp)
	for y := ground; y < vp.rows; y++ {
		dst.DrawHLine(0, y, vp.cols, GroundFill, core.ColorGray)
	}
	drawParallax(dst, world, vp, ground, "ground")
	drawPlayer(dst, world, vp)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.sim.Score()), core.ColorBrightWhite)
	drawMessages(dst, world, g.sim.Score())
}

// drawParallax tiles every layer anchored to the given band. Sky rows count
// down from the top; ground rows count up from the ground line.
func drawParallax(dst *core.Screen, world *ecs.World, vp viewport, ground int, anchor string) {
	for _, e := range world.Query(world.Parallaxes, world.Transforms) {
		p, _ := world.Parallaxes.Get(e)
		if p.Anchor != anchor || len(p.Pattern) == 0 {
			continue
		}
		t, _ := world.Transforms.Get(e)

		row := p.Row
		if anchor == "ground" {
			row = ground - p.Row
		}
		if row < 0 || row >= vp.rows {
			continue
		}

		n := float64(len(p.Pattern))
		for col := 0; col < vp.cols; col++ {
			i := int(core.EuclidMod(math.Floor((vp.centreX(col)-t.X)/vp.cellW), n))
			if r := p.Pattern[i]; r != ' ' {
				dst.SetColored(col, row, r, p.Color)
			}
		}
	}
}

func drawPipes(dst *core.Screen, world *ecs.World, vp viewport) {
	bounds := core.NewRect(0, 0, dst.Width(), dst.Height())
	for _, e := range world.Query(world.Pipes, world.Transforms, world.Sprites) {
		p, _ := world.Pipes.Get(e)
		t, _ := world.Transforms.Get(e)
		s, _ := world.Sprites.Get(e)
		box := s.Box(t)

		c0, c1 := vp.colSpan(box.Left(), box.Right())
		r0, r1 := vp.rowSpan(t.Y-s.H/2, t.Y+s.H/2)
		cells := core.NewRect(c0, r0, c1-c0, r1-r0)
		if c0 >= c1 || r0 >= r1 || !cells.Intersects(bounds) {
			continue
		}
		dst.DrawRect(cells, PipeChar, s.Color)

		// Caps sit on the row facing the gap
		if p.Top {
			dst.DrawHLine(c0, r1-1, c1-c0, PipeCapTop, core.ColorBrightGreen)
		} else {
			dst.DrawHLine(c0, r0, c1-c0, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

func drawPlayer(dst *core.Screen, world *ecs.World, vp viewport) {
	e, ok := world.Player()
	if !ok {
		return
	}
	t, _ := world.Transforms.Get(e)
	s, _ := world.Sprites.Get(e)

	c0, c1 := vp.colSpan(t.X-s.W/2, t.X+s.W/2)
	_, row := vp.cell(t.X, t.Y)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	for col := c0; col < c1-1; col++ {
		dst.SetColored(col, row, BirdBody, s.Color)
	}
	dst.SetColored(c1-1, row, birdHead(t.Rotation), s.Color)
}

// birdHead picks the head glyph for a rotation in radians.
func birdHead(rotation float64) rune {
	switch {
	case rotation > tiltThreshold:
		return '/'
	case rotation < -tiltThreshold:
		return '\\'
	default:
		return '>'
	}
}

// drawMessages renders mode messages as a framed block in the screen centre.
func drawMessages(dst *core.Screen, world *ecs.World, score int) {
	entities := world.Query(world.Messages)
	if len(entities) == 0 {
		return
	}

	var lines []string
	for _, e := range entities {
		m, _ := world.Messages.Get(e)
		msg := slices.Clone(m.Lines)
		if m.Kind == component.MessageGameOver && len(msg) > 0 {
			msg = slices.Insert(msg, 1, fmt.Sprintf("Score: %d", score))
		}
		lines = append(lines, msg...)
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW, boxH := width+4, len(lines)+2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(x, y, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(x, y, boxW, boxH), core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l, core.ColorBrightWhite)
	}
}
