package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomstalk/internal/entity"
	"github.com/samdwyer/gloomstalk/internal/fov"
	"github.com/samdwyer/gloomstalk/internal/world"
)

// Tile background colors, one per (seen, wall) combination.
var (
	colorDarkWall    = tcell.NewRGBColor(0, 0, 100)
	colorDarkGround  = tcell.NewRGBColor(50, 50, 150)
	colorLightWall   = tcell.NewRGBColor(130, 110, 50)
	colorLightGround = tcell.NewRGBColor(200, 180, 50)

	styleBar     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(160, 0, 0))
	styleBarBack = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(64, 16, 16))
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer draws the map, entities, and status panel to the screen. It only
// consumes the three per-tile booleans and the per-entity draw data the
// core exposes; no game rules live here.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render composites one frame: tiles, then entities in draw order, then the
// status panel, and flushes.
func (r *Renderer) Render(m *world.Map, vis *fov.Engine, reg *entity.Registry, messages []string) {
	r.screen.Clear()
	r.drawTiles(m, vis)
	r.drawEntities(vis, reg)
	r.drawPanel(m, reg, messages)
	r.screen.Show()
}

// drawTiles colors each cell four ways: lit/dark crossed with wall/ground.
// Never-explored tiles stay black.
func (r *Renderer) drawTiles(m *world.Map, vis *fov.Engine) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.At(x, y)
			if !tile.Explored {
				continue
			}
			var bg tcell.Color
			switch {
			case vis.IsVisible(x, y) && tile.BlockSight:
				bg = colorLightWall
			case vis.IsVisible(x, y):
				bg = colorLightGround
			case tile.BlockSight:
				bg = colorDarkWall
			default:
				bg = colorDarkGround
			}
			r.screen.SetContent(x, y, ' ', tcell.StyleDefault.Background(bg))
		}
	}
}

// drawEntities draws currently-visible entities, non-blockers first so
// corpses render under creatures.
func (r *Renderer) drawEntities(vis *fov.Engine, reg *entity.Registry) {
	for pass := 0; pass < 2; pass++ {
		wantBlocks := pass == 1
		for i := 0; i < reg.Len(); i++ {
			e := reg.At(entity.ID(i))
			if e.Blocks != wantBlocks || !vis.IsVisible(e.X, e.Y) {
				continue
			}
			style := tcell.StyleDefault.
				Foreground(e.Color).
				Background(colorLightGround)
			r.screen.SetContent(e.X, e.Y, e.Glyph, style)
		}
	}
}

// drawPanel renders the HP bar and recent messages below the map.
func (r *Renderer) drawPanel(m *world.Map, reg *entity.Registry, messages []string) {
	barY := m.Height
	if f := reg.Fighter(entity.Player); f != nil {
		r.drawBar(0, barY, 20, f.HP, f.MaxHP)
	}
	for i, msg := range messages {
		r.drawText(22, barY+i, msg)
	}
}

// drawBar draws a labelled proportional bar of the given total width.
func (r *Renderer) drawBar(x, y, width, value, max int) {
	filled := 0
	if max > 0 {
		filled = value * width / max
	}
	if filled < 0 {
		filled = 0
	}
	label := fmt.Sprintf("HP: %d/%d", value, max)
	for i := 0; i < width; i++ {
		ch := ' '
		if i < len(label) {
			ch = rune(label[i])
		}
		style := styleBarBack
		if i < filled {
			style = styleBar
		}
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// drawText writes a plain string at the given position.
func (r *Renderer) drawText(x, y int, msg string) {
	for i, ch := range msg {
		r.screen.SetContent(x+i, y, ch, styleText)
	}
}
