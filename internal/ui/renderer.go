package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/world"
)

// StatusRows is the number of rows kept free below the map.
const StatusRows = 2

// Viewport is the map cell drawn at the top-left of the canvas.
type Viewport struct {
	X, Y int
}

// Clamp keeps the viewport from scrolling past the map edges on a canvas of
// the given size.
func (v Viewport) Clamp(d *world.Dungeon, width, height int) Viewport {
	clampAxis := func(pos, size, visible int) int {
		return max(0, min(pos, size-visible))
	}
	return Viewport{
		X: clampAxis(v.X, d.Width, width),
		Y: clampAxis(v.Y, d.Height, height-StatusRows),
	}
}

// Renderer draws dungeons onto a canvas.
type Renderer struct {
	canvas  Canvas
	palette gamedata.Palette
}

// NewRenderer creates a renderer drawing with palette.
func NewRenderer(canvas Canvas, palette gamedata.Palette) *Renderer {
	return &Renderer{canvas: canvas, palette: palette}
}

// Render draws the part of the dungeon visible through view.
func (r *Renderer) Render(d *world.Dungeon, view Viewport) {
	width, height := r.canvas.Size()
	rows := height - StatusRows

	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < width; sx++ {
			x, y := view.X+sx, view.Y+sy
			if x >= d.Width || y >= d.Height {
				continue
			}
			kind := d.Cell(x, y)
			cs := r.palette.Style(kind)
			r.canvas.SetContent(sx, sy, cs.Glyph, r.styleFor(kind, cs))
		}
	}
}

func (r *Renderer) styleFor(kind world.CellType, cs gamedata.CellStyle) tcell.Style {
	style := tcell.StyleDefault.Foreground(cs.Color)
	switch kind {
	case world.CellEntrance, world.CellExit, world.CellMonster, world.CellTreasure:
		style = style.Bold(true)
	}
	return style
}

// RenderLegend draws a key for kinds in the top-right corner.
func (r *Renderer) RenderLegend(kinds []world.CellType) {
	width, _ := r.canvas.Size()
	lines := make([]string, len(kinds))
	widest := 0
	for i, kind := range kinds {
		lines[i] = fmt.Sprintf("  %s", kind)
		widest = max(widest, len(lines[i])+1)
	}

	left := max(0, width-widest-1)
	label := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	for i, kind := range kinds {
		cs := r.palette.Style(kind)
		for x := left; x < width; x++ {
			r.canvas.SetContent(x, i, ' ', label)
		}
		r.canvas.SetContent(left, i, cs.Glyph, r.styleFor(kind, cs).Background(tcell.ColorBlack))
		r.drawText(left+1, i, lines[i][1:], label)
	}
}

// RenderMessage writes msg on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.canvas.SetContent(x+i, y, ch, style)
	}
}
