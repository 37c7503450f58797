package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/world"
)

// ASCII renders d as plain text, one map row per line.
func ASCII(d *world.Dungeon, palette gamedata.Palette) string {
	var b strings.Builder
	b.Grow((d.Width + 1) * d.Height)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			b.WriteRune(palette.Style(d.Cell(x, y)).Glyph)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Colored renders d like ASCII with each run of equal cells styled in its
// palette color.
func Colored(d *world.Dungeon, palette gamedata.Palette) string {
	styles := make(map[world.CellType]lipgloss.Style)
	styleOf := func(kind world.CellType) lipgloss.Style {
		if s, ok := styles[kind]; ok {
			return s
		}
		s := lipgloss.NewStyle()
		if hex := palette.Style(kind).Color.Hex(); hex >= 0 {
			s = s.Foreground(lipgloss.Color(fmt.Sprintf("#%06x", hex)))
		}
		styles[kind] = s
		return s
	}

	var b strings.Builder
	for y := 0; y < d.Height; y++ {
		var run []rune
		prev := world.CellType(0)
		flush := func() {
			if len(run) > 0 {
				b.WriteString(styleOf(prev).Render(string(run)))
				run = run[:0]
			}
		}
		for x := 0; x < d.Width; x++ {
			kind := d.Cell(x, y)
			if kind != prev {
				flush()
				prev = kind
			}
			run = append(run, palette.Style(kind).Glyph)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend lists the cell kinds present in d, in declaration order.
func Legend(d *world.Dungeon) []world.CellType {
	var kinds []world.CellType
	for _, kind := range world.AllCellTypes() {
		if d.CountCells(kind) > 0 {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
