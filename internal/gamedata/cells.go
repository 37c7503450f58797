package gamedata

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/world"
)

// CellDef is one row of cells.json.
type CellDef struct {
	Kind  world.CellType `json:"kind"`
	Glyph string         `json:"glyph"`
	Color string         `json:"color"`
}

// CellStyle is a resolved CellDef ready for drawing.
type CellStyle struct {
	Glyph rune
	Color tcell.Color
}

// Palette maps every cell type to how it is drawn.
type Palette map[world.CellType]CellStyle

// LoadPalette decodes cells.json and resolves its colors.
func LoadPalette() (Palette, error) {
	table, err := Load[struct {
		Cells []CellDef `json:"cells"`
	}]("cells.json")
	if err != nil {
		return nil, err
	}

	p := make(Palette, len(table.Cells))
	for _, def := range table.Cells {
		color, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", def.Kind, err)
		}
		glyph := def.Kind.Rune()
		if r := []rune(def.Glyph); len(r) > 0 {
			glyph = r[0]
		}
		p[def.Kind] = CellStyle{Glyph: glyph, Color: color}
	}
	return p, nil
}

var defaultPalette = sync.OnceValue(func() Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
})

// DefaultPalette returns the embedded palette, decoded once.
func DefaultPalette() Palette {
	return defaultPalette()
}

// Style returns how kind is drawn, falling back to its default glyph in the
// terminal's default color.
func (p Palette) Style(kind world.CellType) CellStyle {
	if s, ok := p[kind]; ok {
		return s
	}
	return CellStyle{Glyph: kind.Rune(), Color: tcell.ColorDefault}
}
