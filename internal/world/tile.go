// Package world defines the dungeon map value and the types it is built from.
package world

import "fmt"

// CellType tags a single map cell.
type CellType uint8

const (
	CellEmpty CellType = iota
	CellWall
	CellFloor
	CellCorridor
	CellDoor
	CellSecretDoor
	CellEntrance
	CellExit
	CellWater
	CellPillar
	CellStatue
	CellAltar
	CellFountain
	CellTrap
	CellTreasure
	CellMonster
)

var cellNames = [...]string{
	CellEmpty:      "empty",
	CellWall:       "wall",
	CellFloor:      "floor",
	CellCorridor:   "corridor",
	CellDoor:       "door",
	CellSecretDoor: "secret_door",
	CellEntrance:   "entrance",
	CellExit:       "exit",
	CellWater:      "water",
	CellPillar:     "pillar",
	CellStatue:     "statue",
	CellAltar:      "altar",
	CellFountain:   "fountain",
	CellTrap:       "trap",
	CellTreasure:   "treasure",
	CellMonster:    "monster",
}

var cellRunes = [...]rune{
	CellEmpty:      ' ',
	CellWall:       '#',
	CellFloor:      '.',
	CellCorridor:   ',',
	CellDoor:       '+',
	CellSecretDoor: 'S',
	CellEntrance:   '<',
	CellExit:       '>',
	CellWater:      '~',
	CellPillar:     'O',
	CellStatue:     '&',
	CellAltar:      '_',
	CellFountain:   '{',
	CellTrap:       '^',
	CellTreasure:   '$',
	CellMonster:    'M',
}

// AllCellTypes lists every cell type in declaration order.
func AllCellTypes() []CellType {
	out := make([]CellType, len(cellNames))
	for i := range out {
		out[i] = CellType(i)
	}
	return out
}

// String returns the snake_case name of the cell type.
func (c CellType) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return fmt.Sprintf("CellType(%d)", c)
}

// Rune returns the default display glyph.
func (c CellType) Rune() rune {
	if int(c) < len(cellRunes) {
		return cellRunes[c]
	}
	return '?'
}

// IsPassable returns true if the cell can be walked on.
func (c CellType) IsPassable() bool {
	switch c {
	case CellEmpty, CellWall, CellPillar, CellStatue:
		return false
	default:
		return true
	}
}

// IsFeature returns true for the decorative and functional room features.
func (c CellType) IsFeature() bool {
	return c >= CellWater && c <= CellMonster
}

// ParseCellType returns the cell type with the given name.
func ParseCellType(name string) (CellType, error) {
	for i, n := range cellNames {
		if n == name {
			return CellType(i), nil
		}
	}
	return CellEmpty, fmt.Errorf("unknown cell type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c CellType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CellType) UnmarshalText(text []byte) error {
	v, err := ParseCellType(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
