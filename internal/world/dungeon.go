package world

import (
	"github.com/samdwyer/dungeongen/internal/grid"
	"github.com/samdwyer/dungeongen/internal/rng"
)

// Dungeon is a generated map. It is produced once by the generator and must
// be treated as read-only by every consumer.
type Dungeon struct {
	Width  int
	Height int
	Grid   *grid.Grid[CellType]

	Rooms     []*Room
	Corridors []*Corridor
	Doors     []Door
	Features  []Feature
	Entrance  *Marker // nil when no entrance could be placed
	Exit      *Marker // nil when no exit could be placed

	Seed  rng.Seed
	Theme string
}

// Cell returns the cell type at the given position. Out-of-bounds positions
// read as empty.
func (d *Dungeon) Cell(x, y int) CellType {
	return d.Grid.At(x, y)
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	v, ok := d.Grid.Get(x, y)
	return ok && v.IsPassable()
}

// RoomAt returns the room whose footprint contains the position, or nil.
func (d *Dungeon) RoomAt(x, y int) *Room {
	for _, room := range d.Rooms {
		if room.Contains(x, y) {
			return room
		}
	}
	return nil
}

// Room returns the room with the given id, or nil.
func (d *Dungeon) Room(id int) *Room {
	for _, room := range d.Rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}

// CountCells returns how many cells hold the given type.
func (d *Dungeon) CountCells(kind CellType) int {
	n := 0
	d.Grid.ForEach(func(v CellType, _, _ int) {
		if v == kind {
			n++
		}
	})
	return n
}
