package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeongen/internal/geometry"
)

// Shape identifies the template a room was generated from.
type Shape string

const (
	ShapeRectangular Shape = "rectangular"
	ShapeCircular    Shape = "circular"
	ShapeLShaped     Shape = "l-shaped"
	ShapeCave        Shape = "cave"
	ShapeStar        Shape = "star-shaped"
	ShapeCross       Shape = "cross-shaped"
	ShapeOctagon     Shape = "octagon-shaped"
	ShapeNorthStar   Shape = "north-star-shaped"
)

// Room is a placed room. Its ID is assigned once and never reused.
type Room struct {
	ID     int
	Shape  Shape
	X, Y   int // Top-left corner of the bounding box
	Width  int
	Height int
	Radius int // Circular rooms only

	Center geometry.Point
	Cells  []geometry.Point // Every floor cell of the footprint
	Border []geometry.Vec   // Outline used for curved walls and connection math

	Features    []Feature
	Description string
}

// Bounds returns the room's bounding box.
func (r *Room) Bounds() geometry.Rect {
	return geometry.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Contains returns true if the given point is part of the room's footprint.
func (r *Room) Contains(x, y int) bool {
	if !geometry.PointInRect(x, y, r.Bounds()) {
		return false
	}
	if r.Cells == nil {
		return true
	}
	for _, c := range r.Cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// Intersects returns true if the bounding boxes of the two rooms overlap.
func (r *Room) Intersects(other *Room) bool {
	return geometry.RectsOverlap(r.Bounds(), other.Bounds())
}

// CellSet returns the footprint as a set.
func (r *Room) CellSet() mapset.Set[geometry.Point] {
	set := mapset.New[geometry.Point]()
	for _, c := range r.Cells {
		set.Put(c)
	}
	return set
}

// Corridor is a path connecting two rooms.
type Corridor struct {
	From, To         int
	FromRoom, ToRoom *Room
	Path             []geometry.Point
	Width            int
}

// Door sits where a corridor meets a room floor.
type Door struct {
	Position geometry.Point
	Kind     CellType // CellDoor or CellSecretDoor
	Connects [2]int
}

// Feature is a decorative or functional element placed on a room floor.
type Feature struct {
	Position    geometry.Point
	Kind        CellType
	Description string
	RoomID      int
}

// Marker locates the entrance or exit.
type Marker struct {
	Position geometry.Point
	RoomID   int
}
