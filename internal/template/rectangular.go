package template

import (
	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Rectangular produces plain axis-aligned rooms.
type Rectangular struct{}

func (Rectangular) Shape() world.Shape { return world.ShapeRectangular }
func (Rectangular) Name() string       { return "Rectangular Room" }

func (Rectangular) DefaultParams() Params {
	return Params{MinWidth: 3, MaxWidth: 8, MinHeight: 3, MaxHeight: 8}
}

func (t Rectangular) MaxExtent(params Params) (int, int) {
	p := t.DefaultParams().Merge(params)
	return p.MaxWidth, p.MaxHeight
}

func (t Rectangular) Generate(id, x, y, boundsW, boundsH int, r *rng.Random, params Params) *world.Room {
	p := t.DefaultParams().Merge(params)

	width := r.NextInt(clampRange(p.MinWidth, p.MaxWidth, boundsW))
	height := r.NextInt(clampRange(p.MinHeight, p.MaxHeight, boundsH))
	if width < 1 || height < 1 {
		return squareRoom(id, world.ShapeRectangular, x, y, boundsW, boundsH, fallbackSize)
	}

	return &world.Room{
		ID:     id,
		Shape:  world.ShapeRectangular,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Center: geometry.Point{X: x + width/2, Y: y + height/2},
		Cells:  rectCells(x, y, width, height),
	}
}

func (Rectangular) ConnectionPoints(room *world.Room) []geometry.Point {
	return perimeter(room.Cells)
}

// ConnectionPoint projects target onto the nearest wall of the room.
func (Rectangular) ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point {
	if room.Width == 0 || room.Height == 0 {
		return room.Center
	}

	x, y, w, h := room.X, room.Y, room.Width, room.Height
	left := abs(target.X - x)
	right := abs(target.X - (x + w))
	top := abs(target.Y - y)
	bottom := abs(target.Y - (y + h))
	closest := min(left, right, top, bottom)

	clampX := min(x+w-1, max(x, target.X))
	clampY := min(y+h-1, max(y, target.Y))

	switch closest {
	case left:
		return geometry.Point{X: x, Y: clampY}
	case right:
		return geometry.Point{X: x + w - 1, Y: clampY}
	case top:
		return geometry.Point{X: clampX, Y: y}
	default:
		return geometry.Point{X: clampX, Y: y + h - 1}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
