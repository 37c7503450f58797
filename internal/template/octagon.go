package template

import (
	"math"

	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Octagon produces regular eight-sided rooms with flat edges facing the axes.
type Octagon struct{}

func (Octagon) Shape() world.Shape { return world.ShapeOctagon }
func (Octagon) Name() string       { return "Octagon-Shaped Room" }

func (Octagon) DefaultParams() Params {
	return Params{MinSide: 6, MaxSide: 12}
}

func (t Octagon) MaxExtent(params Params) (int, int) {
	p := t.DefaultParams().Merge(params)
	size := int(math.Ceil(float64(p.MaxSide) * math.Sqrt2))
	return size, size
}

func (t Octagon) Generate(id, x, y, boundsW, boundsH int, r *rng.Random, params Params) *world.Room {
	p := t.DefaultParams().Merge(params)

	side := r.NextInt(p.MinSide, p.MaxSide)
	radius := float64(side) / math.Sqrt2
	size := int(math.Ceil(float64(side) * math.Sqrt2))
	if size > boundsW || size > boundsH {
		return squareRoom(id, world.ShapeOctagon, x, y, boundsW, boundsH, fallbackSize)
	}

	sx := r.NextInt(x, x+boundsW-size)
	sy := r.NextInt(y, y+boundsH-size)
	center := geometry.Vec{X: float64(sx) + radius, Y: float64(sy) + radius}
	vertices := geometry.Polygon(center, radius, 8, p.RotationOffset+math.Pi/8)

	c := geometry.Point{X: int(center.X), Y: int(center.Y)}
	return polygonRoom(id, world.ShapeOctagon, sx, sy, size, size, c, vertices)
}

func (Octagon) ConnectionPoints(room *world.Room) []geometry.Point {
	return perimeter(room.Cells)
}

func (Octagon) ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point {
	return nearestToVertex(room, target)
}
