package template

import (
	"math"

	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// NorthStar produces an eight-pointed compass rose: vertices alternate
// between the outer and inner radius every 45 degrees.
type NorthStar struct{}

func (NorthStar) Shape() world.Shape { return world.ShapeNorthStar }
func (NorthStar) Name() string       { return "North-Star-Shaped Room" }

func (NorthStar) DefaultParams() Params {
	return Params{MinOuterRadius: 4, MaxOuterRadius: 8, InnerRatio: 0.7}
}

func (t NorthStar) MaxExtent(params Params) (int, int) {
	p := t.DefaultParams().Merge(params)
	return 2 * p.MaxOuterRadius, 2 * p.MaxOuterRadius
}

func (t NorthStar) Generate(id, x, y, boundsW, boundsH int, r *rng.Random, params Params) *world.Room {
	p := t.DefaultParams().Merge(params)

	outer := r.NextInt(p.MinOuterRadius, p.MaxOuterRadius)
	inner := int(math.Floor(float64(outer) * p.InnerRatio))
	size := 2 * outer
	if inner < 1 || size > boundsW || size > boundsH {
		return squareRoom(id, world.ShapeNorthStar, x, y, boundsW, boundsH, fallbackSize)
	}

	sx := r.NextInt(x, x+boundsW-size)
	sy := r.NextInt(y, y+boundsH-size)
	cx, cy := sx+outer, sy+outer

	vertices := make([]geometry.Vec, 8)
	for i := range vertices {
		angle := float64(i)*math.Pi/4 + p.RotationOffset
		radius := float64(outer)
		if i%2 == 1 {
			radius = float64(inner)
		}
		vertices[i] = geometry.Vec{
			X: float64(cx) + radius*math.Cos(angle),
			Y: float64(cy) + radius*math.Sin(angle),
		}
	}

	room := polygonRoom(id, world.ShapeNorthStar, sx, sy, size, size, geometry.Point{X: cx, Y: cy}, vertices)
	if len(room.Cells) == 0 {
		return squareRoom(id, world.ShapeNorthStar, x, y, boundsW, boundsH, fallbackSize)
	}
	return room
}

func (NorthStar) ConnectionPoints(room *world.Room) []geometry.Point {
	return perimeter(room.Cells)
}

func (NorthStar) ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point {
	return nearestToVertex(room, target)
}
