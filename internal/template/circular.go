package template

import (
	"math"

	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// minBorderSamples is the fewest border vertices a circular room carries.
const minBorderSamples = 32

// Circular produces filled disc rooms.
type Circular struct{}

func (Circular) Shape() world.Shape { return world.ShapeCircular }
func (Circular) Name() string       { return "Circular Room" }

func (Circular) DefaultParams() Params {
	return Params{MinRadius: 3, MaxRadius: 6}
}

func (t Circular) MaxExtent(params Params) (int, int) {
	p := t.DefaultParams().Merge(params)
	d := 2*p.MaxRadius + 1
	return d, d
}

func (t Circular) Generate(id, x, y, boundsW, boundsH int, r *rng.Random, params Params) *world.Room {
	p := t.DefaultParams().Merge(params)

	radius := r.NextInt(clampRange(p.MinRadius, p.MaxRadius, (min(boundsW, boundsH)-1)/2))
	if radius < 1 {
		return squareRoom(id, world.ShapeCircular, x, y, boundsW, boundsH, fallbackSize)
	}
	return circleRoom(id, world.ShapeCircular, x, y, radius)
}

// circleRoom builds a disc of the given radius whose bounding box starts at (x, y).
func circleRoom(id int, shape world.Shape, x, y, radius int) *world.Room {
	cx, cy := x+radius, y+radius

	samples := max(minBorderSamples, radius*4)
	border := make([]geometry.Vec, samples)
	for i := range border {
		angle := 2 * math.Pi * float64(i) / float64(samples)
		border[i] = geometry.Vec{
			X: float64(cx) + float64(radius)*math.Cos(angle),
			Y: float64(cy) + float64(radius)*math.Sin(angle),
		}
	}

	d := 2*radius + 1
	return &world.Room{
		ID:     id,
		Shape:  shape,
		X:      x,
		Y:      y,
		Width:  d,
		Height: d,
		Radius: radius,
		Center: geometry.Point{X: cx, Y: cy},
		Cells:  geometry.FilledCirclePoints(cx, cy, radius),
		Border: border,
	}
}

// ConnectionPoints returns the cells lying near the circle's rim.
func (Circular) ConnectionPoints(room *world.Room) []geometry.Point {
	if room.Radius == 0 {
		return perimeter(room.Cells)
	}
	var out []geometry.Point
	for _, c := range room.Cells {
		d := geometry.PointDistance(c, room.Center)
		if math.Abs(d-float64(room.Radius)) < 1.5 {
			out = append(out, c)
		}
	}
	return out
}

// ConnectionPoint returns the rim point in the direction of target.
func (Circular) ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point {
	if room.Radius == 0 {
		return nearestPerimeter(room, target)
	}
	dx := float64(target.X - room.Center.X)
	dy := float64(target.Y - room.Center.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return room.Center
	}
	rad := float64(room.Radius)
	return geometry.Point{
		X: room.Center.X + int(math.Round(dx/length*rad)),
		Y: room.Center.Y + int(math.Round(dy/length*rad)),
	}
}
