package template

import (
	"math"

	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// turtle steps: turn by angle degrees, then move forward move units (in
// multiples of the star's scale).
type step struct {
	turn float64
	move bool
}

// starCycle traces one arm of the star. Four cycles close the outline.
var starCycle = []step{
	{turn: -90}, {move: true},
	{turn: 45}, {move: true},
	{turn: -90}, {move: true},
	{turn: 45}, {move: true},
}

// Star produces a pointed room traced by turtle instructions.
type Star struct{}

func (Star) Shape() world.Shape { return world.ShapeStar }
func (Star) Name() string       { return "Star-Shaped Room" }

func (Star) DefaultParams() Params {
	return Params{
		MinScale:       3,
		MaxScale:       6,
		ForceEvenScale: true,
		GlobalScaleMin: 0.3,
		GlobalScaleMax: 0.6,
	}
}

func (t Star) MaxExtent(params Params) (int, int) {
	p := t.DefaultParams().Merge(params)
	scale := p.MaxScale
	if p.ForceEvenScale && scale%2 != 0 {
		scale++
	}
	lo, hi := geometry.Bounds(starOutline(scale, p.GlobalScaleMax))
	return int(math.Ceil(hi.X - lo.X)), int(math.Ceil(hi.Y - lo.Y))
}

func (t Star) Generate(id, x, y, boundsW, boundsH int, r *rng.Random, params Params) *world.Room {
	p := t.DefaultParams().Merge(params)

	scale := r.NextInt(p.MinScale, p.MaxScale)
	if p.ForceEvenScale && scale%2 != 0 {
		scale++
	}
	factor := r.NextFloat(p.GlobalScaleMin, p.GlobalScaleMax)

	outline := starOutline(scale, factor)
	lo, hi := geometry.Bounds(outline)
	w := int(math.Ceil(hi.X - lo.X))
	h := int(math.Ceil(hi.Y - lo.Y))
	if w > boundsW || h > boundsH || w < 1 || h < 1 {
		return squareRoom(id, world.ShapeStar, x, y, boundsW, boundsH, fallbackSize)
	}

	ox := r.NextInt(x, x+boundsW-w)
	oy := r.NextInt(y, y+boundsH-h)
	vertices := make([]geometry.Vec, len(outline))
	for i, v := range outline {
		vertices[i] = geometry.Vec{X: v.X - lo.X + float64(ox), Y: v.Y - lo.Y + float64(oy)}
	}

	room := polygonRoom(id, world.ShapeStar, ox, oy, w, h, geometry.Point{X: ox + w/2, Y: oy + h/2}, vertices)
	if len(room.Cells) == 0 {
		return squareRoom(id, world.ShapeStar, x, y, boundsW, boundsH, fallbackSize)
	}
	return room
}

// starOutline walks the turtle from the origin heading east. Positions are
// rounded to three decimals before scaling so the outline is stable.
func starOutline(scale int, factor float64) []geometry.Vec {
	var pos geometry.Vec
	heading := 0.0
	vertices := []geometry.Vec{pos}
	for range 4 {
		for _, s := range starCycle {
			if !s.move {
				heading += s.turn
				continue
			}
			rad := heading * math.Pi / 180
			pos = geometry.Vec{
				X: math.Round((pos.X+float64(scale)*math.Cos(rad))*1000) / 1000,
				Y: math.Round((pos.Y+float64(scale)*math.Sin(rad))*1000) / 1000,
			}
			vertices = append(vertices, pos)
		}
	}
	for i := range vertices {
		vertices[i].X *= factor
		vertices[i].Y *= factor
	}
	return vertices
}

func (Star) ConnectionPoints(room *world.Room) []geometry.Point {
	return perimeter(room.Cells)
}

func (Star) ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point {
	return nearestPerimeter(room, target)
}
