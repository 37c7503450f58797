package template

import (
	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// LShaped produces a rectangle with its bottom-right corner removed.
type LShaped struct{}

func (LShaped) Shape() world.Shape { return world.ShapeLShaped }
func (LShaped) Name() string       { return "L-Shaped Room" }

func (LShaped) DefaultParams() Params {
	return Params{MinWidth: 5, MaxWidth: 10, MinHeight: 5, MaxHeight: 10}
}

func (t LShaped) MaxExtent(params Params) (int, int) {
	p := t.DefaultParams().Merge(params)
	return p.MaxWidth, p.MaxHeight
}

func (t LShaped) Generate(id, x, y, boundsW, boundsH int, r *rng.Random, params Params) *world.Room {
	p := t.DefaultParams().Merge(params)

	width := r.NextInt(clampRange(p.MinWidth, p.MaxWidth, boundsW))
	height := r.NextInt(clampRange(p.MinHeight, p.MaxHeight, boundsH))
	if width < 2 || height < 2 {
		return squareRoom(id, world.ShapeLShaped, x, y, boundsW, boundsH, fallbackSize)
	}

	// The cut never reaches the first row or column, so the L keeps both legs.
	cutX := max(1, r.NextInt(width*3/10, width*7/10))
	cutY := max(1, r.NextInt(height*3/10, height*7/10))

	var cells []geometry.Point
	for dx := 0; dx < width; dx++ {
		for dy := 0; dy < height; dy++ {
			if dx >= cutX && dy >= cutY {
				continue
			}
			cells = append(cells, geometry.Point{X: x + dx, Y: y + dy})
		}
	}

	return &world.Room{
		ID:     id,
		Shape:  world.ShapeLShaped,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Center: meanCenter(cells),
		Cells:  cells,
	}
}

func (LShaped) ConnectionPoints(room *world.Room) []geometry.Point {
	return perimeter(room.Cells)
}

func (LShaped) ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point {
	return nearestPerimeter(room, target)
}
