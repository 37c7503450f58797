package template

import (
	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Cross produces a square hall with four arms.
type Cross struct{}

func (Cross) Shape() world.Shape { return world.ShapeCross }
func (Cross) Name() string       { return "Cross-Shaped Room" }

func (Cross) DefaultParams() Params {
	return Params{
		MinCenterSize: 5, MaxCenterSize: 9,
		MinArmThickness: 3, MaxArmThickness: 5,
		MinArmLength: 3, MaxArmLength: 8,
		SafetyMargin: 2,
	}
}

func (t Cross) MaxExtent(params Params) (int, int) {
	p := t.DefaultParams().Merge(params)
	size := oddUp(p.MaxCenterSize) + 2*p.MaxArmLength + 2*p.SafetyMargin
	return size, size
}

func (t Cross) Generate(id, x, y, boundsW, boundsH int, r *rng.Random, params Params) *world.Room {
	p := t.DefaultParams().Merge(params)

	center := oddUp(r.NextInt(p.MinCenterSize, p.MaxCenterSize))
	thickness := min(center, oddUp(r.NextInt(p.MinArmThickness, p.MaxArmThickness)))

	minViable := center + 2*p.MinArmLength
	if minViable > boundsW || minViable > boundsH {
		return squareRoom(id, world.ShapeCross, x, y, boundsW, boundsH, fallbackSize)
	}

	maxArm := min(p.MaxArmLength, (min(boundsW, boundsH)-center-2*p.SafetyMargin)/2)
	if maxArm < p.MinArmLength {
		return squareRoom(id, world.ShapeCross, x, y, boundsW, boundsH, fallbackSize)
	}
	arm := r.NextInt(p.MinArmLength, maxArm)
	total := center + 2*arm

	place := func(origin, bound int) int {
		avail := bound - total - 2*p.SafetyMargin
		if avail <= 0 {
			return origin + (bound-total)/2
		}
		return origin + p.SafetyMargin + r.NextInt(0, avail)
	}
	sx := place(x, boundsW)
	sy := place(y, boundsH)

	area := geometry.Rect{X: x, Y: y, Width: boundsW, Height: boundsH}
	var cells []geometry.Point
	seen := make(map[geometry.Point]bool)
	add := func(rx, ry, w, h int) {
		for dx := 0; dx < w; dx++ {
			for dy := 0; dy < h; dy++ {
				c := geometry.Point{X: rx + dx, Y: ry + dy}
				if !seen[c] && geometry.PointInRect(c.X, c.Y, area) {
					seen[c] = true
					cells = append(cells, c)
				}
			}
		}
	}

	hub := sx + arm
	hubY := sy + arm
	offset := (center - thickness) / 2
	add(hub, hubY, center, center)
	add(hub+offset, sy, thickness, arm)          // north
	add(hub+center, hubY+offset, arm, thickness) // east
	add(hub+offset, hubY+center, thickness, arm) // south
	add(sx, hubY+offset, arm, thickness)         // west

	room := &world.Room{
		ID:     id,
		Shape:  world.ShapeCross,
		X:      sx,
		Y:      sy,
		Width:  total,
		Height: total,
		Center: geometry.Point{X: hub + center/2, Y: hubY + center/2},
		Cells:  cells,
	}
	for _, c := range perimeter(cells) {
		room.Border = append(room.Border, c.Vec())
	}
	return room
}

func (Cross) ConnectionPoints(room *world.Room) []geometry.Point {
	return perimeter(room.Cells)
}

func (Cross) ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point {
	return nearestPerimeter(room, target)
}

func oddUp(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}
