// Package template defines pluggable room shapes and the weighted registry the
// room generator draws them from.
//
// A Template turns an anchor and a bounding area into a complete room
// footprint. Every room a template returns lies inside the area it was given;
// shapes that cannot fit fall back to a small centered square.
package template

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// fallbackSize is the largest side of the square used when a shape does not fit.
const fallbackSize = 5

// Template generates rooms of one shape.
type Template interface {
	Shape() world.Shape
	Name() string

	// Generate builds a room anchored at (x, y) whose cells all lie within
	// [x, x+boundsW) × [y, y+boundsH). params overlay DefaultParams.
	Generate(id, x, y, boundsW, boundsH int, r *rng.Random, params Params) *world.Room

	// ConnectionPoints returns the room cells a corridor may attach to.
	ConnectionPoints(room *world.Room) []geometry.Point

	// ConnectionPoint returns the boundary point nearest to target.
	ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point

	DefaultParams() Params

	// MaxExtent is the bounding box of the largest room params can produce.
	MaxExtent(params Params) (w, h int)
}

// Params holds the size ranges of every shape. A template reads only the
// fields that concern it. Zero fields are treated as unset by Merge.
type Params struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
	MinRadius, MaxRadius int

	// Star
	MinScale, MaxScale             int
	ForceEvenScale                 bool
	GlobalScaleMin, GlobalScaleMax float64

	// Cross
	MinCenterSize, MaxCenterSize     int
	MinArmThickness, MaxArmThickness int
	MinArmLength, MaxArmLength       int
	SafetyMargin                     int

	// Octagon
	MinSide, MaxSide int

	// North star
	MinOuterRadius, MaxOuterRadius int
	InnerRatio                     float64

	RotationOffset float64

	// Cave
	CaveIterations   int
	CaveCircleChance float64
}

// Merge returns p with every non-zero field of o laid over it.
func (p Params) Merge(o Params) Params {
	p.MinWidth = overlay(p.MinWidth, o.MinWidth)
	p.MaxWidth = overlay(p.MaxWidth, o.MaxWidth)
	p.MinHeight = overlay(p.MinHeight, o.MinHeight)
	p.MaxHeight = overlay(p.MaxHeight, o.MaxHeight)
	p.MinRadius = overlay(p.MinRadius, o.MinRadius)
	p.MaxRadius = overlay(p.MaxRadius, o.MaxRadius)

	p.MinScale = overlay(p.MinScale, o.MinScale)
	p.MaxScale = overlay(p.MaxScale, o.MaxScale)
	p.ForceEvenScale = p.ForceEvenScale || o.ForceEvenScale
	p.GlobalScaleMin = overlay(p.GlobalScaleMin, o.GlobalScaleMin)
	p.GlobalScaleMax = overlay(p.GlobalScaleMax, o.GlobalScaleMax)

	p.MinCenterSize = overlay(p.MinCenterSize, o.MinCenterSize)
	p.MaxCenterSize = overlay(p.MaxCenterSize, o.MaxCenterSize)
	p.MinArmThickness = overlay(p.MinArmThickness, o.MinArmThickness)
	p.MaxArmThickness = overlay(p.MaxArmThickness, o.MaxArmThickness)
	p.MinArmLength = overlay(p.MinArmLength, o.MinArmLength)
	p.MaxArmLength = overlay(p.MaxArmLength, o.MaxArmLength)
	p.SafetyMargin = overlay(p.SafetyMargin, o.SafetyMargin)

	p.MinSide = overlay(p.MinSide, o.MinSide)
	p.MaxSide = overlay(p.MaxSide, o.MaxSide)

	p.MinOuterRadius = overlay(p.MinOuterRadius, o.MinOuterRadius)
	p.MaxOuterRadius = overlay(p.MaxOuterRadius, o.MaxOuterRadius)
	p.InnerRatio = overlay(p.InnerRatio, o.InnerRatio)

	p.RotationOffset = overlay(p.RotationOffset, o.RotationOffset)

	p.CaveIterations = overlay(p.CaveIterations, o.CaveIterations)
	p.CaveCircleChance = overlay(p.CaveCircleChance, o.CaveCircleChance)
	return p
}

func overlay[T int | float64](base, over T) T {
	if over != 0 {
		return over
	}
	return base
}

// Default returns the built-in templates in registration order.
func Default() []Template {
	return []Template{
		Rectangular{},
		Circular{},
		LShaped{},
		Cave{},
		Star{},
		Cross{},
		Octagon{},
		NorthStar{},
	}
}

// rectCells lists the cells of a w×h rectangle column by column.
func rectCells(x, y, w, h int) []geometry.Point {
	cells := make([]geometry.Point, 0, max(0, w*h))
	for dx := 0; dx < w; dx++ {
		for dy := 0; dy < h; dy++ {
			cells = append(cells, geometry.Point{X: x + dx, Y: y + dy})
		}
	}
	return cells
}

// squareRoom is the fallback for shapes that cannot fit their area: a square
// of side min(size, boundsW, boundsH) centered in it.
func squareRoom(id int, shape world.Shape, x, y, boundsW, boundsH, size int) *world.Room {
	size = max(1, min(size, boundsW, boundsH))
	sx := x + (boundsW-size)/2
	sy := y + (boundsH-size)/2
	return &world.Room{
		ID:     id,
		Shape:  shape,
		X:      sx,
		Y:      sy,
		Width:  size,
		Height: size,
		Center: geometry.Point{X: sx + size/2, Y: sy + size/2},
		Cells:  rectCells(sx, sy, size, size),
	}
}

// polygonRoom fills the polygon over the w×h box anchored at (x, y).
func polygonRoom(id int, shape world.Shape, x, y, w, h int, center geometry.Point, vertices []geometry.Vec) *world.Room {
	var cells []geometry.Point
	for dx := 0; dx < w; dx++ {
		for dy := 0; dy < h; dy++ {
			p := geometry.Point{X: x + dx, Y: y + dy}
			if geometry.PointInPolygon(p.Vec(), vertices) {
				cells = append(cells, p)
			}
		}
	}
	return &world.Room{
		ID:     id,
		Shape:  shape,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Center: center,
		Cells:  cells,
		Border: vertices,
	}
}

var orthogonal = [4]geometry.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// perimeter returns the cells with at least one orthogonal neighbor outside
// the set, in the order they appear in cells.
func perimeter(cells []geometry.Point) []geometry.Point {
	set := mapset.New[geometry.Point]()
	for _, c := range cells {
		set.Put(c)
	}

	var out []geometry.Point
	for _, c := range cells {
		for _, d := range orthogonal {
			if !set.Has(c.Add(d)) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// nearest returns the first cell closest to target.
func nearest(cells []geometry.Point, target geometry.Vec) (geometry.Point, bool) {
	if len(cells) == 0 {
		return geometry.Point{}, false
	}
	best := cells[0]
	bestDist := math.Inf(1)
	for _, c := range cells {
		if d := geometry.Distance(float64(c.X), float64(c.Y), target.X, target.Y); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}

// nearestPerimeter is the connection rule shared by most shapes.
func nearestPerimeter(room *world.Room, target geometry.Point) geometry.Point {
	if p, ok := nearest(perimeter(room.Cells), target.Vec()); ok {
		return p
	}
	return room.Center
}

// nearestToVertex picks the border vertex closest to target, then the room
// cell closest to that vertex.
func nearestToVertex(room *world.Room, target geometry.Point) geometry.Point {
	if len(room.Border) == 0 {
		return nearestPerimeter(room, target)
	}
	vertex := room.Border[0]
	best := math.Inf(1)
	for _, v := range room.Border {
		if d := geometry.Distance(v.X, v.Y, float64(target.X), float64(target.Y)); d < best {
			vertex, best = v, d
		}
	}
	if p, ok := nearest(room.Cells, vertex); ok {
		return p
	}
	return room.Center
}

// cellBounds returns the bounding box of cells.
func cellBounds(cells []geometry.Point) geometry.Rect {
	if len(cells) == 0 {
		return geometry.Rect{}
	}
	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := minX, minY
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return geometry.Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}

// meanCenter is the floored average of cells.
func meanCenter(cells []geometry.Point) geometry.Point {
	if len(cells) == 0 {
		return geometry.Point{}
	}
	sx, sy := 0, 0
	for _, c := range cells {
		sx += c.X
		sy += c.Y
	}
	n := float64(len(cells))
	return geometry.Point{
		X: int(math.Floor(float64(sx) / n)),
		Y: int(math.Floor(float64(sy) / n)),
	}
}

// clampRange narrows [lo, hi] so hi never exceeds limit and lo never exceeds hi.
func clampRange(lo, hi, limit int) (int, int) {
	hi = min(hi, limit)
	lo = min(lo, hi)
	return lo, hi
}
