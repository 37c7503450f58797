// Package generator builds dungeon maps from Params. Each stage owns its own
// seeded random stream, so a run is fully determined by its parameters.
package generator

import (
	"fmt"
	"math"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/grid"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/template"
	"github.com/samdwyer/dungeongen/internal/world"
)

const (
	// Placement gives up after this many attempts per requested room.
	attemptsPerRoom = 10

	// Rooms stay this many cells clear of the map edge so they keep a wall.
	edgeMargin = 1
)

// RoomGenerator places non-overlapping rooms drawn from a weighted template
// registry.
type RoomGenerator struct {
	rand     *rng.Random
	registry *template.Registry
	params   map[world.Shape]template.Params
	themes   *gamedata.Themes
}

// NewRoomGenerator registers the built-in templates, sized by sizeVariation
// and weighted by specialChance. Entries in shapeWeights override the
// computed weights.
func NewRoomGenerator(seed rng.Seed, sizeVariation, specialChance float64, shapeWeights map[world.Shape]float64) *RoomGenerator {
	seed = seed.Resolve()
	g := &RoomGenerator{
		rand:     rng.New(seed),
		registry: template.NewRegistry(rng.New(seed)),
		params:   sizedParams(sizeVariation),
		themes:   gamedata.DefaultThemes(),
	}

	templates := template.Default()
	special := specialChance / float64(len(templates)-1)
	for _, t := range templates {
		weight := special
		if t.Shape() == world.ShapeRectangular {
			weight = 1 - specialChance
		}
		g.registry.Register(t, weight)
	}
	for shape, w := range shapeWeights {
		g.registry.SetWeight(shape, w)
	}
	return g
}

// sizedParams scales the size ranges of the plain shapes by v in [0, 1].
func sizedParams(v float64) map[world.Shape]template.Params {
	grow := func(base int, factor float64) int {
		return base + int(math.Floor(v*factor))
	}
	rect := template.Params{
		MinWidth: grow(3, 2), MaxWidth: grow(8, 7),
		MinHeight: grow(3, 2), MaxHeight: grow(8, 7),
	}
	circle := template.Params{MinRadius: grow(3, 1), MaxRadius: grow(6, 3)}
	lshape := template.Params{
		MinWidth: grow(5, 2), MaxWidth: grow(10, 5),
		MinHeight: grow(5, 2), MaxHeight: grow(10, 5),
	}
	cave := rect.Merge(circle)

	return map[world.Shape]template.Params{
		world.ShapeRectangular: rect,
		world.ShapeCircular:    circle,
		world.ShapeLShaped:     lshape,
		world.ShapeCave:        cave,
	}
}

// Registry exposes the template registry for custom shapes.
func (g *RoomGenerator) Registry() *template.Registry { return g.registry }

// Register adds a custom template with its weight and size parameters.
func (g *RoomGenerator) Register(t template.Template, weight float64, params template.Params) {
	g.registry.Register(t, weight)
	g.params[t.Shape()] = params
}

// Reset rewinds both random streams.
func (g *RoomGenerator) Reset() {
	g.rand.Reset()
	g.registry.Reset()
}

func (g *RoomGenerator) paramsFor(t template.Template) template.Params {
	if p, ok := g.params[t.Shape()]; ok {
		return p
	}
	return t.DefaultParams()
}

// GenerateRooms tries to place count rooms on a width×height map. Fewer rooms
// are returned when attempts run out. The only error is an empty registry.
func (g *RoomGenerator) GenerateRooms(width, height, count int, density float64) ([]*world.Room, error) {
	var rooms []*world.Room
	occupied := grid.New(width, height, false)
	buffer := max(1, int(math.Ceil(1.5-density)))

	for attempt := 0; len(rooms) < count && attempt < count*attemptsPerRoom; attempt++ {
		tmpl, err := g.registry.Select()
		if err != nil {
			return rooms, fmt.Errorf("select room template: %w", err)
		}
		params := g.paramsFor(tmpl)

		x, y := g.placement(width, height, tmpl, params, density)
		room := tmpl.Generate(len(rooms), x, y, width-edgeMargin-x, height-edgeMargin-y, g.rand, params)

		if !canPlace(room, occupied, buffer) {
			continue
		}
		for _, c := range room.Cells {
			occupied.Set(c.X, c.Y, true)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// placement draws an anchor inside the centered cluster area. Higher density
// shrinks the cluster and packs rooms tighter.
func (g *RoomGenerator) placement(width, height int, t template.Template, params template.Params, density float64) (int, int) {
	ew, eh := t.MaxExtent(params)
	axis := func(size, extent int) int {
		cluster := int(math.Floor(float64(size) * (1 - density*0.5)))
		lo := max(edgeMargin, (size-cluster)/2)
		hi := max(lo, min((size-cluster)/2+cluster-extent, size-edgeMargin-1))
		return g.rand.NextInt(lo, hi)
	}
	x := axis(width, ew)
	y := axis(height, eh)
	return x, y
}

// canPlace reports whether every cell of room lies inside the map margin with
// no occupied cell within buffer cells of it.
func canPlace(room *world.Room, occupied *grid.Grid[bool], buffer int) bool {
	if len(room.Cells) == 0 {
		return false
	}
	inner := geometry.Rect{
		X:      edgeMargin,
		Y:      edgeMargin,
		Width:  occupied.Width() - 2*edgeMargin,
		Height: occupied.Height() - 2*edgeMargin,
	}
	for _, c := range room.Cells {
		if !geometry.PointInRect(c.X, c.Y, inner) {
			return false
		}
		for dx := -buffer; dx <= buffer; dx++ {
			for dy := -buffer; dy <= buffer; dy++ {
				if occupied.At(c.X+dx, c.Y+dy) {
					return false
				}
			}
		}
	}
	return true
}

// GenerateRoomDescriptions gives every room a line from the theme table plus
// a clause describing its shape.
func (g *RoomGenerator) GenerateRoomDescriptions(rooms []*world.Room, theme string) {
	th := g.themes.Lookup(theme)
	if th == nil {
		return
	}
	for _, room := range rooms {
		room.Description = rng.Pick(g.rand, th.RoomDescriptions) + g.themes.ShapeClause(room.Shape)
	}
}

// ConnectionPoint returns where a corridor toward target should meet room,
// using the room's template, or the room center for unknown shapes.
func (g *RoomGenerator) ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point {
	if t, ok := g.registry.Template(room.Shape); ok {
		return t.ConnectionPoint(room, target)
	}
	return room.Center
}
