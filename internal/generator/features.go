package generator

import (
	"math"
	"slices"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/grid"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Features keep this many cells of floor between each other.
const featureSpacing = 1

// FeatureGenerator dresses rooms with theme-weighted features and picks the
// entrance and exit.
type FeatureGenerator struct {
	rand    *rng.Random
	density float64
	theme   *gamedata.Theme
	flavor  *gamedata.FlavorText
}

// NewFeatureGenerator creates a generator for the named theme. Unknown themes
// use the standard table.
func NewFeatureGenerator(seed rng.Seed, density float64, theme string) *FeatureGenerator {
	return &FeatureGenerator{
		rand:    rng.New(seed),
		density: clamp01(density),
		theme:   gamedata.DefaultThemes().Lookup(theme),
		flavor:  gamedata.DefaultFlavorText(),
	}
}

// Reset rewinds the random stream.
func (g *FeatureGenerator) Reset() { g.rand.Reset() }

// GenerateFeatures places features on the floor of every room, stamping each
// onto cells as it goes and recording it on its room.
func (g *FeatureGenerator) GenerateFeatures(rooms []*world.Room, cells *grid.Grid[world.CellType]) []world.Feature {
	var all []world.Feature
	for _, room := range rooms {
		room.Features = g.roomFeatures(room, cells)
		all = append(all, room.Features...)
	}
	return all
}

func (g *FeatureGenerator) roomFeatures(room *world.Room, cells *grid.Grid[world.CellType]) []world.Feature {
	pool := floorCells(room, cells)
	if len(pool) == 0 {
		return nil
	}

	budget := max(1, int(math.Ceil(float64(len(pool))*g.density/10)))
	count := g.rand.NextInt(0, budget)

	var features []world.Feature
	for i := 0; i < count && len(pool) > 0; i++ {
		idx := g.rand.NextInt(0, len(pool)-1)
		at := pool[idx]
		pool = slices.Delete(pool, idx, idx+1)

		kind := g.selectKind()
		features = append(features, world.Feature{
			Position:    at,
			Kind:        kind,
			Description: g.describe(kind),
			RoomID:      room.ID,
		})
		cells.Set(at.X, at.Y, kind)

		pool = slices.DeleteFunc(pool, func(c geometry.Point) bool {
			return abs(c.X-at.X) <= featureSpacing && abs(c.Y-at.Y) <= featureSpacing
		})
	}
	return features
}

// selectKind samples the theme's weights cumulatively in table order.
// Rolls past the last weight land on a monster.
func (g *FeatureGenerator) selectKind() world.CellType {
	roll := g.rand.NextFloat(0, 1)
	if g.theme == nil {
		return world.CellMonster
	}
	cumulative := 0.0
	for _, fw := range g.theme.Features {
		cumulative += fw.Weight
		if roll <= cumulative {
			return fw.Kind
		}
	}
	return world.CellMonster
}

func (g *FeatureGenerator) describe(kind world.CellType) string {
	options := g.flavor.Options(kind)
	if len(options) == 0 {
		return g.flavor.Fallback
	}
	return rng.Pick(g.rand, options)
}

// PlaceEntranceAndExit puts the entrance and exit in the two rooms whose
// centers are farthest apart, the first such pair winning ties. Both are nil
// when there are fewer than two rooms or either room has no floor left.
func (g *FeatureGenerator) PlaceEntranceAndExit(rooms []*world.Room, cells *grid.Grid[world.CellType]) (entrance, exit *world.Marker) {
	if len(rooms) < 2 {
		return nil, nil
	}

	from, to := rooms[0], rooms[1]
	farthest := 0.0
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if d := geometry.PointDistance(rooms[i].Center, rooms[j].Center); d > farthest {
				farthest = d
				from, to = rooms[i], rooms[j]
			}
		}
	}

	fromCells := floorCells(from, cells)
	toCells := floorCells(to, cells)
	if len(fromCells) == 0 || len(toCells) == 0 {
		return nil, nil
	}

	in := rng.Pick(g.rand, fromCells)
	out := rng.Pick(g.rand, toCells)
	cells.Set(in.X, in.Y, world.CellEntrance)
	cells.Set(out.X, out.Y, world.CellExit)
	return &world.Marker{Position: in, RoomID: from.ID}, &world.Marker{Position: out, RoomID: to.ID}
}

// floorCells returns the room cells that are still plain floor.
func floorCells(room *world.Room, cells *grid.Grid[world.CellType]) []geometry.Point {
	var out []geometry.Point
	for _, c := range room.Cells {
		if cells.At(c.X, c.Y) == world.CellFloor {
			out = append(out, c)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
