package generator

import (
	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/grid"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// DoorGenerator places doors where corridors enter rooms.
type DoorGenerator struct {
	rand         *rng.Random
	frequency    float64
	secretChance float64
}

// NewDoorGenerator creates a generator that tries a door at each corridor
// end with probability frequency, making it secret with probability
// secretChance.
func NewDoorGenerator(seed rng.Seed, frequency, secretChance float64) *DoorGenerator {
	return &DoorGenerator{
		rand:         rng.New(seed),
		frequency:    clamp01(frequency),
		secretChance: clamp01(secretChance),
	}
}

// Reset rewinds the random stream.
func (g *DoorGenerator) Reset() { g.rand.Reset() }

// PlaceDoors checks both ends of every corridor and stamps each door onto
// cells. A corridor gets at most two doors.
func (g *DoorGenerator) PlaceDoors(corridors []*world.Corridor, cells *grid.Grid[world.CellType]) []world.Door {
	var doors []world.Door
	for _, c := range corridors {
		n := len(c.Path)
		if n < 2 {
			continue
		}
		if d, ok := g.tryDoor(c.Path[0], c.Path[1], c.From, c.To, cells); ok {
			doors = append(doors, d)
		}
		if d, ok := g.tryDoor(c.Path[n-1], c.Path[n-2], c.To, c.From, cells); ok {
			doors = append(doors, d)
		}
	}
	return doors
}

// tryDoor places a door at at when at and its neighbor along the path
// straddle a floor and corridor boundary.
func (g *DoorGenerator) tryDoor(at, toward geometry.Point, room, other int, cells *grid.Grid[world.CellType]) (world.Door, bool) {
	if g.rand.NextFloat(0, 1) > g.frequency {
		return world.Door{}, false
	}
	if !isDoorway(cells.At(at.X, at.Y), cells.At(toward.X, toward.Y)) {
		return world.Door{}, false
	}

	kind := world.CellDoor
	if g.rand.NextFloat(0, 1) < g.secretChance {
		kind = world.CellSecretDoor
	}
	cells.Set(at.X, at.Y, kind)
	return world.Door{Position: at, Kind: kind, Connects: [2]int{room, other}}, true
}

func isDoorway(a, b world.CellType) bool {
	return (a == world.CellFloor && b == world.CellCorridor) ||
		(a == world.CellCorridor && b == world.CellFloor)
}
