package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeongen/internal/grid"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/world"
)

// DungeonGenerator runs the full pipeline: rooms, descriptions, corridors,
// rasterization, doors, features, then entrance and exit.
type DungeonGenerator struct {
	params Params
	seed   rng.Seed
	cells  *grid.Grid[world.CellType]

	rooms     *RoomGenerator
	corridors *CorridorGenerator
	doors     *DoorGenerator
	features  *FeatureGenerator
}

// New normalizes params and seeds every stage from one resolved seed. An
// absent seed is drawn from ambient entropy once, here.
func New(params Params) *DungeonGenerator {
	p := params.Normalize()
	seed := p.Seed.Resolve()
	p.Seed = seed

	return &DungeonGenerator{
		params:    p,
		seed:      seed,
		cells:     grid.New(p.Width, p.Height, world.CellEmpty),
		rooms:     NewRoomGenerator(seed, p.RoomSizeVariation, p.SpecialRoomChance, p.ShapeWeights),
		corridors: NewCorridorGenerator(seed, p.CorridorWidth, p.CreateLoops, p.LoopChance, p.HallwayStyle),
		doors:     NewDoorGenerator(seed, p.DoorFrequency, p.SecretDoorChance),
		features:  NewFeatureGenerator(seed, p.FeatureDensity, p.Theme),
	}
}

// Params returns the normalized parameters, with the seed resolved.
func (g *DungeonGenerator) Params() Params { return g.params }

// Seed returns the seed every stage was created from.
func (g *DungeonGenerator) Seed() rng.Seed { return g.seed }

// Rooms exposes the room stage, mainly for registering custom templates.
func (g *DungeonGenerator) Rooms() *RoomGenerator { return g.rooms }

// Generate builds a dungeon. Every call rewinds the random streams first, so
// repeated calls return identical maps. The returned value shares nothing
// mutable with the generator.
func (g *DungeonGenerator) Generate(ctx context.Context) (*world.Dungeon, error) {
	tracer := telemetry.Tracer("generator")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	runID := uuid.NewString()
	logger := log.FromContext(ctx).With("run", runID)
	p := g.params

	span.SetAttributes(
		attribute.String("dungeon.run_id", runID),
		attribute.String("dungeon.seed", g.seed.String()),
		attribute.String("dungeon.theme", p.Theme),
		attribute.String("dungeon.hallway_style", string(p.HallwayStyle)),
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.requested_rooms", p.NumRooms),
	)

	g.reset()

	var rooms []*world.Room
	err := stage(ctx, tracer, "dungeon.rooms", func(span trace.Span) error {
		var err error
		rooms, err = g.rooms.GenerateRooms(p.Width, p.Height, p.NumRooms, p.RoomDensity)
		if err != nil {
			return err
		}
		g.rooms.GenerateRoomDescriptions(rooms, p.Theme)
		span.SetAttributes(attribute.Int("dungeon.room_count", len(rooms)))
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("generate rooms: %w", err)
	}
	logger.Debug("placed rooms", "requested", p.NumRooms, "placed", len(rooms))

	var corridors []*world.Corridor
	_ = stage(ctx, tracer, "dungeon.corridors", func(span trace.Span) error {
		corridors = g.corridors.GenerateCorridors(rooms, p.Width, p.Height, g.rooms)
		span.SetAttributes(attribute.Int("dungeon.corridor_count", len(corridors)))
		return nil
	})
	logger.Debug("routed corridors", "count", len(corridors), "style", p.HallwayStyle)

	_ = stage(ctx, tracer, "dungeon.rasterize", func(trace.Span) error {
		g.rasterize(rooms, corridors)
		return nil
	})

	var doors []world.Door
	_ = stage(ctx, tracer, "dungeon.doors", func(span trace.Span) error {
		doors = g.doors.PlaceDoors(corridors, g.cells)
		span.SetAttributes(attribute.Int("dungeon.door_count", len(doors)))
		return nil
	})

	var features []world.Feature
	var entrance, exit *world.Marker
	_ = stage(ctx, tracer, "dungeon.features", func(span trace.Span) error {
		features = g.features.GenerateFeatures(rooms, g.cells)
		entrance, exit = g.features.PlaceEntranceAndExit(rooms, g.cells)
		span.SetAttributes(
			attribute.Int("dungeon.feature_count", len(features)),
			attribute.Bool("dungeon.has_entrance", entrance != nil),
		)
		return nil
	})
	logger.Debug("dressed rooms", "doors", len(doors), "features", len(features))

	d := &world.Dungeon{
		Width:     p.Width,
		Height:    p.Height,
		Grid:      g.cells.Clone(),
		Rooms:     rooms,
		Corridors: corridors,
		Doors:     doors,
		Features:  features,
		Entrance:  entrance,
		Exit:      exit,
		Seed:      g.seed,
		Theme:     p.Theme,
	}

	span.SetAttributes(attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()))
	return d, nil
}

// stage runs fn inside a child span.
func stage(ctx context.Context, tracer trace.Tracer, name string, fn func(trace.Span) error) error {
	_, span := tracer.Start(ctx, name)
	defer span.End()

	if err := fn(span); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (g *DungeonGenerator) reset() {
	g.rooms.Reset()
	g.corridors.Reset()
	g.doors.Reset()
	g.features.Reset()
}

// rasterize paints walls everywhere, then room floors, then corridors.
// Corridors never cover room floor, so every room edge a corridor reaches
// stays a floor to corridor boundary.
func (g *DungeonGenerator) rasterize(rooms []*world.Room, corridors []*world.Corridor) {
	g.cells.Fill(world.CellWall)

	for _, room := range rooms {
		for _, c := range room.Cells {
			g.cells.Set(c.X, c.Y, world.CellFloor)
		}
	}

	for _, corridor := range corridors {
		spread := widening[min(corridor.Width, len(widening)-1)]
		for _, pt := range corridor.Path {
			if v, ok := g.cells.Get(pt.X, pt.Y); ok && v != world.CellFloor {
				g.cells.Set(pt.X, pt.Y, world.CellCorridor)
			}
			for _, d := range spread {
				if g.cells.At(pt.X+d[0], pt.Y+d[1]) == world.CellWall {
					g.cells.Set(pt.X+d[0], pt.Y+d[1], world.CellCorridor)
				}
			}
		}
	}
}

// widening lists, per corridor width, the offsets carved beside each path cell.
var widening = [][][2]int{
	0: nil,
	1: nil,
	2: {{1, 0}, {0, 1}},
	3: {{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
}
