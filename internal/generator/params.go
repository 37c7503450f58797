package generator

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// HallwayStyle selects how corridor paths are drawn between rooms.
type HallwayStyle string

const (
	HallwayStraight HallwayStyle = "straight"
	HallwayBendy    HallwayStyle = "bendy"
	HallwayOrganic  HallwayStyle = "organic"
)

const (
	MinDimension = 10

	// Each room needs roughly this many cells of map area.
	cellsPerRoom = 25

	minCorridorWidth = 1
	maxCorridorWidth = 3
)

// ErrUnknownPreset is returned by Preset for names with no built-in table.
var ErrUnknownPreset = errors.New("unknown preset")

// Params controls a generation run. Out-of-range values are clamped by
// Normalize rather than rejected.
type Params struct {
	Width             int                     `toml:"width"`
	Height            int                     `toml:"height"`
	NumRooms          int                     `toml:"num_rooms"`
	RoomDensity       float64                 `toml:"room_density"`
	RoomSizeVariation float64                 `toml:"room_size_variation"`
	SpecialRoomChance float64                 `toml:"special_room_chance"`
	CorridorWidth     int                     `toml:"corridor_width"`
	CreateLoops       bool                    `toml:"create_loops"`
	LoopChance        float64                 `toml:"loop_chance"`
	FeatureDensity    float64                 `toml:"feature_density"`
	Theme             string                  `toml:"theme"`
	Seed              rng.Seed                `toml:"seed"`
	HallwayStyle      HallwayStyle            `toml:"hallway_style"`
	DoorFrequency     float64                 `toml:"door_frequency"`
	SecretDoorChance  float64                 `toml:"secret_door_chance"`
	ShapeWeights      map[world.Shape]float64 `toml:"shape_weights"`
}

// DefaultParams returns the parameters of the default preset.
func DefaultParams() Params {
	return Params{
		Width:             50,
		Height:            50,
		NumRooms:          15,
		RoomDensity:       0.8,
		RoomSizeVariation: 0.5,
		SpecialRoomChance: 0.2,
		CorridorWidth:     1,
		CreateLoops:       false,
		LoopChance:        0,
		FeatureDensity:    0.5,
		Theme:             gamedata.DefaultTheme,
		HallwayStyle:      HallwayBendy,
		DoorFrequency:     0.8,
		SecretDoorChance:  0.1,
	}
}

// Normalize clamps every field into its valid range.
func (p Params) Normalize() Params {
	p.Width = max(MinDimension, p.Width)
	p.Height = max(MinDimension, p.Height)

	maxRooms := p.Width * p.Height / cellsPerRoom
	p.NumRooms = min(maxRooms, max(1, p.NumRooms))

	p.RoomDensity = clamp01(p.RoomDensity)
	p.RoomSizeVariation = clamp01(p.RoomSizeVariation)
	p.SpecialRoomChance = clamp01(p.SpecialRoomChance)
	p.LoopChance = clamp01(p.LoopChance)
	p.FeatureDensity = clamp01(p.FeatureDensity)
	p.DoorFrequency = clamp01(p.DoorFrequency)
	p.SecretDoorChance = clamp01(p.SecretDoorChance)

	p.CorridorWidth = max(minCorridorWidth, min(maxCorridorWidth, p.CorridorWidth))

	p.HallwayStyle = HallwayStyle(strings.ToLower(string(p.HallwayStyle)))
	if p.Theme == "" {
		p.Theme = gamedata.DefaultTheme
	}

	if p.ShapeWeights != nil {
		weights := make(map[world.Shape]float64, len(p.ShapeWeights))
		for shape, w := range p.ShapeWeights {
			weights[shape] = max(0, w)
		}
		p.ShapeWeights = weights
	}
	return p
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}

//go:embed presets.toml
var presetsTOML string

type presetTable struct {
	names  []string
	tables map[string]toml.Primitive
	meta   toml.MetaData
}

func loadPresets() (*presetTable, error) {
	var tables map[string]toml.Primitive
	meta, err := toml.Decode(presetsTOML, &tables)
	if err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	t := &presetTable{tables: tables, meta: meta}
	for _, key := range meta.Keys() {
		if len(key) == 1 {
			t.names = append(t.names, key[0])
		}
	}
	return t, nil
}

// Presets lists the built-in preset names in the order they are defined.
func Presets() []string {
	t, err := loadPresets()
	if err != nil {
		return nil
	}
	return t.names
}

// Preset returns the named built-in parameters.
func Preset(name string) (Params, error) {
	t, err := loadPresets()
	if err != nil {
		return Params{}, err
	}
	prim, ok := t.tables[name]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	p := DefaultParams()
	if err := t.meta.PrimitiveDecode(prim, &p); err != nil {
		return Params{}, fmt.Errorf("decode preset %q: %w", name, err)
	}
	return p, nil
}

// LoadParams reads a TOML parameter file laid over base. Keys that do not map
// to a parameter are reported as an error.
func LoadParams(path string, base Params) (Params, error) {
	p := base
	p.ShapeWeights = maps.Clone(base.ShapeWeights)
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Params{}, fmt.Errorf("load params %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Params{}, fmt.Errorf("load params %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return p, nil
}
