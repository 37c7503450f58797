package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/generator"
	"github.com/samdwyer/dungeongen/internal/rng"
)

// paramOpts holds the flags shared by generate and view. Values only apply
// when their flag was set on the command line.
type paramOpts struct {
	preset        string
	config        string
	seed          string
	width         int
	height        int
	rooms         int
	density       float64
	variation     float64
	special       float64
	corridorWidth int
	loops         bool
	loopChance    float64
	features      float64
	theme         string
	style         string
	doors         float64
	secretDoors   float64
}

func (o *paramOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.preset, "preset", "p", "default", "start from a named preset")
	f.StringVarP(&o.config, "config", "c", "", "TOML file overriding the preset")
	f.StringVarP(&o.seed, "seed", "s", "", "seed, as a number or any string (random when empty)")
	f.IntVar(&o.width, "width", 0, "map width in cells")
	f.IntVar(&o.height, "height", 0, "map height in cells")
	f.IntVarP(&o.rooms, "rooms", "n", 0, "number of rooms to attempt")
	f.Float64Var(&o.density, "density", 0, "room density from 0 to 1")
	f.Float64Var(&o.variation, "size-variation", 0, "room size variation from 0 to 1")
	f.Float64Var(&o.special, "special", 0, "chance of a non-rectangular room")
	f.IntVar(&o.corridorWidth, "corridor-width", 0, "corridor width from 1 to 3")
	f.BoolVar(&o.loops, "loops", false, "add extra corridors that form loops")
	f.Float64Var(&o.loopChance, "loop-chance", 0, "chance of keeping each extra corridor")
	f.Float64Var(&o.features, "features", 0, "feature density from 0 to 1")
	f.StringVarP(&o.theme, "theme", "t", "", "theme: "+strings.Join(gamedata.DefaultThemes().IDs(), ", "))
	f.StringVar(&o.style, "style", "", "hallway style: straight, bendy or organic")
	f.Float64Var(&o.doors, "doors", 0, "chance of a door at each corridor end")
	f.Float64Var(&o.secretDoors, "secret-doors", 0, "chance a door is secret")
}

// resolve builds generator parameters from the preset, then the config file,
// then any flags that were set.
func (o *paramOpts) resolve(cmd *cobra.Command) (generator.Params, error) {
	p, err := generator.Preset(o.preset)
	if err != nil {
		return p, err
	}
	if o.config != "" {
		if p, err = generator.LoadParams(o.config, p); err != nil {
			return p, fmt.Errorf("load config: %w", err)
		}
	}

	set := cmd.Flags().Changed
	if set("seed") {
		p.Seed = rng.ParseSeed(o.seed)
	}
	if set("width") {
		p.Width = o.width
	}
	if set("height") {
		p.Height = o.height
	}
	if set("rooms") {
		p.NumRooms = o.rooms
	}
	if set("density") {
		p.RoomDensity = o.density
	}
	if set("size-variation") {
		p.RoomSizeVariation = o.variation
	}
	if set("special") {
		p.SpecialRoomChance = o.special
	}
	if set("corridor-width") {
		p.CorridorWidth = o.corridorWidth
	}
	if set("loops") {
		p.CreateLoops = o.loops
	}
	if set("loop-chance") {
		p.LoopChance = o.loopChance
	}
	if set("features") {
		p.FeatureDensity = o.features
	}
	if set("theme") {
		p.Theme = o.theme
	}
	if set("style") {
		p.HallwayStyle = generator.HallwayStyle(o.style)
	}
	if set("doors") {
		p.DoorFrequency = o.doors
	}
	if set("secret-doors") {
		p.SecretDoorChance = o.secretDoors
	}
	return p.Normalize(), nil
}
