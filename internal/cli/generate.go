package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/generator"
	"github.com/samdwyer/dungeongen/internal/ui"
	"github.com/samdwyer/dungeongen/internal/world"
)

type generateOpts struct {
	paramOpts
	output   string // write the plain map here instead of stdout
	color    bool   // color the map printed to stdout
	legend   bool   // list the cell kinds after the map
	describe bool   // print every room's description
	summary  bool   // print the run summary
}

func newGenerateCmd() *cobra.Command {
	opts := generateOpts{summary: true}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dungeon and print it",
		Example: `  dungeongen generate --seed abc --width 30 --height 30 --rooms 5
  dungeongen generate --preset cave --legend
  dungeongen generate --config dungeon.toml -o map.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, p, opts)
		},
	}

	opts.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "write the map to a file")
	f.BoolVar(&opts.color, "color", false, "color the map")
	f.BoolVar(&opts.legend, "legend", false, "list the cell kinds on the map")
	f.BoolVar(&opts.describe, "describe", false, "print room descriptions")
	f.BoolVar(&opts.summary, "summary", true, "print a summary of the dungeon")
	return cmd
}

func runGenerate(cmd *cobra.Command, p generator.Params, opts generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()
	palette := gamedata.DefaultPalette()

	prog := newProgress(logger)
	d, err := generator.New(p).Generate(ctx)
	if err != nil {
		return err
	}
	prog.done("Generated dungeon", "seed", d.Seed, "rooms", len(d.Rooms))

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(ui.ASCII(d, palette)), 0o644); err != nil {
			return fmt.Errorf("write map: %w", err)
		}
	} else if opts.color {
		fmt.Fprint(out, ui.Colored(d, palette))
	} else {
		fmt.Fprint(out, ui.ASCII(d, palette))
	}

	if opts.legend {
		printLegend(out, d, palette)
	}
	if opts.describe {
		printRooms(out, d)
	}
	if opts.summary {
		printSummary(out, d)
	}
	if opts.output != "" {
		printSuccess(out, "Wrote map")
		printFile(out, opts.output)
	}
	return nil
}

func printSummary(w io.Writer, d *world.Dungeon) {
	fmt.Fprintln(w)
	printTitle(w, "Dungeon")
	printKeyValue(w, "seed", d.Seed.String())
	printKeyValue(w, "size", fmt.Sprintf("%dx%d", d.Width, d.Height))
	printKeyValue(w, "theme", d.Theme)
	printKeyNumber(w, "rooms", len(d.Rooms))
	printKeyNumber(w, "corridors", len(d.Corridors))
	printKeyNumber(w, "doors", len(d.Doors))
	printKeyNumber(w, "features", len(d.Features))
	if d.Entrance != nil {
		printKeyValue(w, "entrance", fmt.Sprintf("(%d,%d) room %d", d.Entrance.Position.X, d.Entrance.Position.Y, d.Entrance.RoomID))
		printKeyValue(w, "exit", fmt.Sprintf("(%d,%d) room %d", d.Exit.Position.X, d.Exit.Position.Y, d.Exit.RoomID))
	}
}

func printLegend(w io.Writer, d *world.Dungeon, palette gamedata.Palette) {
	fmt.Fprintln(w)
	printTitle(w, "Legend")
	for _, kind := range ui.Legend(d) {
		printKeyValue(w, string(palette.Style(kind).Glyph), kind.String())
	}
}

func printRooms(w io.Writer, d *world.Dungeon) {
	fmt.Fprintln(w)
	printTitle(w, "Rooms")
	for _, room := range d.Rooms {
		printKeyValue(w, fmt.Sprintf("#%d %s", room.ID, room.Shape), room.Description)
		for _, f := range room.Features {
			printDetail(w, "%s at (%d,%d): %s", f.Kind, f.Position.X, f.Position.Y, f.Description)
		}
	}
}
