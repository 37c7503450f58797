package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/generator"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printTitle(out, "Presets")
			for _, name := range generator.Presets() {
				p, err := generator.Preset(name)
				if err != nil {
					return err
				}
				printKeyValue(out, name, fmt.Sprintf("%dx%d, %d rooms, %s theme, %s halls",
					p.Width, p.Height, p.NumRooms, p.Theme, p.HallwayStyle))
			}
			return nil
		},
	}
}
