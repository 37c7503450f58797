package cli

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/viewer"
)

func newViewCmd() *cobra.Command {
	var opts paramOpts

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse dungeons in the terminal",
		Long:  `Opens an interactive viewer. Arrow keys scroll, r generates a new dungeon with a fresh seed, l toggles the legend and q quits.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			v, closeScreen, err := viewer.New(p)
			if err != nil {
				return err
			}
			defer closeScreen()
			return v.Run(cmd.Context())
		},
	}

	opts.register(cmd)
	return cmd
}
