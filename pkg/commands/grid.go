package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	"tableflip.dev/study45/pkg/runner/grid"
	"tableflip.dev/study45/pkg/store"
)

func addGrid(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "grid",
		Aliases: []string{"days"},
		Short:   "show the day-by-day grid for the whole window",
		Example: `
study45 grid
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := grid.Grid{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
