package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	"tableflip.dev/study45/pkg/runner/complete"
	"tableflip.dev/study45/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"done"},
		Short:   "mark today as complete",
		Example: `
study45 complete
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := dialRemote()
			defer r.Close()
			s := complete.Complete{
				Persistence: p,
				Remote:      r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
