package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	"tableflip.dev/study45/pkg/runner/status"
	"tableflip.dev/study45/pkg/store"
)

func addStatus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"summary", "today"},
		Short:   "show today's progress and the challenge summary",
		Example: `
study45 status
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := status.Status{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
