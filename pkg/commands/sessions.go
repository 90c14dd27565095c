package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	"tableflip.dev/study45/pkg/runner/sessions"
	"tableflip.dev/study45/pkg/store"
)

func addSessions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "show the recorded study sessions",
		Example: `
study45 sessions
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := sessions.Sessions{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
