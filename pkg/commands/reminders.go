package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	"tableflip.dev/study45/pkg/runner/reminders"
	"tableflip.dev/study45/pkg/store"
)

func addReminders(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "toggle hourly reminder notifications",
		Example: `
study45 reminders
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := dialRemote()
			defer r.Close()
			s := reminders.Reminders{
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
