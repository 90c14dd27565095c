package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	timerui "tableflip.dev/study45/pkg/runner/timer"
	"tableflip.dev/study45/pkg/store"
)

func addTimer(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "run the interactive study timer",
		Example: `
study45 timer
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := timerui.Timer{
				Persistence: p,
				Remote:      dialRemote(),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
