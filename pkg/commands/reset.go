package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	"tableflip.dev/study45/pkg/runner/reset"
	"tableflip.dev/study45/pkg/store"
)

func addReset(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	today := false

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "reset the whole challenge, or just today",
		Example: `
study45 reset
study45 reset --today
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := dialRemote()
			defer r.Close()
			s := reset.Reset{
				Today:       today,
				Yes:         co.Yes,
				Persistence: p,
				Remote:      r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "Reset only today's timer.")
	options.AddYesArg(cmd, co)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
