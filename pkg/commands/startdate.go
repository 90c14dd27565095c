package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	"tableflip.dev/study45/pkg/runner/startdate"
	"tableflip.dev/study45/pkg/store"
)

func addStartDate(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	date := ""

	cmd := &cobra.Command{
		Use:   "start-date <YYYY-MM-DD>",
		Short: "set the challenge start date (resets progress)",
		Example: `
study45 start-date 2026-09-01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a date")
			}
			date = args[0]
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := dialRemote()
			defer r.Close()
			s := startdate.StartDate{
				Date:        date,
				Yes:         co.Yes,
				Persistence: p,
				Remote:      r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, co)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
