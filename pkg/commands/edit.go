package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	"tableflip.dev/study45/pkg/runner/edit"
	"tableflip.dev/study45/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	hours := ""

	cmd := &cobra.Command{
		Use:   "edit <hours>",
		Short: "set a day's studied hours directly",
		Example: `
study45 edit 6.5
study45 edit --day 12 8
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an hour value")
			}
			hours = args[0]
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := dialRemote()
			defer r.Close()
			s := edit.Edit{
				Day:         do.Day,
				Hours:       hours,
				Persistence: p,
				Remote:      r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArg(cmd, do)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
