package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	runner "tableflip.dev/study45/pkg/runner/export"
	"tableflip.dev/study45/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	file := ""
	report := false

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export progress as CSV or a formatted report",
		Example: `
study45 export
study45 export --file progress.csv
study45 export --report
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := runner.Export{
				File:        file,
				Report:      report,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Write to a file instead of stdout.")
	cmd.Flags().BoolVar(&report, "report", false, "Render the formatted report instead of CSV.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
