package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study45/pkg/commands/options"
	"tableflip.dev/study45/pkg/runner/forest"
	"tableflip.dev/study45/pkg/store"
)

func addForest(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	deleteID := ""
	showID := false

	cmd := &cobra.Command{
		Use:   "forest",
		Short: "show the forest of planted trees",
		Example: `
study45 forest
study45 forest --id
study45 forest --delete <tree id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := dialRemote()
			defer r.Close()
			s := forest.Forest{
				Delete:      deleteID,
				Yes:         co.Yes,
				ShowID:      showID || deleteID != "",
				Persistence: p,
				Remote:      r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&deleteID, "delete", "", "Delete the tree with this ID.")
	cmd.Flags().BoolVar(&showID, "id", false, "Show tree IDs.")
	options.AddYesArg(cmd, co)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
