package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/study45/pkg/cloud"
	"tableflip.dev/study45/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "study45",
		Short: base.Wrap80("45-day study challenge tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTimer(topLevel)
	addStatus(topLevel)
	addGrid(topLevel)
	addEdit(topLevel)
	addComplete(topLevel)
	addReset(topLevel)
	addStartDate(topLevel)
	addReminders(topLevel)
	addForest(topLevel)
	addSessions(topLevel)
	addExport(topLevel)
	addSync(topLevel)
	addVersion(topLevel)
}

// dialRemote opens the cloud backend, degrading to a no-op remote when none
// is reachable. Callers own Close.
func dialRemote() cloud.Remote {
	r, err := cloud.Dial()
	if err != nil {
		return cloud.Nop()
	}
	return r
}
