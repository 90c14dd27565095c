package options

import "github.com/spf13/cobra"

// DayOptions selects a day inside the challenge window. Day is one-based on
// the command surface; zero targets today.
type DayOptions struct {
	Day int
}

// AddDayArg wires the day selection flag on the provided command.
func AddDayArg(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().IntVarP(&o.Day, "day", "d", 0,
		"Day number to target (1-45). Defaults to today.")
}

// ConfirmOptions skips interactive confirmation prompts.
type ConfirmOptions struct {
	Yes bool
}

// AddYesArg wires the confirmation-skip flag on the provided command.
func AddYesArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}
