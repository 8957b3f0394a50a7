package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "slotctl",
		Short:         "Inspect barber availability from a schedule file.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("file", "schedule.json", "schedule file (blocks and appointments)")
	root.PersistentFlags().String("tz", "", "IANA timezone; overrides the file's timezone")

	root.AddCommand(newSlotsCommand())
	root.AddCommand(newValidateCommand())
	return root
}

// loadFromFlags reads the schedule named by --file and resolves --tz.
func loadFromFlags(cmd *cobra.Command) (*schedule, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}
	tz, err := cmd.Flags().GetString("tz")
	if err != nil {
		return nil, err
	}
	return loadSchedule(path, tz)
}
