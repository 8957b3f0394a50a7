package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
)

func newValidateCommand() *cobra.Command {
	var (
		start    string
		duration int
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a booking would be accepted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadFromFlags(cmd)
			if err != nil {
				return err
			}

			at, err := time.ParseInLocation("2006-01-02 15:04", start, s.loc)
			if err != nil {
				return fmt.Errorf("invalid --start %q: %w", start, err)
			}

			if err := availability.ValidateSlot(s.blocks, at, duration, s.appointments); err != nil {
				return fmt.Errorf("rejected: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", `proposed start, "YYYY-MM-DD HH:mm"`)
	cmd.Flags().IntVar(&duration, "duration", 30, "service duration in minutes")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
