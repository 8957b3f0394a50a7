package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
)

func newSlotsCommand() *cobra.Command {
	var (
		date     string
		duration int
		nowFlag  string
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List bookable start times for one day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadFromFlags(cmd)
			if err != nil {
				return err
			}

			day, err := time.ParseInLocation("2006-01-02", date, s.loc)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
			}

			now := time.Now().In(s.loc)
			if nowFlag != "" {
				if now, err = time.Parse(time.RFC3339, nowFlag); err != nil {
					return fmt.Errorf("invalid --now %q: %w", nowFlag, err)
				}
				now = now.In(s.loc)
			}

			seq, err := availability.Slots(s.blocks, day, duration, s.appointments, now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			step := time.Duration(duration) * time.Minute
			found := false
			for start := range seq {
				found = true
				fmt.Fprintf(out, "%s-%s\n", start.Format("15:04"), start.Add(step).Format("15:04"))
			}
			if !found {
				fmt.Fprintln(out, "no slots available")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to list, YYYY-MM-DD")
	cmd.Flags().IntVar(&duration, "duration", 30, "service duration in minutes")
	cmd.Flags().StringVar(&nowFlag, "now", "", "current time, RFC3339 (defaults to the system clock)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
