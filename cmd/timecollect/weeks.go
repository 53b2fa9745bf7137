package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/timecollect-go/pkg/timecollect"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/output"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/schedule"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/transform"
)

const dateLayout = "2006-01-02"

func newWeeksCmd() *cobra.Command {
	var (
		start  string
		date   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Print the week schedule or the week type of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			periods, err := schedule.Generate(startDate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if date != "" {
				d, err := parseDate(date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				name, ok := schedule.ResolveDate(periods, d)
				if !ok {
					name = transform.UnclassifiedWeekType
				}
				fmt.Fprintln(out, name)
				return nil
			}

			if asJSON {
				jsonData, err := output.PeriodsToJSON(periods)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(jsonData))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tSTART\tEND\tWEEK")
			for _, p := range periods {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.Sequence, p.Start.Format(dateLayout), p.End.Format(dateLayout), p.Name)
			}
			return w.Flush()
		},
	}

	defaultStart := timecollect.DefaultOptions().ScheduleStart.Format(dateLayout)
	cmd.Flags().StringVar(&start, "start", defaultStart, "First Sunday of the schedule (YYYY-MM-DD)")
	cmd.Flags().StringVar(&date, "date", "", "Print only the week type of this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the schedule as JSON")
	return cmd
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
