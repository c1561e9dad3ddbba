package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/dayrange"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the trip days and their indices",
	Args:  cobra.NoArgs,
	RunE:  runDays,
}

func runDays(cmd *cobra.Command, args []string) error {
	s, err := openTrip()
	if err != nil {
		return err
	}
	days := s.days()
	if len(days) == 0 {
		return userError(fmt.Errorf("%w; run `tplan init` with --date or --from/--to", dayrange.ErrNoDates))
	}

	table := uitable.New()
	table.AddRow("DAY", "DATE", "WEEKDAY", "ACTIVITIES", "SCHEDULED")
	for _, d := range days {
		acts := s.store.ListForDay(d.Index)
		minutes := 0
		for _, a := range acts {
			minutes += a.Duration
		}
		table.AddRow(d.Index, d.Date.Format(timecalc.DateLayout), d.Date.Weekday().String(), len(acts), timecalc.FormatMinutes(minutes))
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}
