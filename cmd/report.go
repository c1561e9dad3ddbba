package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/canvas"
	"github.com/LovableCodezG/tplan/internal/export"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show scheduled time per category",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := openTrip()
	if err != nil {
		return err
	}

	plans := export.Itinerary(s.trip.Dates, s.store.State())
	totals := export.CategoryTotals(plans)
	grandTotal := 0
	for _, m := range totals {
		grandTotal += m
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Trip %s\n", s.trip.Name)
	fmt.Fprintln(w, "--------------------------------")
	for _, c := range model.Categories {
		if totals[c] == 0 {
			continue
		}
		fmt.Fprintf(w, "%-20s%s\n", canvas.Icon(c), timecalc.FormatMinutes(totals[c]))
	}
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "%-20s%s\n", "Total", timecalc.FormatMinutes(grandTotal))
	return nil
}
