package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/canvas"
	"github.com/LovableCodezG/tplan/internal/export"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var (
	listDay int
	listIDs bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the itinerary in chronological order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listDay, "day", -1, "Only this day index")
	listCmd.Flags().BoolVar(&listIDs, "ids", false, "Show activity ids")
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openTrip()
	if err != nil {
		return err
	}

	plans := export.Itinerary(s.trip.Dates, s.store.State())
	if listDay >= 0 {
		var one []export.DayPlan
		for _, p := range plans {
			if p.Index == listDay {
				one = append(one, p)
			}
		}
		plans = one
	}
	printList(cmd.OutOrStdout(), plans, listIDs)
	return nil
}

// printList prints each day followed by its activities.
func printList(w io.Writer, plans []export.DayPlan, showIDs bool) {
	if len(plans) == 0 {
		fmt.Fprintln(w, "No days planned.")
		return
	}

	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint, color.Italic)
	for _, p := range plans {
		header := fmt.Sprintf("Day %d", p.Index)
		if !p.Date.IsZero() {
			header += " – " + p.Date.Format("Mon, Jan 2 2006")
		}
		fmt.Fprintln(w, title.Sprint(header))
		if len(p.Items) == 0 {
			fmt.Fprintln(w, faint.Sprint("  nothing planned"))
			fmt.Fprintln(w)
			continue
		}
		for _, it := range p.Items {
			id := ""
			if showIDs {
				id = faint.Sprint(it.Activity.ID) + "  "
			}
			line := fmt.Sprintf("%s–%s  %s [%s] (%s)",
				timecalc.FormatClock(it.Start), timecalc.FormatClock(it.End),
				it.Activity.Name, canvas.Icon(it.Activity.Category), timecalc.FormatMinutes(it.Activity.Duration))
			fmt.Fprintf(w, "  %s%s\n", id, canvas.Paint(it.Activity, line))
		}
		fmt.Fprintf(w, "  %s\n\n", faint.Sprintf("%s scheduled", timecalc.FormatMinutes(p.TotalMinutes)))
	}
}
