package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/dayrange"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the trip being planned",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openTrip()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Trip: %s\n", s.trip.Name)
	if s.trip.Destination != "" {
		fmt.Fprintf(out, "  Destination: %s\n", s.trip.Destination)
	}
	if label := dayrange.Label(s.trip.Dates); label != "" {
		fmt.Fprintf(out, "  Dates: %s (%d days)\n", label, len(s.days()))
	} else {
		fmt.Fprintln(out, "  Dates: not chosen yet")
	}

	var count, minutes int
	st := s.store.State()
	for _, d := range st.DayIndices() {
		for _, a := range st.Days[d] {
			count++
			minutes += a.Duration
		}
	}
	fmt.Fprintf(out, "  Activities: %d (%s scheduled)\n", count, timecalc.FormatMinutes(minutes))
	return nil
}
