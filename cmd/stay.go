package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/lodging"
)

var (
	stayHotel          string
	stayCheckIn        string
	stayCheckOut       string
	stayInTime         string
	stayOutTime        string
	stayBreakfast      bool
	stayBreakfastStart string
	stayBreakfastEnd   string
)

var stayCmd = &cobra.Command{
	Use:   "stay",
	Short: "Book a hotel stay (check-in, check-out and breakfasts)",
	Long: `Book a hotel stay. Adds a check-in on the arrival day, a check-out on the
departure day and, with --breakfast, a breakfast every morning after a night
at the hotel. These are added even when they overlap existing activities.`,
	Args: cobra.NoArgs,
	RunE: runStay,
}

func init() {
	stayCmd.Flags().StringVar(&stayHotel, "hotel", "", "Hotel name")
	stayCmd.Flags().StringVar(&stayCheckIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
	stayCmd.Flags().StringVar(&stayCheckOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
	stayCmd.Flags().StringVar(&stayInTime, "in-time", "", "Check-in time (HH:MM, default from config)")
	stayCmd.Flags().StringVar(&stayOutTime, "out-time", "", "Check-out time (HH:MM, default from config)")
	stayCmd.Flags().BoolVar(&stayBreakfast, "breakfast", false, "Include breakfast")
	stayCmd.Flags().StringVar(&stayBreakfastStart, "breakfast-start", "", "Breakfast start (HH:MM, default from config)")
	stayCmd.Flags().StringVar(&stayBreakfastEnd, "breakfast-end", "", "Breakfast end (HH:MM, default from config)")
	_ = stayCmd.MarkFlagRequired("hotel")
	_ = stayCmd.MarkFlagRequired("check-in")
	_ = stayCmd.MarkFlagRequired("check-out")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func runStay(cmd *cobra.Command, args []string) error {
	in, err := parseDateFlag("check-in", stayCheckIn)
	if err != nil {
		return userError(err)
	}
	out, err := parseDateFlag("check-out", stayCheckOut)
	if err != nil {
		return userError(err)
	}

	s, err := openTrip()
	if err != nil {
		return err
	}
	start, err := s.tripStart()
	if err != nil {
		return err
	}

	cfg := s.cfg.Lodging
	placements, err := lodging.Expand(start, lodging.Stay{
		Hotel:            stayHotel,
		CheckInDate:      in,
		CheckOutDate:     out,
		CheckInTime:      orDefault(stayInTime, cfg.CheckInTime),
		CheckOutTime:     orDefault(stayOutTime, cfg.CheckOutTime),
		IncludeBreakfast: stayBreakfast,
		BreakfastStart:   orDefault(stayBreakfastStart, cfg.BreakfastStart),
		BreakfastEnd:     orDefault(stayBreakfastEnd, cfg.BreakfastEnd),
	})
	if err != nil {
		return userError(err)
	}

	w := cmd.OutOrStdout()
	for _, p := range placements {
		a, err := s.store.AddOrUpdate(p.DayIndex, p.Activity)
		if err != nil {
			return userError(err)
		}
		fmt.Fprintf(w, "  + day %d  %s  %s\n", p.DayIndex, a.StartTime, a.Name)
	}
	if err := s.save(); err != nil {
		return err
	}
	s.log.Info("stay booked", "hotel", stayHotel, "activities", len(placements))
	fmt.Fprintf(w, "Booked %s: %d activities added\n", stayHotel, len(placements))
	return nil
}
