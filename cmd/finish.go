package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/dayrange"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/storage"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Save the trip to the trips list",
	Long: `Save the trip's summary (name, destination, dates, status and members)
to the trips list. The day-by-day schedule stays in the working trip file and
is not part of the summary.`,
	Args: cobra.NoArgs,
	RunE: runFinish,
}

// tripStatus derives the dashboard status from the trip dates and today.
func tripStatus(dates model.TripDates, today time.Time) model.TripStatus {
	days := dayrange.Resolve(dates)
	if len(days) == 0 {
		return model.StatusPlanning
	}
	if timecalc.DaysBetween(today, days[len(days)-1].Date) < 0 {
		return model.StatusCompleted
	}
	return model.StatusUpcoming
}

func summarize(tf model.TripFile, cal timecalc.Calendar) model.TripSummary {
	members := tf.Members
	if members == nil {
		members = []string{}
	}
	return model.TripSummary{
		ID:          tf.ID,
		Name:        tf.Name,
		Destination: tf.Destination,
		Dates:       dayrange.Label(tf.Dates),
		Status:      tripStatus(tf.Dates, timecalc.Today(cal)),
		Members:     members,
		CreatedAt:   cal.Now(),
	}
}

func runFinish(cmd *cobra.Command, args []string) error {
	s, err := openTrip()
	if err != nil {
		return err
	}
	if len(s.days()) == 0 {
		return userError(fmt.Errorf("%w; pick dates before finishing", dayrange.ErrNoDates))
	}

	sum := summarize(s.trip, s.cal)
	if err := storage.NewTripStore(s.base).Append(sum); err != nil {
		return storageError(err)
	}
	s.log.Info("trip saved to list", "id", sum.ID, "status", sum.Status)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s, %s)\n", sum.Name, sum.Dates, sum.Status)
	return nil
}
