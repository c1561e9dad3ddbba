package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/dayrange"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/storage"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var (
	initName        string
	initDestination string
	initMembers     []string
	initDate        string
	initFrom        string
	initTo          string
	initForce       bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up a new trip (name, destination, dates)",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Trip name")
	initCmd.Flags().StringVar(&initDestination, "destination", "", "Destination")
	initCmd.Flags().StringSliceVar(&initMembers, "member", nil, "Trip member (repeatable)")
	initCmd.Flags().StringVar(&initDate, "date", "", "Single-day trip date (YYYY-MM-DD)")
	initCmd.Flags().StringVar(&initFrom, "from", "", "First day (YYYY-MM-DD)")
	initCmd.Flags().StringVar(&initTo, "to", "", "Last day (YYYY-MM-DD)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Replace the trip currently being planned")
}

// parseTripDates builds the date configuration from the --date/--from/--to flags.
func parseTripDates(date, from, to string) (model.TripDates, error) {
	switch {
	case date != "" && (from != "" || to != ""):
		return model.TripDates{}, errors.New("use either --date or --from/--to, not both")
	case date != "":
		d, err := timecalc.ParseDate(date)
		if err != nil {
			return model.TripDates{}, fmt.Errorf("invalid --date value %q: %w", date, err)
		}
		return model.TripDates{DateType: model.DateSingle, StartDate: &d, EndDate: &d}, nil
	case from != "":
		f, err := timecalc.ParseDate(from)
		if err != nil {
			return model.TripDates{}, fmt.Errorf("invalid --from value %q: %w", from, err)
		}
		t := f
		if to != "" {
			if t, err = timecalc.ParseDate(to); err != nil {
				return model.TripDates{}, fmt.Errorf("invalid --to value %q: %w", to, err)
			}
		}
		if t.Before(f) {
			return model.TripDates{}, fmt.Errorf("--to %s is before --from %s", to, from)
		}
		return model.TripDates{
			DateType:  model.DateRange,
			StartDate: &f,
			EndDate:   &t,
			DateRange: model.Span{From: &f, To: &t},
		}, nil
	case to != "":
		return model.TripDates{}, errors.New("--from is required when --to is specified")
	default:
		// Dates can be chosen later; scheduling stays blocked until then.
		return model.TripDates{DateType: model.DateRange}, nil
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(initName) == "" {
		return userError(errors.New("--name is required"))
	}
	dates, err := parseTripDates(initDate, initFrom, initTo)
	if err != nil {
		return userError(err)
	}

	s, err := openBase()
	if err != nil {
		return err
	}
	existing, err := storage.LoadTrip(s.base)
	switch {
	case err == nil && !initForce:
		return userError(fmt.Errorf("trip %q is already being planned; use --force to replace it", existing.Name))
	case err != nil && !errors.Is(err, storage.ErrNoTrip):
		return storageError(err)
	}

	s.trip = model.TripFile{
		ID:          timecalc.UUIDs{}.NewID(),
		Name:        strings.TrimSpace(initName),
		Destination: strings.TrimSpace(initDestination),
		Members:     initMembers,
		Dates:       dates,
		Days:        map[string][]model.Activity{},
	}
	if err := storage.SaveTrip(s.base, s.trip); err != nil {
		return storageError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Planning %q", s.trip.Name)
	if label := dayrange.Label(dates); label != "" {
		fmt.Fprintf(out, " (%s, %d days)", label, len(dayrange.Resolve(dates)))
	}
	fmt.Fprintln(out)
	return nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(name, v string) (time.Time, error) {
	d, err := timecalc.ParseDate(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s value %q: %w", name, v, err)
	}
	return d, nil
}
