// Package dayrange turns a trip's date configuration into its ordered list
// of days.
package dayrange

import (
	"errors"
	"time"

	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

// ErrNoDates is returned by First when the trip has no usable dates yet.
var ErrNoDates = errors.New("trip dates not chosen")

// Day pairs a zero-based day index with its calendar date.
type Day struct {
	Index int
	Date  time.Time
}

// Resolve derives the trip days from its date configuration. A single date
// yields one day; a range yields one day per calendar date, both ends
// included. Missing or inverted configuration yields no days and the caller
// must send the user back to date selection.
func Resolve(d model.TripDates) []Day {
	from, to, ok := bounds(d)
	if !ok {
		return nil
	}
	n := timecalc.DaysBetween(from, to) + 1
	if n <= 0 {
		return nil
	}
	days := make([]Day, n)
	for i := range days {
		days[i] = Day{Index: i, Date: timecalc.AddDays(from, i)}
	}
	return days
}

// First returns the trip's first calendar date, the origin of every day index.
func First(d model.TripDates) (time.Time, error) {
	from, _, ok := bounds(d)
	if !ok {
		return time.Time{}, ErrNoDates
	}
	return timecalc.DateOnly(from), nil
}

// Index returns the day index of date relative to the trip start, clamped
// to zero for dates before the trip.
func Index(tripStart, date time.Time) int {
	n := timecalc.DaysBetween(tripStart, date)
	if n < 0 {
		return 0
	}
	return n
}

// Label formats the trip dates the way the dashboard shows them,
// e.g. "Jun 10, 2024" or "Jun 10 - Jun 13, 2024".
func Label(d model.TripDates) string {
	from, to, ok := bounds(d)
	if !ok {
		return ""
	}
	if timecalc.SameDay(from, to) {
		return from.Format("Jan 2, 2006")
	}
	if from.Year() == to.Year() {
		return from.Format("Jan 2") + " - " + to.Format("Jan 2, 2006")
	}
	return from.Format("Jan 2, 2006") + " - " + to.Format("Jan 2, 2006")
}

func bounds(d model.TripDates) (time.Time, time.Time, bool) {
	switch d.DateType {
	case model.DateSingle:
		if d.StartDate == nil {
			return time.Time{}, time.Time{}, false
		}
		return *d.StartDate, *d.StartDate, true
	case model.DateRange:
		from, to := d.DateRange.From, d.DateRange.To
		if from == nil {
			return time.Time{}, time.Time{}, false
		}
		if to == nil {
			// A range with only its first day picked behaves like a single date.
			return *from, *from, true
		}
		if timecalc.DaysBetween(*from, *to) < 0 {
			return time.Time{}, time.Time{}, false
		}
		return *from, *to, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
