// Package lodging expands a hotel stay into the per-day activities it
// implies: a check-in, a check-out and, optionally, breakfast every morning
// in between.
package lodging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/LovableCodezG/tplan/internal/dayrange"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

const (
	CheckInDuration  = 60
	CheckOutDuration = 30

	DefaultCheckIn  = "15:00"
	DefaultCheckOut = "11:00"

	DefaultBreakfastStart = "07:00"
	DefaultBreakfastEnd   = "09:00"
)

// ErrInvalidStay is returned for stays that cannot be expanded.
var ErrInvalidStay = errors.New("invalid stay")

// Stay is one accommodation booking.
type Stay struct {
	Hotel        string
	CheckInDate  time.Time
	CheckOutDate time.Time
	CheckInTime  string // "HH:MM", DefaultCheckIn when empty
	CheckOutTime string // "HH:MM", DefaultCheckOut when empty

	IncludeBreakfast bool
	BreakfastStart   string // DefaultBreakfastStart when empty
	BreakfastEnd     string // DefaultBreakfastEnd when empty
}

// Placement is an activity destined for a specific trip day.
type Placement struct {
	DayIndex int
	Activity model.Activity
}

func (s Stay) validate() error {
	if strings.TrimSpace(s.Hotel) == "" {
		return fmt.Errorf("%w: hotel name is required", ErrInvalidStay)
	}
	if s.CheckInDate.IsZero() || s.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidStay)
	}
	if timecalc.DaysBetween(s.CheckInDate, s.CheckOutDate) < 0 {
		return fmt.Errorf("%w: check-out %s is before check-in %s", ErrInvalidStay,
			s.CheckOutDate.Format(timecalc.DateLayout), s.CheckInDate.Format(timecalc.DateLayout))
	}
	return nil
}

func clockOr(s, fallback string) (string, int, error) {
	if s == "" {
		s = fallback
	}
	m, err := timecalc.ParseClock(s)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrInvalidStay, err)
	}
	if m >= timecalc.MinutesPerDay {
		return "", 0, fmt.Errorf("%w: %s is not a start time", ErrInvalidStay, s)
	}
	return timecalc.FormatClock(m), m, nil
}

// Expand converts a stay into placements relative to tripStart. Day indices
// before the trip are clamped to day 0. The placements are not checked for
// conflicts with anything already on those days.
func Expand(tripStart time.Time, s Stay) ([]Placement, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	inTime, _, err := clockOr(s.CheckInTime, DefaultCheckIn)
	if err != nil {
		return nil, err
	}
	outTime, _, err := clockOr(s.CheckOutTime, DefaultCheckOut)
	if err != nil {
		return nil, err
	}

	hotel := strings.TrimSpace(s.Hotel)
	inDay := dayrange.Index(tripStart, s.CheckInDate)
	outDay := dayrange.Index(tripStart, s.CheckOutDate)

	out := []Placement{
		{DayIndex: inDay, Activity: model.Activity{
			Name:      "Check-in: " + hotel,
			StartTime: inTime,
			Duration:  CheckInDuration,
			Category:  model.CategoryAccommodation,
			Source:    model.SourcePlace,
		}},
		{DayIndex: outDay, Activity: model.Activity{
			Name:      "Check-out: " + hotel,
			StartTime: outTime,
			Duration:  CheckOutDuration,
			Category:  model.CategoryAccommodation,
			Source:    model.SourcePlace,
		}},
	}

	if !s.IncludeBreakfast {
		return out, nil
	}
	breakfasts, err := expandBreakfast(tripStart, s, hotel, inDay, outDay)
	if err != nil {
		return nil, err
	}
	return append(out, breakfasts...), nil
}

// expandBreakfast emits one breakfast per morning after a night at the hotel:
// every day after check-in up to and including check-out day.
func expandBreakfast(tripStart time.Time, s Stay, hotel string, inDay, outDay int) ([]Placement, error) {
	startClock, start, err := clockOr(s.BreakfastStart, DefaultBreakfastStart)
	if err != nil {
		return nil, err
	}
	_, end, err := clockOr(s.BreakfastEnd, DefaultBreakfastEnd)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, fmt.Errorf("%w: breakfast must end after it starts", ErrInvalidStay)
	}

	first := timecalc.AddDays(s.CheckInDate, 1)
	last := timecalc.DateOnly(s.CheckOutDate)
	if first.After(last) {
		return nil, nil
	}
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: first,
		Until:   last,
	})
	if err != nil {
		return nil, fmt.Errorf("building breakfast recurrence: %w", err)
	}

	var out []Placement
	seen := make(map[int]bool)
	for _, morning := range rule.All() {
		day := dayrange.Index(tripStart, morning)
		// mornings before the trip all clamp onto the arrival day
		if day <= inDay || day > outDay || seen[day] {
			continue
		}
		seen[day] = true
		out = append(out, Placement{DayIndex: day, Activity: model.Activity{
			Name:      "Breakfast at " + hotel,
			StartTime: startClock,
			Duration:  end - start,
			Category:  model.CategoryMeal,
			Source:    model.SourcePlace,
		}})
	}
	return out, nil
}
