// Package export turns a trip schedule into read-only views: the
// chronological itinerary and its CSV, JSON, YAML and iCalendar renderings.
package export

import (
	"sort"
	"time"

	"github.com/LovableCodezG/tplan/internal/conflict"
	"github.com/LovableCodezG/tplan/internal/dayrange"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/schedule"
)

// Item is one activity placed on its calendar date.
type Item struct {
	Day      int
	Date     time.Time // zero when the trip has no dates
	Activity model.Activity
	conflict.Range
}

// DayPlan is one trip day with its activities sorted by start time.
type DayPlan struct {
	Index        int
	Date         time.Time
	Items        []Item
	TotalMinutes int
}

// Itinerary lists every trip day, in order, with its activities sorted by
// start time. Days that hold activities but fall outside the trip dates are
// appended after the trip days.
func Itinerary(dates model.TripDates, st schedule.State) []DayPlan {
	first, err := dayrange.First(dates)
	hasDates := err == nil

	seen := make(map[int]bool)
	var plans []DayPlan
	for _, d := range dayrange.Resolve(dates) {
		seen[d.Index] = true
		plans = append(plans, dayPlan(d.Index, d.Date, st.Day(d.Index)))
	}
	for _, idx := range st.DayIndices() {
		if seen[idx] {
			continue
		}
		var date time.Time
		if hasDates {
			date = first.AddDate(0, 0, idx)
		}
		plans = append(plans, dayPlan(idx, date, st.Day(idx)))
	}
	return plans
}

func dayPlan(idx int, date time.Time, acts []model.Activity) DayPlan {
	p := DayPlan{Index: idx, Date: date}
	for _, a := range acts {
		occ, ok := conflict.Project(a)
		if !ok {
			continue
		}
		p.Items = append(p.Items, Item{Day: idx, Date: date, Activity: a, Range: occ.Range})
		p.TotalMinutes += a.Duration
	}
	sort.SliceStable(p.Items, func(i, j int) bool { return p.Items[i].Start < p.Items[j].Start })
	return p
}

// Items flattens the plans into a single chronological list.
func Items(plans []DayPlan) []Item {
	var out []Item
	for _, p := range plans {
		out = append(out, p.Items...)
	}
	return out
}

// CategoryTotals sums scheduled minutes per category.
func CategoryTotals(plans []DayPlan) map[model.Category]int {
	totals := make(map[model.Category]int)
	for _, p := range plans {
		for _, it := range p.Items {
			totals[it.Activity.Category] += it.Activity.Duration
		}
	}
	return totals
}
