package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
)

// WriteICS writes dated items as iCalendar VEVENTs in loc. Items without a
// calendar date are skipped. stamp is used for DTSTAMP.
func WriteICS(w io.Writer, items []Item, loc *time.Location, stamp time.Time) error {
	if loc == nil {
		loc = time.UTC
	}
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//tplan//trip schedule//EN")

	for _, it := range items {
		if it.Date.IsZero() {
			continue
		}
		y, m, d := it.Date.Date()
		// wall-clock minutes, so DST change days keep their local times
		start := time.Date(y, m, d, 0, it.Start, 0, 0, loc)
		end := time.Date(y, m, d, 0, it.End, 0, 0, loc)

		ev := cal.AddEvent(fmt.Sprintf("%s@tplan", it.Activity.ID))
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(it.Activity.Name)
		if it.Activity.Notes != "" {
			ev.SetDescription(it.Activity.Notes)
		}
		ev.SetProperty(ical.ComponentPropertyCategories, string(it.Activity.Category))
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}
