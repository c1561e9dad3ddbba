package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/LovableCodezG/tplan/internal/conflict"
	"github.com/LovableCodezG/tplan/internal/export"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/schedule"
)

func tripDates() model.TripDates {
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	return model.TripDates{DateType: model.DateRange, DateRange: model.Span{From: &from, To: &to}}
}

func state() schedule.State {
	return schedule.State{Days: map[int][]model.Activity{
		0: {
			{ID: "l", Name: "Lunch, late", StartTime: "13:00", Duration: 60, Category: model.CategoryMeal, Notes: `say "hi"`},
			{ID: "m", Name: "Museum", StartTime: "09:00", Duration: 120, Category: model.CategorySightseeing},
		},
		2: {
			{ID: "c", Name: "Check-out: Grand", StartTime: "11:00", Duration: 30, Category: model.CategoryAccommodation, Source: model.SourcePlace},
		},
		5: {
			{ID: "x", Name: "Extra", StartTime: "10:00", Duration: 30, Category: model.CategoryOther},
		},
	}}
}

func TestItinerary(t *testing.T) {
	plans := export.Itinerary(tripDates(), state())

	require.Len(t, plans, 4)
	assert.Equal(t, []int{0, 1, 2, 5}, []int{plans[0].Index, plans[1].Index, plans[2].Index, plans[3].Index})

	require.Len(t, plans[0].Items, 2)
	assert.Equal(t, "Museum", plans[0].Items[0].Activity.Name, "sorted by start time at render time")
	assert.Equal(t, 180, plans[0].TotalMinutes)
	assert.Empty(t, plans[1].Items)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), plans[3].Date, "days past the trip still get a date")
}

func TestItinerary_withoutDates(t *testing.T) {
	plans := export.Itinerary(model.TripDates{}, state())
	require.Len(t, plans, 3)
	assert.True(t, plans[0].Date.IsZero())
}

func TestCategoryTotals(t *testing.T) {
	totals := export.CategoryTotals(export.Itinerary(tripDates(), state()))
	assert.Equal(t, map[model.Category]int{
		model.CategoryMeal:          60,
		model.CategorySightseeing:   120,
		model.CategoryAccommodation: 30,
		model.CategoryOther:         30,
	}, totals)
}

func TestWriteCSV(t *testing.T) {
	items := export.Items(export.Itinerary(tripDates(), state()))
	var buf bytes.Buffer

	require.NoError(t, export.WriteCSV(&buf, items))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "day,date,name,start,end,duration_minutes,category,notes", lines[0])
	assert.Equal(t, "0,2024-06-10,Museum,09:00,11:00,120,sightseeing,", lines[1])
	assert.Equal(t, `0,2024-06-10,"Lunch, late",13:00,14:00,60,meal,"say ""hi"""`, lines[2])
}

func TestWriteJSON(t *testing.T) {
	items := export.Items(export.Itinerary(tripDates(), state()))
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, items))

	var rows []export.Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "2024-06-12", rows[2].Date)
	assert.Equal(t, "place", rows[2].Source)
}

func TestWriteYAML(t *testing.T) {
	items := export.Items(export.Itinerary(tripDates(), state()))
	var buf bytes.Buffer
	require.NoError(t, export.WriteYAML(&buf, items))

	var rows []export.Row
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "Museum", rows[0].Name)
	assert.Equal(t, 120, rows[0].Duration)
}

func TestWriteICS(t *testing.T) {
	items := export.Items(export.Itinerary(tripDates(), state()))
	items = append(items, export.Item{Activity: model.Activity{ID: "nodate", Name: "Undated"}})
	loc := time.FixedZone("WEST", 3600)
	var buf bytes.Buffer

	require.NoError(t, export.WriteICS(&buf, items, loc, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 4)

	start, err := events[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 6, 10, 9, 0, 0, 0, loc).Equal(start))
	assert.Equal(t, "Museum", events[0].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "m@tplan", events[0].Id())
}

func TestWriteICS_dstChangeDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 2024-03-31 is the spring-forward day in Europe.
	items := []export.Item{{
		Date:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Activity: model.Activity{ID: "m", Name: "Museum", StartTime: "09:00", Duration: 60},
		Range:    conflict.Range{Start: 540, End: 600},
	}}
	var buf bytes.Buffer
	require.NoError(t, export.WriteICS(&buf, items, loc, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)
	ev := cal.Events()[0]

	start, err := ev.GetStartAt()
	require.NoError(t, err)
	end, err := ev.GetEndAt()
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 3, 31, 7, 0, 0, 0, time.UTC).Equal(start), "start = %s", start.UTC())
	assert.True(t, time.Date(2024, 3, 31, 8, 0, 0, 0, time.UTC).Equal(end), "end = %s", end.UTC())
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteMarkdown(&buf, "Lisbon", export.Itinerary(tripDates(), state())))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Lisbon\n"))
	assert.Contains(t, out, "\n## Day 0 (Mon, Jun 10 2024)\n")
	assert.Contains(t, out, "- 09:00-11:00 **Museum** (sightseeing, 2h)\n")
	assert.Contains(t, out, "- 13:00-14:00 **Lunch, late** (meal, 1h): say \"hi\"\n")
	assert.Contains(t, out, "## Day 1 (Tue, Jun 11 2024)\n\n_Nothing planned._\n")
	assert.Less(t, strings.Index(out, "Museum"), strings.Index(out, "Lunch"))
}
