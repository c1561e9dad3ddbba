package model

import (
	"fmt"
	"time"
)

// Category classifies an activity. Only accommodation has behaviour attached
// (multi-day stay expansion); the rest drive icon and colour.
type Category string

const (
	CategoryMeal           Category = "meal"
	CategorySightseeing    Category = "sightseeing"
	CategoryTransportation Category = "transportation"
	CategoryAccommodation  Category = "accommodation"
	CategoryOther          Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryMeal,
	CategorySightseeing,
	CategoryTransportation,
	CategoryAccommodation,
	CategoryOther,
}

// ParseCategory validates s against the closed category set.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Source records where an activity came from. Place-sourced activities keep
// their name, category and notes for life.
type Source string

const (
	SourceCustom Source = "custom"
	SourcePlace  Source = "place"
)

// PaletteSize is the number of display colours a ColorIndex can address.
const PaletteSize = 8

// Activity is one scheduled item on one trip day.
type Activity struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	StartTime  string   `json:"start_time"` // "15:04"
	Duration   int      `json:"duration"`   // minutes
	Category   Category `json:"category"`
	Notes      string   `json:"notes,omitempty"`
	Source     Source   `json:"source,omitempty"`
	ColorIndex *int     `json:"color_index,omitempty"`
}

// DateType selects between a single-day trip and a date range.
type DateType string

const (
	DateSingle DateType = "single"
	DateRange  DateType = "range"
)

// Span is an inclusive calendar date range. Nil ends mean "not chosen yet".
type Span struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// TripDates is the date configuration chosen in trip setup.
type TripDates struct {
	DateType  DateType   `json:"date_type"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	DateRange Span       `json:"date_range"`
}

// TripFile is the top-level structure stored for the trip being planned.
// Days maps a day index (as a decimal string, JSON keys must be strings)
// to that day's activities in insertion order.
type TripFile struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Destination string                `json:"destination"`
	Members     []string              `json:"members"`
	Dates       TripDates             `json:"dates"`
	Days        map[string][]Activity `json:"days"`
}

// TripStatus is the lifecycle label shown on the dashboard.
type TripStatus string

const (
	StatusPlanning  TripStatus = "planning"
	StatusUpcoming  TripStatus = "upcoming"
	StatusCompleted TripStatus = "completed"
)

// TripSummary is the snapshot written once a trip has been fully planned.
// Schedule data is not part of the snapshot.
type TripSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	Dates       string     `json:"dates"`
	Status      TripStatus `json:"status"`
	Members     []string   `json:"members"`
	CreatedAt   time.Time  `json:"created_at"`
}
