package timecalc

import "time"

// DateLayout is the on-disk and command-line date format.
const DateLayout = "2006-01-02"

// Calendar supplies the current time. Day arithmetic never reads the wall
// clock directly so tests can pin "today".
type Calendar interface {
	Now() time.Time
}

// SystemCalendar reads the wall clock in the given location (time.Local when nil).
type SystemCalendar struct {
	Location *time.Location
}

// Now implements Calendar.
func (c SystemCalendar) Now() time.Time {
	if c.Location != nil {
		return time.Now().In(c.Location)
	}
	return time.Now()
}

// FixedCalendar always returns the same instant.
type FixedCalendar time.Time

// Now implements Calendar.
func (c FixedCalendar) Now() time.Time { return time.Time(c) }

// DateOnly drops the clock part of t, keeping its calendar date, and returns
// midnight UTC of that date so day differences are immune to DST shifts.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "2006-01-02" date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DaysBetween returns the number of calendar days from 'from' to 'to'.
// It is negative when 'to' is earlier.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// AddDays returns the calendar date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, n)
}

// Today returns the current calendar date according to cal.
func Today(cal Calendar) time.Time {
	return DateOnly(cal.Now())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
