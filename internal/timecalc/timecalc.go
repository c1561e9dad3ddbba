package timecalc

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of the full-day canvas.
const MinutesPerDay = 24 * 60

// ParseClock parses a 24-hour "HH:MM" wall-clock string into minutes from
// midnight. "24:00" is accepted as the end-of-day bound (1440).
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock formats minutes from midnight as "HH:MM". Values past midnight
// wrap onto the next day's clock face.
func FormatClock(minutes int) string {
	m := minutes % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatMinutes formats a duration in minutes as "1h 30m", "2h" or "45m".
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// Quantize rounds minutes to the nearest multiple of step. Halfway values
// round up. A non-positive step leaves the value unchanged.
func Quantize(minutes, step int) int {
	if step <= 0 {
		return minutes
	}
	q := (minutes + step/2) / step * step
	if minutes < 0 {
		q = -Quantize(-minutes, step)
	}
	return q
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
