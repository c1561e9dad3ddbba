// Package conflict detects overlapping activity time ranges within one day.
package conflict

import (
	"fmt"
	"strings"

	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

// Range is a half-open interval [Start, End) in minutes from midnight.
type Range struct {
	Start int
	End   int
}

// Overlaps reports whether r and o share at least one minute. Ranges that
// only touch at an endpoint do not overlap.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && r.End > o.Start
}

// Occupied is an existing activity projected onto the day's minute axis.
type Occupied struct {
	ID   string
	Name string
	Range
}

// Result is the outcome of a conflict check.
type Result struct {
	Conflict    bool
	Conflicting []Occupied
}

// Project maps an activity to its occupied range. Activities with an
// unparseable start time are reported as not ok and never conflict.
func Project(a model.Activity) (Occupied, bool) {
	start, err := timecalc.ParseClock(a.StartTime)
	if err != nil {
		return Occupied{}, false
	}
	return Occupied{
		ID:    a.ID,
		Name:  a.Name,
		Range: Range{Start: start, End: start + a.Duration},
	}, true
}

// Check compares the candidate range against every activity of the day except
// excludeID and returns all entries it overlaps, in the order given.
func Check(candidate Range, existing []model.Activity, excludeID string) Result {
	var res Result
	for _, a := range existing {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		occ, ok := Project(a)
		if !ok {
			continue
		}
		if candidate.Overlaps(occ.Range) {
			res.Conflicting = append(res.Conflicting, occ)
		}
	}
	res.Conflict = len(res.Conflicting) > 0
	return res
}

// Explain renders a one-line message per conflicting entry, e.g.
// `overlaps "Museum" (09:00-10:00)`. It returns "" when there is no conflict.
func (r Result) Explain() string {
	if !r.Conflict {
		return ""
	}
	lines := make([]string, 0, len(r.Conflicting))
	for _, c := range r.Conflicting {
		lines = append(lines, fmt.Sprintf("overlaps %q (%s-%s)",
			c.Name, timecalc.FormatClock(c.Start), timecalc.FormatClock(c.End)))
	}
	return strings.Join(lines, "\n")
}
