// Package schedule holds a trip's activities per day. The state is changed
// only through Reduce; Store wraps it with id assignment, validation and
// change notification.
package schedule

import (
	"slices"
	"sort"

	"github.com/LovableCodezG/tplan/internal/model"
)

// State maps a day index to that day's activities in insertion order.
// A State is treated as immutable: Reduce never modifies its input.
type State struct {
	Days map[int][]model.Activity
}

// Day returns a copy of the activities for day.
func (s State) Day(day int) []model.Activity {
	return slices.Clone(s.Days[day])
}

// DayIndices returns every day that has at least one activity, ascending.
func (s State) DayIndices() []int {
	out := make([]int, 0, len(s.Days))
	for d, acts := range s.Days {
		if len(acts) > 0 {
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}

// Find locates an activity by id across all days.
func (s State) Find(id string) (day int, a model.Activity, ok bool) {
	for _, d := range s.DayIndices() {
		for _, act := range s.Days[d] {
			if act.ID == id {
				return d, act, true
			}
		}
	}
	return 0, model.Activity{}, false
}

// Action is a state transition understood by Reduce.
type Action interface {
	isAction()
}

// Put replaces the activity with the same id on Day, keeping its position,
// or appends it when the day has no such id.
type Put struct {
	Day      int
	Activity model.Activity
}

// Delete removes the activity with ID from Day.
type Delete struct {
	Day int
	ID  string
}

// ClearDay drops every activity of Day.
type ClearDay struct {
	Day int
}

// Replace swaps the whole state, e.g. after loading from disk.
type Replace struct {
	State State
}

func (Put) isAction()      {}
func (Delete) isAction()   {}
func (ClearDay) isAction() {}
func (Replace) isAction()  {}

// Reduce applies action to s and returns the resulting state.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case Put:
		acts := slices.Clone(s.Days[a.Day])
		i := slices.IndexFunc(acts, func(x model.Activity) bool { return x.ID == a.Activity.ID })
		if i >= 0 {
			acts[i] = a.Activity
		} else {
			acts = append(acts, a.Activity)
		}
		return s.with(a.Day, acts)
	case Delete:
		acts := slices.DeleteFunc(slices.Clone(s.Days[a.Day]), func(x model.Activity) bool { return x.ID == a.ID })
		return s.with(a.Day, acts)
	case ClearDay:
		return s.with(a.Day, nil)
	case Replace:
		return a.State.clone()
	default:
		return s
	}
}

func (s State) clone() State {
	days := make(map[int][]model.Activity, len(s.Days))
	for d, acts := range s.Days {
		days[d] = slices.Clone(acts)
	}
	return State{Days: days}
}

// with returns a shallow copy of s whose day is replaced by acts.
func (s State) with(day int, acts []model.Activity) State {
	days := make(map[int][]model.Activity, len(s.Days)+1)
	for d, v := range s.Days {
		days[d] = v
	}
	if len(acts) == 0 {
		delete(days, day)
	} else {
		days[day] = acts
	}
	return State{Days: days}
}
