// Package editor holds the state of an activity being created or edited:
// the candidate time range, its conflicts with the rest of the day, and
// whether the result may be committed.
package editor

import (
	"errors"
	"strings"

	"github.com/LovableCodezG/tplan/internal/conflict"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

// ErrReadOnlyField is returned when a place-sourced activity would have its
// name, category or notes changed.
var ErrReadOnlyField = errors.New("field is read-only for place activities")

// Window bounds the candidate range and sets its quantization step.
type Window struct {
	Start int // minutes from midnight
	End   int
	Step  int
}

// DayWindow is the 06:00-22:00 window used by the activity dialogs.
var DayWindow = Window{Start: 6 * 60, End: 22 * 60, Step: 30}

// FullDay is the unbounded 00:00-24:00 window of the free-form canvas.
var FullDay = Window{Start: 0, End: timecalc.MinutesPerDay, Step: 30}

func (w Window) normalize() Window {
	if w.Step <= 0 {
		w.Step = 30
	}
	if w.End-w.Start < w.Step {
		return FullDay
	}
	return w
}

// State is the commit state of the editor.
type State int

const (
	// Idle means the candidate range is free and the activity may be committed.
	Idle State = iota
	// Conflicted means the candidate range overlaps another activity.
	Conflicted
)

func (s State) String() string {
	if s == Conflicted {
		return "conflicted"
	}
	return "idle"
}

// Variant selects which fields the editor may change.
type Variant int

const (
	// Custom allows changing name, category, time and notes.
	Custom Variant = iota
	// Place allows changing only the time range.
	Place
)

// Editor is a single open activity dialog. It is not safe for concurrent use.
type Editor struct {
	variant  Variant
	window   Window
	existing []model.Activity
	draft    model.Activity
	rng      conflict.Range
	result   conflict.Result
}

// default slot offered for a brand-new activity
var defaultSlot = conflict.Range{Start: 9 * 60, End: 10 * 60}

// NewCustom opens a custom-activity editor. original is nil when creating.
// existing is the day's current activity list.
func NewCustom(w Window, existing []model.Activity, original *model.Activity) *Editor {
	e := &Editor{variant: Custom, window: w.normalize(), existing: existing}
	if original == nil {
		e.draft = model.Activity{Category: model.CategoryOther, Source: model.SourceCustom}
		e.rng = e.bound(defaultSlot.Start, defaultSlot.End)
	} else {
		e.draft = *original
		e.rng = rangeOf(*original)
	}
	e.recheck()
	return e
}

// NewPlace opens an editor for an activity that came from a suggested place.
// Only its time range can be changed.
func NewPlace(w Window, existing []model.Activity, original model.Activity) *Editor {
	e := &Editor{variant: Place, window: w.normalize(), existing: existing, draft: original}
	e.rng = rangeOf(original)
	e.recheck()
	return e
}

// For picks the editor variant from the activity's provenance.
func For(w Window, existing []model.Activity, original model.Activity) *Editor {
	if original.Source == model.SourcePlace {
		return NewPlace(w, existing, original)
	}
	return NewCustom(w, existing, &original)
}

// An activity opened for editing keeps its stored range until the user moves
// a handle, even if it lies outside the window or off the step grid.
func rangeOf(a model.Activity) conflict.Range {
	start, err := timecalc.ParseClock(a.StartTime)
	if err != nil {
		return defaultSlot
	}
	return conflict.Range{Start: start, End: start + a.Duration}
}

// bound quantizes a candidate range and fits it into the window while keeping
// it at least one step long.
func (e *Editor) bound(start, end int) conflict.Range {
	w := e.window
	start = timecalc.Clamp(timecalc.Quantize(start, w.Step), w.Start, w.End-w.Step)
	end = timecalc.Clamp(timecalc.Quantize(end, w.Step), start+w.Step, w.End)
	return conflict.Range{Start: start, End: end}
}

func (e *Editor) recheck() {
	e.result = conflict.Check(e.rng, e.existing, e.draft.ID)
}

// SetRange replaces both ends of the candidate range, as a discrete field edit.
func (e *Editor) SetRange(start, end int) {
	e.rng = e.bound(start, end)
	e.recheck()
}

// DragStart moves the start handle. Dragging it onto or past the end handle
// pushes the end one step further.
func (e *Editor) DragStart(start int) {
	e.SetRange(start, e.rng.End)
}

// DragEnd moves the end handle, never closer than one step to the start.
func (e *Editor) DragEnd(end int) {
	e.SetRange(e.rng.Start, end)
}

// SetStartTime parses an "HH:MM" start and keeps the current duration.
func (e *Editor) SetStartTime(s string) error {
	start, err := timecalc.ParseClock(s)
	if err != nil {
		return err
	}
	e.SetRange(start, start+e.rng.End-e.rng.Start)
	return nil
}

// SetDuration changes the length of the range, keeping its start.
func (e *Editor) SetDuration(minutes int) {
	e.SetRange(e.rng.Start, e.rng.Start+minutes)
}

// SetName changes the activity name.
func (e *Editor) SetName(name string) error {
	if e.variant == Place {
		return ErrReadOnlyField
	}
	e.draft.Name = name
	return nil
}

// SetCategory changes the activity category.
func (e *Editor) SetCategory(c model.Category) error {
	if e.variant == Place {
		return ErrReadOnlyField
	}
	e.draft.Category = c
	return nil
}

// SetNotes changes the free-text notes.
func (e *Editor) SetNotes(notes string) error {
	if e.variant == Place {
		return ErrReadOnlyField
	}
	e.draft.Notes = notes
	return nil
}

// Refresh re-runs the conflict check against the same inputs, as a re-render
// does. It never changes the state on its own.
func (e *Editor) Refresh() {
	e.recheck()
}

// Variant reports which fields are editable.
func (e *Editor) Variant() Variant { return e.variant }

// Range returns the current candidate range.
func (e *Editor) Range() conflict.Range { return e.rng }

// Conflicts returns the result of the latest conflict check.
func (e *Editor) Conflicts() conflict.Result { return e.result }

// State reports whether the candidate range is currently in conflict.
func (e *Editor) State() State {
	if e.result.Conflict {
		return Conflicted
	}
	return Idle
}

// CanCommit reports whether Commit would be accepted.
func (e *Editor) CanCommit() bool {
	return e.State() == Idle && strings.TrimSpace(e.draft.Name) != "" && e.rng.End > e.rng.Start
}

// Commit returns the finished activity. It returns false, and leaves the
// editor unchanged, while the range is in conflict or the name is empty.
// The returned activity keeps the original id, colour and provenance; a new
// activity has an empty id for the store to assign.
func (e *Editor) Commit() (model.Activity, bool) {
	if !e.CanCommit() {
		return model.Activity{}, false
	}
	a := e.draft
	a.Name = strings.TrimSpace(a.Name)
	a.StartTime = timecalc.FormatClock(e.rng.Start)
	a.Duration = e.rng.End - e.rng.Start
	return a, true
}
