package schedule

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var (
	// ErrNotFound is returned when an activity id is not on the given day.
	ErrNotFound = errors.New("activity not found")
	// ErrInvalidActivity is returned for activities that fail validation.
	ErrInvalidActivity = errors.New("invalid activity")
)

// Store is the mutable handle around State used by commands. It is not safe
// for concurrent use.
type Store struct {
	state       State
	ids         timecalc.IDGenerator
	pickColor   func() int
	log         *slog.Logger
	subscribers []func(State)
}

// Option configures a Store.
type Option func(*Store)

// WithColorPicker overrides the random palette choice for new activities.
func WithColorPicker(pick func() int) Option {
	return func(s *Store) { s.pickColor = pick }
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithState seeds the store.
func WithState(st State) Option {
	return func(s *Store) { s.state = Reduce(State{}, Replace{State: st}) }
}

// NewStore returns an empty store that assigns ids with ids.
func NewStore(ids timecalc.IDGenerator, opts ...Option) *Store {
	s := &Store{
		state:     State{Days: map[int][]model.Activity{}},
		ids:       ids,
		pickColor: func() int { return rand.IntN(model.PaletteSize) },
		log:       slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns the current state.
func (s *Store) State() State { return s.state }

// Subscribe registers fn to be called with the new state after every change.
func (s *Store) Subscribe(fn func(State)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) dispatch(a Action) {
	s.state = Reduce(s.state, a)
	for _, fn := range s.subscribers {
		fn(s.state)
	}
}

// Validate checks the fields every stored activity must carry.
func Validate(a model.Activity) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidActivity)
	}
	start, err := timecalc.ParseClock(a.StartTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidActivity, err)
	}
	if start >= timecalc.MinutesPerDay {
		return fmt.Errorf("%w: start %s is past the end of the day", ErrInvalidActivity, a.StartTime)
	}
	if a.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidActivity, a.Duration)
	}
	if _, err := model.ParseCategory(string(a.Category)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidActivity, err)
	}
	if a.ColorIndex != nil && (*a.ColorIndex < 0 || *a.ColorIndex >= model.PaletteSize) {
		return fmt.Errorf("%w: colour index %d out of range", ErrInvalidActivity, *a.ColorIndex)
	}
	return nil
}

// AddOrUpdate stores a on day. An activity without id is new: it gets a fresh
// id and a colour and is appended. Otherwise the activity with the same id
// is replaced in place. The stored activity is returned.
func (s *Store) AddOrUpdate(day int, a model.Activity) (model.Activity, error) {
	if day < 0 {
		return model.Activity{}, fmt.Errorf("%w: day index %d is negative", ErrInvalidActivity, day)
	}
	if err := Validate(a); err != nil {
		return model.Activity{}, err
	}
	a.Name = strings.TrimSpace(a.Name)
	if a.Source == "" {
		a.Source = model.SourceCustom
	}
	if a.ID == "" {
		a.ID = s.ids.NewID()
	}
	if a.ColorIndex == nil {
		c := s.pickColor()
		a.ColorIndex = &c
	}
	s.dispatch(Put{Day: day, Activity: a})
	s.log.Debug("activity stored", "day", day, "id", a.ID, "name", a.Name, "start", a.StartTime)
	return a, nil
}

// Remove deletes the activity with id from day.
func (s *Store) Remove(day int, id string) error {
	for _, a := range s.state.Days[day] {
		if a.ID == id {
			s.dispatch(Delete{Day: day, ID: id})
			s.log.Debug("activity removed", "day", day, "id", id)
			return nil
		}
	}
	return fmt.Errorf("day %d, id %q: %w", day, id, ErrNotFound)
}

// ListForDay returns the day's activities in insertion order.
func (s *Store) ListForDay(day int) []model.Activity {
	return s.state.Day(day)
}

// Get returns one activity of day.
func (s *Store) Get(day int, id string) (model.Activity, error) {
	for _, a := range s.state.Days[day] {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Activity{}, fmt.Errorf("day %d, id %q: %w", day, id, ErrNotFound)
}
