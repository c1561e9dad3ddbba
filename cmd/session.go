package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/LovableCodezG/tplan/internal/config"
	"github.com/LovableCodezG/tplan/internal/dayrange"
	"github.com/LovableCodezG/tplan/internal/logx"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/schedule"
	"github.com/LovableCodezG/tplan/internal/storage"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

// session is everything a command needs: data dir, config, logger, clock
// and, when a trip exists, the trip and its schedule store.
type session struct {
	base  string
	cfg   config.Config
	loc   *time.Location
	log   *slog.Logger
	cal   timecalc.Calendar
	trip  model.TripFile
	store *schedule.Store
}

func openBase() (*session, error) {
	base, err := storage.BaseDir()
	if err != nil {
		return nil, storageError(err)
	}
	cfg, err := config.Load(base)
	if err != nil {
		return nil, userError(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, userError(err)
	}
	cal := timecalc.SystemCalendar{Location: loc}
	return &session{
		base: base,
		cfg:  cfg,
		loc:  loc,
		log:  logx.New(os.Stderr, cfg.LogLevel),
		cal:  cal,
	}, nil
}

// openTrip opens the session and loads the current trip into a store.
func openTrip() (*session, error) {
	s, err := openBase()
	if err != nil {
		return nil, err
	}
	tf, err := storage.LoadTrip(s.base)
	if errors.Is(err, storage.ErrNoTrip) {
		return nil, userError(err)
	}
	if err != nil {
		s.log.Warn("trip file unreadable", "dir", s.base, "err", err)
		return nil, storageError(err)
	}
	st, err := storage.ScheduleState(tf)
	if err != nil {
		return nil, storageError(err)
	}
	s.trip = tf
	s.store = schedule.NewStore(
		timecalc.TimestampIDs{Calendar: s.cal},
		schedule.WithState(st),
		schedule.WithLogger(s.log),
	)
	return s, nil
}

// save writes the store back into the trip file.
func (s *session) save() error {
	storage.SetSchedule(&s.trip, s.store.State())
	if err := storage.SaveTrip(s.base, s.trip); err != nil {
		return storageError(err)
	}
	s.log.Debug("trip saved", "dir", s.base, "days", len(s.trip.Days))
	return nil
}

func (s *session) days() []dayrange.Day {
	return dayrange.Resolve(s.trip.Dates)
}

// checkDay rejects day indices outside the trip. A trip without dates cannot
// be scheduled at all.
func (s *session) checkDay(day int) error {
	n := len(s.days())
	if n == 0 {
		return userError(fmt.Errorf("%w; run `tplan init` with --date or --from/--to", dayrange.ErrNoDates))
	}
	if day < 0 || day >= n {
		return userError(fmt.Errorf("day %d is outside the trip (days 0-%d)", day, n-1))
	}
	return nil
}

func (s *session) tripStart() (time.Time, error) {
	start, err := dayrange.First(s.trip.Dates)
	if err != nil {
		return time.Time{}, userError(err)
	}
	return start, nil
}

func (s *session) dayLabel(day int) string {
	days := s.days()
	if day >= 0 && day < len(days) {
		return fmt.Sprintf("Day %d – %s", day, days[day].Date.Format("Mon, Jan 2 2006"))
	}
	return fmt.Sprintf("Day %d", day)
}
