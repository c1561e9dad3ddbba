package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/conflict"
	"github.com/LovableCodezG/tplan/internal/editor"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var (
	addDay      int
	addName     string
	addCategory string
	addStart    string
	addEnd      string
	addDuration int
	addNotes    string
	addFullDay  bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an activity to a trip day",
	Long: `Add an activity to a trip day. The time range snaps to the configured
step and stays inside the activity window (06:00-22:00 by default; --full-day
uses 00:00-24:00 like the day canvas). The activity is not saved while its
range overlaps another activity of that day.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().IntVar(&addDay, "day", 0, "Day index (see tplan days)")
	addCmd.Flags().StringVar(&addName, "name", "", "Activity name")
	addCmd.Flags().StringVar(&addCategory, "category", string(model.CategoryOther), "meal, sightseeing, transportation, accommodation or other")
	addCmd.Flags().StringVar(&addStart, "start", "09:00", "Start time (HH:MM)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End time (HH:MM)")
	addCmd.Flags().IntVar(&addDuration, "duration", 60, "Duration in minutes, used when --end is not given")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Optional notes")
	addCmd.Flags().BoolVar(&addFullDay, "full-day", false, "Allow the whole 00:00-24:00 day")
}

// parseRange turns start/end/duration flag values into minutes.
func parseRange(start, end string, duration int) (int, int, error) {
	s, err := timecalc.ParseClock(start)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --start: %w", err)
	}
	if end == "" {
		if duration <= 0 {
			return 0, 0, fmt.Errorf("--duration must be positive, got %d", duration)
		}
		return s, s + duration, nil
	}
	e, err := timecalc.ParseClock(end)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --end: %w", err)
	}
	if e <= s {
		return 0, 0, fmt.Errorf("--end %s must be after --start %s", end, start)
	}
	return s, e, nil
}

func (s *session) window(fullDay bool) (editor.Window, error) {
	if fullDay {
		w := editor.FullDay
		w.Step = s.cfg.Editor.StepMinutes
		return w, nil
	}
	w, err := s.cfg.EditorWindow()
	if err != nil {
		return editor.Window{}, userError(err)
	}
	return w, nil
}

// printConflicts explains why an activity cannot be saved.
func printConflicts(w io.Writer, r conflict.Range, res conflict.Result) {
	warn := color.New(color.FgRed, color.Bold)
	fmt.Fprintln(w, warn.Sprintf("%s-%s is taken:", timecalc.FormatClock(r.Start), timecalc.FormatClock(r.End)))
	for _, line := range strings.Split(res.Explain(), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

// commit saves the editor's activity or explains why it is blocked.
func (s *session) commit(cmd *cobra.Command, day int, ed *editor.Editor) (model.Activity, error) {
	a, ok := ed.Commit()
	if !ok {
		if ed.State() == editor.Conflicted {
			printConflicts(cmd.ErrOrStderr(), ed.Range(), ed.Conflicts())
			return model.Activity{}, userError(errors.New("activity not saved: time range is taken"))
		}
		return model.Activity{}, userError(errors.New("activity not saved: name is required"))
	}
	stored, err := s.store.AddOrUpdate(day, a)
	if err != nil {
		return model.Activity{}, userError(err)
	}
	if err := s.save(); err != nil {
		return model.Activity{}, err
	}
	return stored, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	category, err := model.ParseCategory(addCategory)
	if err != nil {
		return userError(err)
	}
	start, end, err := parseRange(addStart, addEnd, addDuration)
	if err != nil {
		return userError(err)
	}

	s, err := openTrip()
	if err != nil {
		return err
	}
	if err := s.checkDay(addDay); err != nil {
		return err
	}
	w, err := s.window(addFullDay)
	if err != nil {
		return err
	}

	ed := editor.NewCustom(w, s.store.ListForDay(addDay), nil)
	_ = ed.SetName(addName)
	_ = ed.SetCategory(category)
	_ = ed.SetNotes(addNotes)
	ed.SetRange(start, end)

	a, err := s.commit(cmd, addDay, ed)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %q on day %d, %s-%s (id %s)\n",
		a.Name, addDay, a.StartTime, timecalc.FormatClock(ed.Range().End), a.ID)
	return nil
}
