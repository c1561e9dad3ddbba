package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/editor"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/schedule"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var (
	editDay      int
	editName     string
	editCategory string
	editStart    string
	editEnd      string
	editDuration int
	editNotes    string
	editFullDay  bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change an activity",
	Long: `Change an activity. Only the given flags change. Activities that came
from a suggested place (hotel stays included) only allow --start, --end and
--duration.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().IntVar(&editDay, "day", 0, "Day index of the activity")
	editCmd.Flags().StringVar(&editName, "name", "", "New name")
	editCmd.Flags().StringVar(&editCategory, "category", "", "New category")
	editCmd.Flags().StringVar(&editStart, "start", "", "New start time (HH:MM)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "New end time (HH:MM)")
	editCmd.Flags().IntVar(&editDuration, "duration", 0, "New duration in minutes")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "New notes")
	editCmd.Flags().BoolVar(&editFullDay, "full-day", false, "Allow the whole 00:00-24:00 day")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	s, err := openTrip()
	if err != nil {
		return err
	}
	orig, err := s.store.Get(editDay, id)
	if errors.Is(err, schedule.ErrNotFound) {
		return userError(err)
	}
	if err != nil {
		return storageError(err)
	}
	w, err := s.window(editFullDay)
	if err != nil {
		return err
	}

	ed := editor.For(w, s.store.ListForDay(editDay), orig)
	flags := cmd.Flags()
	if flags.Changed("name") {
		if err := ed.SetName(editName); err != nil {
			return userError(fmt.Errorf("--name: %w", err))
		}
	}
	if flags.Changed("category") {
		c, err := model.ParseCategory(editCategory)
		if err != nil {
			return userError(err)
		}
		if err := ed.SetCategory(c); err != nil {
			return userError(fmt.Errorf("--category: %w", err))
		}
	}
	if flags.Changed("notes") {
		if err := ed.SetNotes(editNotes); err != nil {
			return userError(fmt.Errorf("--notes: %w", err))
		}
	}
	if err := applyTimeEdits(ed, flags.Changed("start"), flags.Changed("end"), flags.Changed("duration")); err != nil {
		return userError(err)
	}

	a, err := s.commit(cmd, editDay, ed)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %q on day %d, %s-%s\n",
		a.Name, editDay, a.StartTime, timecalc.FormatClock(ed.Range().End))
	return nil
}

// applyTimeEdits moves the editor's handles according to the time flags that
// were given, in the order a user would drag them: start, then end or length.
func applyTimeEdits(ed *editor.Editor, start, end, duration bool) error {
	if start {
		if err := ed.SetStartTime(editStart); err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
	}
	switch {
	case end:
		e, err := timecalc.ParseClock(editEnd)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
		ed.DragEnd(e)
	case duration:
		if editDuration <= 0 {
			return fmt.Errorf("--duration must be positive, got %d", editDuration)
		}
		ed.SetDuration(editDuration)
	}
	return nil
}
