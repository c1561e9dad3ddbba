package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/canvas"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var (
	showDay  int
	showFrom string
	showTo   string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw a trip day as a 24-hour timeline",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&showDay, "day", 0, "Day index")
	showCmd.Flags().StringVar(&showFrom, "from", "00:00", "First hour shown (HH:MM)")
	showCmd.Flags().StringVar(&showTo, "to", "24:00", "Last hour shown (HH:MM)")
}

func runShow(cmd *cobra.Command, args []string) error {
	from, err := timecalc.ParseClock(showFrom)
	if err != nil {
		return userError(fmt.Errorf("invalid --from: %w", err))
	}
	to, err := timecalc.ParseClock(showTo)
	if err != nil {
		return userError(fmt.Errorf("invalid --to: %w", err))
	}

	s, err := openTrip()
	if err != nil {
		return err
	}
	if err := s.checkDay(showDay); err != nil {
		return err
	}

	blocks := s.cfg.CanvasLayout().Project(s.store.ListForDay(showDay))
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.dayLabel(showDay))
	text := canvas.Text{RowMinutes: s.cfg.Canvas.RowMinutes, From: from, To: to}
	return text.Render(out, blocks)
}
