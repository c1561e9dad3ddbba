package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/conflict"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var (
	checkDay     int
	checkStart   string
	checkEnd     string
	checkExclude string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a time range is free on a trip day",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkDay, "day", 0, "Day index")
	checkCmd.Flags().StringVar(&checkStart, "start", "", "Range start (HH:MM)")
	checkCmd.Flags().StringVar(&checkEnd, "end", "", "Range end (HH:MM)")
	checkCmd.Flags().StringVar(&checkExclude, "exclude", "", "Activity id to ignore, e.g. the one being moved")
	_ = checkCmd.MarkFlagRequired("start")
	_ = checkCmd.MarkFlagRequired("end")
}

func runCheck(cmd *cobra.Command, args []string) error {
	start, end, err := parseRange(checkStart, checkEnd, 0)
	if err != nil {
		return userError(err)
	}
	s, err := openTrip()
	if err != nil {
		return err
	}

	r := conflict.Range{Start: start, End: end}
	res := conflict.Check(r, s.store.ListForDay(checkDay), checkExclude)
	if res.Conflict {
		printConflicts(cmd.OutOrStdout(), r, res)
		return userError(errors.New("time range is taken"))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s-%s is free on day %d\n",
		timecalc.FormatClock(start), timecalc.FormatClock(end), checkDay)
	return nil
}
