package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmDay int

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an activity from a trip day",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().IntVar(&rmDay, "day", 0, "Day index of the activity")
}

func runRm(cmd *cobra.Command, args []string) error {
	s, err := openTrip()
	if err != nil {
		return err
	}
	a, err := s.store.Get(rmDay, args[0])
	if err != nil {
		return userError(err)
	}
	if err := s.store.Remove(rmDay, a.ID); err != nil {
		return userError(err)
	}
	if err := s.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from day %d\n", a.Name, rmDay)
	return nil
}
