package cmd

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/storage"
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "List saved trips",
	Args:  cobra.NoArgs,
	RunE:  runTrips,
}

func runTrips(cmd *cobra.Command, args []string) error {
	s, err := openBase()
	if err != nil {
		return err
	}
	trips, err := storage.NewTripStore(s.base).List()
	if err != nil {
		return storageError(err)
	}
	w := cmd.OutOrStdout()
	if len(trips) == 0 {
		fmt.Fprintln(w, "No trips saved.")
		return nil
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("NAME", "DESTINATION", "DATES", "STATUS", "MEMBERS")
	for _, t := range trips {
		table.AddRow(t.Name, t.Destination, t.Dates, t.Status, strings.Join(t.Members, ", "))
	}
	fmt.Fprintln(w, table)
	return nil
}
