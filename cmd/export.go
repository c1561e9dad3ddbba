package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LovableCodezG/tplan/internal/export"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the itinerary to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, yaml, ics, md")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openTrip()
	if err != nil {
		return err
	}

	plans := export.Itinerary(s.trip.Dates, s.store.State())
	items := export.Items(plans)
	w := cmd.OutOrStdout()

	switch exportFormat {
	case "json":
		err = export.WriteJSON(w, items)
	case "yaml":
		err = export.WriteYAML(w, items)
	case "ics":
		err = export.WriteICS(w, items, s.loc, s.cal.Now())
	case "md":
		err = export.WriteMarkdown(w, s.trip.Name, plans)
	case "csv":
		err = export.WriteCSV(w, items)
	default:
		return userError(fmt.Errorf("unknown format %q", exportFormat))
	}
	if err != nil {
		return storageError(err)
	}
	return nil
}
