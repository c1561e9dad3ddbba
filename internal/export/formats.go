package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/LovableCodezG/tplan/internal/timecalc"
)

// Row is the flat, serialisable form of an itinerary item.
type Row struct {
	Day      int    `json:"day" yaml:"day"`
	Date     string `json:"date,omitempty" yaml:"date,omitempty"`
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Duration int    `json:"duration_minutes" yaml:"duration_minutes"`
	Category string `json:"category" yaml:"category"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Rows flattens items for serialisation.
func Rows(items []Item) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		r := Row{
			Day:      it.Day,
			ID:       it.Activity.ID,
			Name:     it.Activity.Name,
			Start:    timecalc.FormatClock(it.Start),
			End:      timecalc.FormatClock(it.End),
			Duration: it.Activity.Duration,
			Category: string(it.Activity.Category),
			Source:   string(it.Activity.Source),
			Notes:    it.Activity.Notes,
		}
		if !it.Date.IsZero() {
			r.Date = it.Date.Format(timecalc.DateLayout)
		}
		rows = append(rows, r)
	}
	return rows
}

// WriteJSON writes the rows as an indented JSON array.
func WriteJSON(w io.Writer, items []Item) error {
	data, err := json.MarshalIndent(Rows(items), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteYAML writes the rows as a YAML sequence.
func WriteYAML(w io.Writer, items []Item) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Rows(items)); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// WriteCSV writes one line per activity with a header row.
func WriteCSV(w io.Writer, items []Item) error {
	if _, err := fmt.Fprintln(w, "day,date,name,start,end,duration_minutes,category,notes"); err != nil {
		return err
	}
	for _, r := range Rows(items) {
		_, err := fmt.Fprintf(w, "%d,%s,%s,%s,%s,%d,%s,%s\n",
			r.Day,
			csvEscape(r.Date),
			csvEscape(r.Name),
			r.Start,
			r.End,
			r.Duration,
			csvEscape(r.Category),
			csvEscape(r.Notes),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteMarkdown writes the itinerary as a Markdown document: one heading per
// day and a bullet per activity.
func WriteMarkdown(w io.Writer, title string, plans []DayPlan) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)
	for _, p := range plans {
		fmt.Fprintf(&b, "\n## Day %d", p.Index)
		if !p.Date.IsZero() {
			fmt.Fprintf(&b, " (%s)", p.Date.Format("Mon, Jan 2 2006"))
		}
		b.WriteString("\n\n")
		if len(p.Items) == 0 {
			b.WriteString("_Nothing planned._\n")
			continue
		}
		for _, it := range p.Items {
			fmt.Fprintf(&b, "- %s-%s **%s** (%s, %s)",
				timecalc.FormatClock(it.Start), timecalc.FormatClock(it.End),
				it.Activity.Name, it.Activity.Category, timecalc.FormatMinutes(it.Activity.Duration))
			if it.Activity.Notes != "" {
				fmt.Fprintf(&b, ": %s", strings.ReplaceAll(it.Activity.Notes, "\n", " "))
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\nTotal: %s\n", timecalc.FormatMinutes(p.TotalMinutes))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
