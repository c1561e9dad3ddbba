package canvas

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

var palette = [model.PaletteSize]color.Attribute{
	color.FgRed,
	color.FgGreen,
	color.FgYellow,
	color.FgBlue,
	color.FgMagenta,
	color.FgCyan,
	color.FgHiRed,
	color.FgHiGreen,
}

var icons = map[model.Category]string{
	model.CategoryMeal:           "meal",
	model.CategorySightseeing:    "sight",
	model.CategoryTransportation: "transit",
	model.CategoryAccommodation:  "stay",
	model.CategoryOther:          "other",
}

// Icon returns the short label shown for a category.
func Icon(c model.Category) string {
	if s, ok := icons[c]; ok {
		return s
	}
	return icons[model.CategoryOther]
}

// Paint colours s with the activity's palette entry.
func Paint(a model.Activity, s string) string {
	if a.ColorIndex == nil || *a.ColorIndex < 0 || *a.ColorIndex >= len(palette) {
		return s
	}
	return color.New(palette[*a.ColorIndex]).Sprint(s)
}

// Text renders blocks as terminal rows of RowMinutes each between From and
// To (minutes from midnight). A block's label goes on its first row and a
// bar marks every row it covers.
type Text struct {
	RowMinutes int
	From, To   int
}

// DefaultText shows the whole day in half-hour rows.
var DefaultText = Text{RowMinutes: 30, From: 0, To: timecalc.MinutesPerDay}

// Render writes the canvas to w.
func (t Text) Render(w io.Writer, blocks []Block) error {
	step := t.RowMinutes
	if step <= 0 {
		step = 30
	}
	from := timecalc.Clamp(t.From, 0, timecalc.MinutesPerDay)
	to := timecalc.Clamp(t.To, from, timecalc.MinutesPerDay)

	for row := from; row < to; row += step {
		var cells []string
		for _, b := range blocks {
			if b.Start >= row+step || b.End <= row {
				continue
			}
			if b.Start >= row {
				label := fmt.Sprintf("%s %s [%s] %s", timecalc.FormatClock(b.Start), b.Activity.Name,
					Icon(b.Activity.Category), timecalc.FormatMinutes(b.Activity.Duration))
				cells = append(cells, Paint(b.Activity, "█ "+label))
			} else {
				cells = append(cells, Paint(b.Activity, "█"))
			}
		}
		line := timecalc.FormatClock(row) + " │"
		if len(cells) > 0 {
			line += " " + strings.Join(cells, "  ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
