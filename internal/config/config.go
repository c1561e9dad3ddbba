package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/LovableCodezG/tplan/internal/canvas"
	"github.com/LovableCodezG/tplan/internal/editor"
	"github.com/LovableCodezG/tplan/internal/lodging"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

// Config is <data dir>/config.json. Full-line // comments are allowed.
type Config struct {
	Editor   EditorConfig  `json:"editor"`
	Canvas   CanvasConfig  `json:"canvas"`
	Lodging  LodgingConfig `json:"lodging"`
	Timezone string        `json:"timezone"`
	LogLevel string        `json:"log_level"`
}

// EditorConfig bounds the activity time-range dialog.
type EditorConfig struct {
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	StepMinutes int    `json:"step_minutes"`
}

// CanvasConfig holds the day canvas geometry.
type CanvasConfig struct {
	PixelsPerMinute int `json:"pixels_per_minute"`
	TopPadding      int `json:"top_padding"`
	MinBlockHeight  int `json:"min_block_height"`
	RowMinutes      int `json:"row_minutes"`
}

// LodgingConfig holds the defaults for hotel stays.
type LodgingConfig struct {
	CheckInTime    string `json:"check_in_time"`
	CheckOutTime   string `json:"check_out_time"`
	BreakfastStart string `json:"breakfast_start"`
	BreakfastEnd   string `json:"breakfast_end"`
}

// defaultConfig mirrors configTemplate.
func defaultConfig() Config {
	return Config{
		Editor: EditorConfig{
			WindowStart: "06:00",
			WindowEnd:   "22:00",
			StepMinutes: 30,
		},
		Canvas: CanvasConfig{
			PixelsPerMinute: canvas.DefaultLayout.PixelsPerMinute,
			TopPadding:      canvas.DefaultLayout.TopPadding,
			MinBlockHeight:  canvas.DefaultLayout.MinBlockHeight,
			RowMinutes:      canvas.DefaultText.RowMinutes,
		},
		Lodging: LodgingConfig{
			CheckInTime:    lodging.DefaultCheckIn,
			CheckOutTime:   lodging.DefaultCheckOut,
			BreakfastStart: lodging.DefaultBreakfastStart,
			BreakfastEnd:   lodging.DefaultBreakfastEnd,
		},
		Timezone: "",
		LogLevel: "warn",
	}
}

// configTemplate is written to disk the first time Load finds no file.
const configTemplate = `// tplan configuration
//
// All settings are optional; the built-in defaults shown below are used for
// anything left out.
{
  // ── Activity dialog ──────────────────────────────────────────────────────
  "editor": {
    // Earliest and latest time the range handles can reach (HH:MM).
    // The day canvas itself always spans the full 00:00-24:00.
    "window_start": "06:00",
    "window_end": "22:00",

    // Handles snap to multiples of this many minutes.
    "step_minutes": 30
  },

  // ── Day canvas ───────────────────────────────────────────────────────────
  "canvas": {
    "pixels_per_minute": 1,
    "top_padding": 16,
    // Short activities are drawn at least this tall.
    "min_block_height": 40,
    // Minutes per line in the terminal rendering of tplan show.
    "row_minutes": 30
  },

  // ── Hotel stays ──────────────────────────────────────────────────────────
  "lodging": {
    "check_in_time": "15:00",
    "check_out_time": "11:00",
    "breakfast_start": "07:00",
    "breakfast_end": "09:00"
  },

  // IANA timezone used for calendar export, e.g. "Europe/Lisbon".
  // Leave empty to use the local timezone.
  "timezone": "",

  // One of debug, info, warn, error.
  "log_level": "warn"
}
`

// configFilePath returns the path to <base>/config.json.
func configFilePath(base string) string {
	return filepath.Join(base, "config.json")
}

// stripLineComments drops full-line // comments so the rest parses as JSON.
// A // after a value on the same line is left alone.
func stripLineComments(data []byte) []byte {
	lines := bytes.Split(data, []byte("\n"))
	kept := lines[:0]
	for _, line := range lines {
		if !bytes.HasPrefix(bytes.TrimSpace(line), []byte("//")) {
			kept = append(kept, line)
		}
	}
	return bytes.Join(kept, []byte("\n"))
}

// Load reads <base>/config.json over the defaults. A missing file is not an
// error: the defaults are returned and the template is written for next time.
func Load(base string) (Config, error) {
	path := configFilePath(base)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := writeDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config template not written to %s: %v\n", path, err)
		}
		return defaultConfig(), nil
	case err != nil:
		return defaultConfig(), fmt.Errorf("read %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("config %s is not valid JSON: %w (remove it to get the defaults back)", path, err)
	}
	if err := cfg.validate(); err != nil {
		return defaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.EditorWindow(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// EditorWindow returns the configured activity dialog bounds.
func (c Config) EditorWindow() (editor.Window, error) {
	start, err := timecalc.ParseClock(c.Editor.WindowStart)
	if err != nil {
		return editor.Window{}, fmt.Errorf("editor.window_start: %w", err)
	}
	end, err := timecalc.ParseClock(c.Editor.WindowEnd)
	if err != nil {
		return editor.Window{}, fmt.Errorf("editor.window_end: %w", err)
	}
	if c.Editor.StepMinutes <= 0 {
		return editor.Window{}, fmt.Errorf("editor.step_minutes must be positive, got %d", c.Editor.StepMinutes)
	}
	if end-start < c.Editor.StepMinutes {
		return editor.Window{}, fmt.Errorf("editor window %s-%s is shorter than one step", c.Editor.WindowStart, c.Editor.WindowEnd)
	}
	return editor.Window{Start: start, End: end, Step: c.Editor.StepMinutes}, nil
}

// CanvasLayout returns the configured canvas geometry.
func (c Config) CanvasLayout() canvas.Layout {
	return canvas.Layout{
		PixelsPerMinute: c.Canvas.PixelsPerMinute,
		TopPadding:      c.Canvas.TopPadding,
		MinBlockHeight:  c.Canvas.MinBlockHeight,
	}
}

// Location resolves the configured timezone; empty means time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}
