package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/schedule"
)

// ErrNoTrip is returned when no trip has been set up yet.
var ErrNoTrip = errors.New("no trip set up; run `tplan init` first")

// HomeEnv overrides the data directory.
const HomeEnv = "TPLAN_HOME"

// BaseDir returns the root data directory ($TPLAN_HOME or ~/.tplan).
func BaseDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tplan"), nil
}

func tripFilePath(base string) string {
	return filepath.Join(base, "trip.json")
}

// LoadTrip loads the trip currently being planned.
func LoadTrip(base string) (model.TripFile, error) {
	path := tripFilePath(base)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.TripFile{}, ErrNoTrip
	}
	if err != nil {
		return model.TripFile{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var tf model.TripFile
	if err := json.Unmarshal(data, &tf); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return model.TripFile{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	if tf.Days == nil {
		tf.Days = map[string][]model.Activity{}
	}
	return tf, nil
}

// SaveTrip atomically writes the trip file.
func SaveTrip(base string, tf model.TripFile) error {
	path := tripFilePath(base)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(tf, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// DeleteTrip removes the trip file, discarding its schedule.
func DeleteTrip(base string) error {
	err := os.Remove(tripFilePath(base))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage error removing trip: %w", err)
	}
	return nil
}

// ScheduleState converts the stored day map into schedule state.
func ScheduleState(tf model.TripFile) (schedule.State, error) {
	st := schedule.State{Days: make(map[int][]model.Activity, len(tf.Days))}
	for key, acts := range tf.Days {
		day, err := strconv.Atoi(key)
		if err != nil || day < 0 {
			return schedule.State{}, fmt.Errorf("storage error: invalid day key %q", key)
		}
		if len(acts) > 0 {
			st.Days[day] = acts
		}
	}
	return st, nil
}

// SetSchedule writes schedule state back into the trip's day map.
func SetSchedule(tf *model.TripFile, st schedule.State) {
	tf.Days = make(map[string][]model.Activity, len(st.Days))
	for _, day := range st.DayIndices() {
		tf.Days[strconv.Itoa(day)] = st.Day(day)
	}
}
