package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/LovableCodezG/tplan/internal/model"
)

// tripsKey is the single key holding every finished trip summary.
const tripsKey = "trips"

// TripStore keeps the dashboard's list of planned trips.
type TripStore struct {
	d *diskv.Diskv
}

// NewTripStore opens the summary store under base.
func NewTripStore(base string) *TripStore {
	return &TripStore{d: diskv.New(diskv.Options{
		BasePath:     filepath.Join(base, "store"),
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
		FilePerm:     0o600,
		PathPerm:     0o700,
	})}
}

// List returns all trip summaries, oldest first.
func (s *TripStore) List() ([]model.TripSummary, error) {
	if !s.d.Has(tripsKey) {
		return []model.TripSummary{}, nil
	}
	data, err := s.d.Read(tripsKey)
	if err != nil {
		return nil, fmt.Errorf("storage error reading trips: %w", err)
	}
	var out []model.TripSummary
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("corrupt trip list: %w", err)
	}
	if out == nil {
		out = []model.TripSummary{}
	}
	return out, nil
}

// Append adds a summary, replacing any earlier one with the same id.
func (s *TripStore) Append(t model.TripSummary) error {
	all, err := s.List()
	if err != nil {
		return err
	}
	replaced := false
	for i := range all {
		if all[i].ID == t.ID {
			all[i] = t
			replaced = true
		}
	}
	if !replaced {
		all = append(all, t)
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling trips: %w", err)
	}
	if err := s.d.Write(tripsKey, data); err != nil {
		return fmt.Errorf("storage error writing trips: %w", err)
	}
	return nil
}
