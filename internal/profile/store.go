// Package profile persists the single user record.
package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/claude/liftflow/internal/models"
	"github.com/claude/liftflow/internal/storage"
)

// Store reads and rewrites the profile blob. The record is created with
// defaults on first load and only ever overwritten, never deleted.
type Store struct {
	state *storage.Store
	log   *slog.Logger
}

// NewStore creates a profile store over the given state database.
func NewStore(state *storage.Store, log *slog.Logger) *Store {
	return &Store{state: state, log: log}
}

// Get returns the stored profile, or the default record when absent or
// corrupt. Absent fields keep their defaults.
func (s *Store) Get() (models.Profile, error) {
	p := models.DefaultProfile()

	raw, ok, err := s.state.Get(storage.KeyProfile)
	if err != nil {
		return p, err
	}
	if !ok {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.Warn("profile blob corrupt, using defaults", "error", err)
		return models.DefaultProfile(), nil
	}
	if p.WeeklyGoal < 1 || p.WeeklyGoal > 7 {
		p.WeeklyGoal = models.DefaultProfile().WeeklyGoal
	}
	return p, nil
}

// Save overwrites the whole record and broadcasts the change.
func (s *Store) Save(p models.Profile) error {
	if p.WeeklyGoal < 1 || p.WeeklyGoal > 7 {
		return fmt.Errorf("weeklyGoal %d out of range 1-7", p.WeeklyGoal)
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return s.state.Put(storage.KeyProfile, raw)
}
