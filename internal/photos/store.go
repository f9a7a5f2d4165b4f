// Package photos owns the body-photo records, independent of workout
// data. The list stays sorted newest-first; ids are unique across the
// whole list and healed on load, mirroring the history store.
package photos

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/claude/liftflow/internal/ids"
	"github.com/claude/liftflow/internal/models"
	"github.com/claude/liftflow/internal/storage"
)

// Store persists the photo list as one JSON blob.
type Store struct {
	state *storage.Store
	gen   *ids.Generator
	log   *slog.Logger
}

// NewStore creates a photo store over the given state database.
func NewStore(state *storage.Store, gen *ids.Generator, log *slog.Logger) *Store {
	return &Store{state: state, gen: gen, log: log}
}

// List returns all photos sorted descending by date, ids sanitized.
// Healed ids are written back immediately.
func (s *Store) List() ([]models.PhotoRecord, error) {
	list, changed, err := s.load()
	if err != nil {
		return nil, err
	}
	if changed {
		if err := s.save(list); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Add inserts a new photo and re-sorts the list.
func (s *Store) Add(date, url, note string) (models.PhotoRecord, error) {
	list, _, err := s.load()
	if err != nil {
		return models.PhotoRecord{}, err
	}

	rec := models.PhotoRecord{ID: s.gen.Next(), Date: date, URL: url, Note: note}
	list = append(list, rec)
	sortByDateDesc(list)

	if err := s.save(list); err != nil {
		return models.PhotoRecord{}, err
	}
	return rec, nil
}

// Remove deletes the photo with the given id.
func (s *Store) Remove(id int64) error {
	list, _, err := s.load()
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, p := range list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(list) {
		return fmt.Errorf("photo %d not found", id)
	}
	return s.save(kept)
}

// SelectPair returns the two photos ordered older-first for a
// before/after comparison. Records sharing a date tie-break on
// ascending id so the ordering stays stable.
func (s *Store) SelectPair(idA, idB int64) (before, after models.PhotoRecord, err error) {
	list, _, err := s.load()
	if err != nil {
		return models.PhotoRecord{}, models.PhotoRecord{}, err
	}

	var a, b *models.PhotoRecord
	for i := range list {
		switch list[i].ID {
		case idA:
			a = &list[i]
		case idB:
			b = &list[i]
		}
	}
	if a == nil || b == nil {
		return models.PhotoRecord{}, models.PhotoRecord{}, fmt.Errorf("photo pair not found")
	}

	if a.Date > b.Date || (a.Date == b.Date && a.ID > b.ID) {
		a, b = b, a
	}
	return *a, *b, nil
}

func sortByDateDesc(list []models.PhotoRecord) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date > list[j].Date
		}
		return list[i].ID < list[j].ID
	})
}

// load parses the persisted blob and heals missing or colliding ids.
// The bool result reports whether anything changed.
func (s *Store) load() ([]models.PhotoRecord, bool, error) {
	raw, ok, err := s.state.Get(storage.KeyPhotos)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return []models.PhotoRecord{}, false, nil
	}

	var list []models.PhotoRecord
	if err := json.Unmarshal(raw, &list); err != nil {
		s.log.Warn("photos blob corrupt, treating as empty", "error", err)
		return []models.PhotoRecord{}, false, nil
	}

	changed := false
	seen := make(map[int64]bool, len(list))
	for i := range list {
		if list[i].ID == 0 || seen[list[i].ID] {
			list[i].ID = s.gen.Next()
			changed = true
		}
		seen[list[i].ID] = true
	}
	return list, changed, nil
}

func (s *Store) save(list []models.PhotoRecord) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding photos: %w", err)
	}
	return s.state.Put(storage.KeyPhotos, raw)
}
