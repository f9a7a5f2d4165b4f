// Package history owns the date-indexed workout log: one ordered list
// of exercises per calendar date, persisted as a single JSON blob.
package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/claude/liftflow/internal/ids"
	"github.com/claude/liftflow/internal/models"
	"github.com/claude/liftflow/internal/storage"
)

// Store reads and rewrites the history blob. A malformed blob is
// treated as empty history: availability wins over surfacing data loss.
type Store struct {
	state *storage.Store
	gen   *ids.Generator
	log   *slog.Logger
}

// NewStore creates a history store over the given state database.
func NewStore(state *storage.Store, gen *ids.Generator, log *slog.Logger) *Store {
	return &Store{state: state, gen: gen, log: log}
}

// All returns the full history mapping, sanitized. Never nil.
func (s *Store) All() (models.History, error) {
	h, _, err := s.loadAll()
	return h, err
}

// LoadDay returns the sanitized exercise list for a date, or an empty
// list if absent. Sanitization runs on every load because the blob may
// have been produced by an older writer that allowed missing or
// colliding ids; healed ids are written back immediately.
func (s *Store) LoadDay(date string) ([]models.Exercise, error) {
	h, changed, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	if changed {
		if err := s.saveAll(h); err != nil {
			return nil, err
		}
	}
	day := h[date]
	if day == nil {
		return []models.Exercise{}, nil
	}
	return day, nil
}

// SaveDay replaces the entire entry for a date and persists the whole
// mapping. The state store broadcasts the change to subscribers.
func (s *Store) SaveDay(date string, exercises []models.Exercise) error {
	h, _, err := s.loadAll()
	if err != nil {
		return err
	}
	s.sanitizeDay(exercises)
	h[date] = exercises
	return s.saveAll(h)
}

// DeleteDay removes the entry for a date entirely.
func (s *Store) DeleteDay(date string) error {
	h, _, err := s.loadAll()
	if err != nil {
		return err
	}
	delete(h, date)
	return s.saveAll(h)
}

// ListNonEmptyDates returns dates with at least one exercise, sorted
// descending, optionally excluding one date.
func (s *Store) ListNonEmptyDates(excluding string) ([]string, error) {
	h, _, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(h))
	for date, day := range h {
		if len(day) > 0 && date != excluding {
			dates = append(dates, date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

// CopyDay deep-copies the source day into the target day: every
// exercise and set gets a fresh id, completion is reset, and weights,
// reps and RPE carry over as a suggested baseline. The copy appends to
// the target rather than replacing it. Returns the target's new list.
func (s *Store) CopyDay(sourceDate, targetDate string) ([]models.Exercise, error) {
	h, _, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	source := h[sourceDate]
	if len(source) == 0 {
		return nil, fmt.Errorf("no exercises on %s", sourceDate)
	}

	// The source ids may come from a foreign writer whose id stream
	// overlaps the generator's, so every minted id is checked against
	// the ids already present on both days.
	used := make(map[int64]bool)
	for _, day := range [][]models.Exercise{source, h[targetDate]} {
		for _, ex := range day {
			used[ex.LocalID] = true
			for _, set := range ex.Sets {
				used[set.ID] = true
			}
		}
	}
	fresh := func() int64 {
		for {
			id := s.gen.Next()
			if !used[id] {
				used[id] = true
				return id
			}
		}
	}

	copied := make([]models.Exercise, 0, len(source))
	for _, ex := range source {
		dup := ex
		dup.LocalID = fresh()
		dup.Sets = make([]models.WorkoutSet, len(ex.Sets))
		for i, set := range ex.Sets {
			set.ID = fresh()
			set.Completed = false
			dup.Sets[i] = set
		}
		copied = append(copied, dup)
	}

	target := append(h[targetDate], copied...)
	h[targetDate] = target
	if err := s.saveAll(h); err != nil {
		return nil, err
	}
	return target, nil
}

// DaySummary formats a date's completed sets for the coach: one line
// per exercise, sets comma-joined, warm-up sets marked.
func (s *Store) DaySummary(date string) (string, error) {
	day, err := s.LoadDay(date)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 訓練日期：%s\n", date)

	any := false
	for _, ex := range day {
		var parts []string
		for _, set := range ex.Sets {
			if !set.Completed {
				continue
			}
			line := formatNumber(set.Kg) + "kg x " + strconv.Itoa(set.Reps)
			if set.RPE > 0 {
				line += " @RPE" + formatNumber(set.RPE)
			}
			if set.IsWarmup {
				line += "(暖)"
			}
			parts = append(parts, line)
		}
		if len(parts) == 0 {
			continue
		}
		any = true
		fmt.Fprintf(&b, "🔹 %s: %s\n", ex.Name, strings.Join(parts, ", "))
	}

	if !any {
		return b.String() + "（今日無有效訓練紀錄）", nil
	}
	return b.String(), nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// loadAll parses the persisted blob. The bool result reports whether
// sanitization changed anything and the blob should be rewritten.
func (s *Store) loadAll() (models.History, bool, error) {
	raw, ok, err := s.state.Get(storage.KeyHistory)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return models.History{}, false, nil
	}

	var h models.History
	if err := json.Unmarshal(raw, &h); err != nil {
		s.log.Warn("history blob corrupt, treating as empty", "error", err)
		return models.History{}, false, nil
	}
	if h == nil {
		h = models.History{}
	}

	changed := false
	for _, day := range h {
		if s.sanitizeDay(day) {
			changed = true
		}
	}
	return h, changed, nil
}

// sanitizeDay backfills missing exercise localIds and set ids, and
// regenerates any that collide within their scope. Colliding ids once
// caused removals to delete the wrong item, so this runs on every load.
func (s *Store) sanitizeDay(day []models.Exercise) bool {
	changed := false
	seen := make(map[int64]bool, len(day))
	for i := range day {
		ex := &day[i]
		if ex.LocalID == 0 || seen[ex.LocalID] {
			ex.LocalID = s.gen.Next()
			changed = true
		}
		seen[ex.LocalID] = true

		setSeen := make(map[int64]bool, len(ex.Sets))
		for j := range ex.Sets {
			set := &ex.Sets[j]
			if set.ID == 0 || setSeen[set.ID] {
				set.ID = s.gen.Next()
				changed = true
			}
			setSeen[set.ID] = true
		}
	}
	return changed
}

func (s *Store) saveAll(h models.History) error {
	raw, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	return s.state.Put(storage.KeyHistory, raw)
}
