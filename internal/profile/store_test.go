package profile

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/claude/liftflow/internal/models"
	"github.com/claude/liftflow/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.Store) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	if err := storage.RunMigrations(path, "../../migrations"); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	state, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { state.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(state, log), state
}

func TestGetDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	p, err := s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Nickname != "健友" {
		t.Errorf("nickname = %q, want 健友", p.Nickname)
	}
	if p.Status != models.StatusBulking {
		t.Errorf("status = %q, want %q", p.Status, models.StatusBulking)
	}
	if p.WeeklyGoal != 3 {
		t.Errorf("weeklyGoal = %d, want 3", p.WeeklyGoal)
	}
}

func TestSaveGetRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	p := models.DefaultProfile()
	p.Nickname = "小明"
	p.Status = models.StatusCutting
	p.Weight = "72.5"
	p.WeeklyGoal = 5

	if err := s.Save(p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != p {
		t.Errorf("got %+v, want %+v", got, p)
	}
}

func TestSaveRejectsBadWeeklyGoal(t *testing.T) {
	s, _ := newTestStore(t)

	p := models.DefaultProfile()
	p.WeeklyGoal = 0
	if err := s.Save(p); err == nil {
		t.Error("weeklyGoal 0 accepted")
	}
	p.WeeklyGoal = 8
	if err := s.Save(p); err == nil {
		t.Error("weeklyGoal 8 accepted")
	}
}

func TestCorruptBlobFallsBackToDefaults(t *testing.T) {
	s, state := newTestStore(t)

	state.Put(storage.KeyProfile, []byte(`{"nickname":`))
	p, err := s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != models.DefaultProfile() {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestOutOfRangeGoalClampedOnLoad(t *testing.T) {
	s, state := newTestStore(t)

	state.Put(storage.KeyProfile, []byte(`{"nickname":"x","weeklyGoal":12}`))
	p, err := s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.WeeklyGoal != 3 {
		t.Errorf("weeklyGoal = %d, want 3", p.WeeklyGoal)
	}
}
