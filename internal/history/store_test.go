package history

import (
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/claude/liftflow/internal/ids"
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
	return NewStore(state, ids.NewGenerator(), log), state
}

func benchDay(gen *ids.Generator) []models.Exercise {
	return []models.Exercise{
		{
			ID: "bench_press", Name: "槓鈴臥推", Part: "胸部", LocalID: gen.Next(),
			Sets: []models.WorkoutSet{
				{ID: gen.Next(), Kg: 60, Reps: 10, RPE: 7, Completed: true},
				{ID: gen.Next(), Kg: 60, Reps: 8, RPE: 8},
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	gen := ids.NewGenerator()

	day := benchDay(gen)
	if err := s.SaveDay("2024-03-01", day); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := s.LoadDay("2024-03-01")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d exercises, want 1", len(loaded))
	}
	if loaded[0].Name != "槓鈴臥推" {
		t.Errorf("name = %q", loaded[0].Name)
	}
	if len(loaded[0].Sets) != 2 {
		t.Fatalf("loaded %d sets, want 2", len(loaded[0].Sets))
	}
	if loaded[0].Sets[0].Kg != 60 || loaded[0].Sets[0].Reps != 10 {
		t.Errorf("set = %+v", loaded[0].Sets[0])
	}
}

func TestLoadDayAbsent(t *testing.T) {
	s, _ := newTestStore(t)

	day, err := s.LoadDay("2024-01-01")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if day == nil || len(day) != 0 {
		t.Errorf("day = %v, want empty list", day)
	}
}

func TestCorruptBlobTreatedAsEmpty(t *testing.T) {
	s, state := newTestStore(t)

	if err := state.Put(storage.KeyHistory, []byte(`{not json`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	day, err := s.LoadDay("2024-03-01")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(day) != 0 {
		t.Errorf("day = %v, want empty", day)
	}

	// Writes must still work afterwards.
	if err := s.SaveDay("2024-03-01", benchDay(ids.NewGenerator())); err != nil {
		t.Fatalf("save after corrupt blob: %v", err)
	}
}

func TestSanitizeDuplicateLocalIDs(t *testing.T) {
	s, state := newTestStore(t)

	// A legacy writer produced two exercises sharing localId 5.
	blob := `{"2024-03-01":[
		{"id":"squat","name":"槓鈴深蹲","part":"腿部","localId":5,"sets":[{"id":1,"kg":100,"reps":5,"completed":true}]},
		{"id":"deadlift","name":"傳統硬舉","part":"背部","localId":5,"sets":[{"id":1,"kg":120,"reps":3,"completed":true}]}
	]}`
	if err := state.Put(storage.KeyHistory, []byte(blob)); err != nil {
		t.Fatalf("put: %v", err)
	}

	day, err := s.LoadDay("2024-03-01")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(day) != 2 {
		t.Fatalf("loaded %d exercises, want 2", len(day))
	}
	if day[0].LocalID == 0 || day[1].LocalID == 0 {
		t.Error("sanitized localId is zero")
	}
	if day[0].LocalID == day[1].LocalID {
		t.Fatalf("localIds still collide: %d", day[0].LocalID)
	}

	// Healed ids must be persisted so a later removal hits one item only.
	raw, _, err := state.Get(storage.KeyHistory)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var h models.History
	if err := json.Unmarshal(raw, &h); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	persisted := h["2024-03-01"]
	if persisted[0].LocalID == persisted[1].LocalID {
		t.Error("persisted blob still has colliding localIds")
	}

	// Removing one exercise removes exactly one (the historical bug).
	var kept []models.Exercise
	for _, ex := range day {
		if ex.LocalID != day[0].LocalID {
			kept = append(kept, ex)
		}
	}
	if err := s.SaveDay("2024-03-01", kept); err != nil {
		t.Fatalf("save: %v", err)
	}
	after, _ := s.LoadDay("2024-03-01")
	if len(after) != 1 {
		t.Fatalf("after removal %d exercises, want 1", len(after))
	}
	if after[0].ID != "deadlift" {
		t.Errorf("wrong exercise removed, kept %s", after[0].ID)
	}
}

func TestSanitizeBackfillsMissingSetIDs(t *testing.T) {
	s, state := newTestStore(t)

	blob := `{"2024-03-01":[
		{"id":"ohp","name":"站姿肩推","part":"肩膀","localId":7,"sets":[
			{"kg":40,"reps":8,"completed":true},
			{"kg":40,"reps":8,"completed":false}
		]}
	]}`
	if err := state.Put(storage.KeyHistory, []byte(blob)); err != nil {
		t.Fatalf("put: %v", err)
	}

	day, err := s.LoadDay("2024-03-01")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sets := day[0].Sets
	if sets[0].ID == 0 || sets[1].ID == 0 {
		t.Error("set id not backfilled")
	}
	if sets[0].ID == sets[1].ID {
		t.Error("set ids collide after sanitization")
	}
}

func TestDeleteDay(t *testing.T) {
	s, _ := newTestStore(t)
	gen := ids.NewGenerator()

	s.SaveDay("2024-03-01", benchDay(gen))
	s.SaveDay("2024-03-02", benchDay(gen))

	if err := s.DeleteDay("2024-03-01"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	dates, err := s.ListNonEmptyDates("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(dates) != 1 || dates[0] != "2024-03-02" {
		t.Errorf("dates = %v, want [2024-03-02]", dates)
	}
}

func TestListNonEmptyDates(t *testing.T) {
	s, _ := newTestStore(t)
	gen := ids.NewGenerator()

	s.SaveDay("2024-01-05", benchDay(gen))
	s.SaveDay("2024-02-10", benchDay(gen))
	s.SaveDay("2024-03-01", benchDay(gen))
	s.SaveDay("2024-02-20", []models.Exercise{}) // empty day is skipped

	dates, err := s.ListNonEmptyDates("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"2024-03-01", "2024-02-10", "2024-01-05"}
	if len(dates) != len(want) {
		t.Fatalf("dates = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}

	excluded, _ := s.ListNonEmptyDates("2024-02-10")
	if len(excluded) != 2 {
		t.Errorf("excluded list = %v, want 2 entries", excluded)
	}
	for _, d := range excluded {
		if d == "2024-02-10" {
			t.Error("excluded date still listed")
		}
	}
}

func TestCopyDay(t *testing.T) {
	s, _ := newTestStore(t)
	gen := ids.NewGenerator()

	source := benchDay(gen)
	if err := s.SaveDay("2024-01-01", source); err != nil {
		t.Fatalf("save: %v", err)
	}

	copied, err := s.CopyDay("2024-01-01", "2024-01-08")
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if len(copied) != 1 {
		t.Fatalf("copied %d exercises, want 1", len(copied))
	}

	src, _ := s.LoadDay("2024-01-01")
	dst := copied[0]
	if dst.LocalID == src[0].LocalID {
		t.Error("copied exercise kept the source localId")
	}
	for i, set := range dst.Sets {
		if set.ID == src[0].Sets[i].ID {
			t.Errorf("set %d kept the source id", i)
		}
		if set.Completed {
			t.Errorf("set %d still completed", i)
		}
		if set.Kg != src[0].Sets[i].Kg || set.Reps != src[0].Sets[i].Reps || set.RPE != src[0].Sets[i].RPE {
			t.Errorf("set %d lost its reference values: %+v", i, set)
		}
	}

	// Copying appends rather than replaces.
	if _, err := s.CopyDay("2024-01-01", "2024-01-08"); err != nil {
		t.Fatalf("second copy: %v", err)
	}
	target, _ := s.LoadDay("2024-01-08")
	if len(target) != 2 {
		t.Errorf("target has %d exercises after two copies, want 2", len(target))
	}
}

func TestCopyDayAvoidsForeignIDStream(t *testing.T) {
	s, _ := newTestStore(t)

	// Clients mint their own ids, and a foreign writer's stream can sit
	// exactly where this store's generator continues. Plant the source
	// ids on the generator's upcoming values and verify the copy still
	// gets entirely new ids.
	base := s.gen.Next()
	source := []models.Exercise{
		{
			ID: "squat", Name: "深蹲", Part: "腿部", LocalID: base + 1,
			Sets: []models.WorkoutSet{
				{ID: base + 2, Kg: 100, Reps: 5, Completed: true},
				{ID: base + 3, Kg: 100, Reps: 5, Completed: true},
			},
		},
	}
	if err := s.SaveDay("2024-01-01", source); err != nil {
		t.Fatalf("save: %v", err)
	}

	copied, err := s.CopyDay("2024-01-01", "2024-01-08")
	if err != nil {
		t.Fatalf("copy: %v", err)
	}

	sourceIDs := map[int64]bool{base + 1: true, base + 2: true, base + 3: true}
	for _, ex := range copied {
		if sourceIDs[ex.LocalID] {
			t.Errorf("copied exercise kept the source localId %d", ex.LocalID)
		}
		for i, set := range ex.Sets {
			if sourceIDs[set.ID] {
				t.Errorf("set %d kept the source id %d", i, set.ID)
			}
		}
	}
}

func TestCopyDayEmptySource(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.CopyDay("2024-01-01", "2024-01-08"); err == nil {
		t.Error("copying an empty day should fail")
	}
}

func TestDaySummary(t *testing.T) {
	s, _ := newTestStore(t)
	gen := ids.NewGenerator()

	day := []models.Exercise{
		{
			ID: "bench_press", Name: "槓鈴臥推", Part: "胸部", LocalID: gen.Next(),
			Sets: []models.WorkoutSet{
				{ID: gen.Next(), Kg: 40, Reps: 12, Completed: true, IsWarmup: true},
				{ID: gen.Next(), Kg: 60, Reps: 10, RPE: 8, Completed: true},
				{ID: gen.Next(), Kg: 60, Reps: 8, RPE: 9, Completed: false},
			},
		},
		{
			// No completed sets: excluded from the summary entirely.
			ID: "squat", Name: "槓鈴深蹲", Part: "腿部", LocalID: gen.Next(),
			Sets: []models.WorkoutSet{{ID: gen.Next(), Kg: 100, Reps: 5}},
		},
	}
	if err := s.SaveDay("2024-03-01", day); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.DaySummary("2024-03-01")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := "📅 訓練日期：2024-03-01\n🔹 槓鈴臥推: 40kg x 12(暖), 60kg x 10 @RPE8\n"
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestDaySummaryEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	got, err := s.DaySummary("2024-03-01")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := "📅 訓練日期：2024-03-01\n（今日無有效訓練紀錄）"
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}
