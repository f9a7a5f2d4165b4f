package backup

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/claude/liftflow/internal/storage"
)

func newTestState(t *testing.T) *storage.Store {
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
	return state
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestState(t)
	src.Put(storage.KeyProfile, []byte(`{"nickname":"小明","weeklyGoal":4}`))
	src.Put(storage.KeyHistory, []byte(`{"2024-03-01":[]}`))
	src.Put(storage.KeyRestTimer, []byte(`90`))

	doc, err := Export(src)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if doc.Photos != nil {
		t.Error("absent photos key exported")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	dst := newTestState(t)
	if err := Import(dst, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	raw, ok, _ := dst.Get(storage.KeyProfile)
	if !ok || string(raw) != `{"nickname":"小明","weeklyGoal":4}` {
		t.Errorf("profile = %s", raw)
	}
	raw, ok, _ = dst.Get(storage.KeyRestTimer)
	if !ok || string(raw) != `90` {
		t.Errorf("timer = %s", raw)
	}
}

func TestImportPartialBackup(t *testing.T) {
	state := newTestState(t)
	state.Put(storage.KeyProfile, []byte(`{"nickname":"keep"}`))

	// Only history present; profile must stay untouched.
	if err := Import(state, []byte(`{"history":"{\"2024-01-01\":[]}"}`)); err != nil {
		t.Fatalf("import: %v", err)
	}

	raw, _, _ := state.Get(storage.KeyProfile)
	if string(raw) != `{"nickname":"keep"}` {
		t.Errorf("profile overwritten: %s", raw)
	}
	_, ok, _ := state.Get(storage.KeyHistory)
	if !ok {
		t.Error("history not imported")
	}
}

func TestImportRejectsNonJSON(t *testing.T) {
	state := newTestState(t)
	if err := Import(state, []byte(`not json at all`)); err == nil {
		t.Error("non-JSON file accepted")
	}
}

func TestImportRejectsEmptyDocument(t *testing.T) {
	state := newTestState(t)
	if err := Import(state, []byte(`{"unrelated":1}`)); err == nil {
		t.Error("document without recognized keys accepted")
	}
}

func TestImportInvalidValueLeavesStorageUntouched(t *testing.T) {
	state := newTestState(t)
	state.Put(storage.KeyHistory, []byte(`{"2024-03-01":[]}`))

	// Valid profile alongside an invalid history: nothing may be written.
	bad := `{"profile":"{\"nickname\":\"x\"}","history":"[this is not history]"}`
	if err := Import(state, []byte(bad)); err == nil {
		t.Fatal("structurally invalid history accepted")
	}

	if _, ok, _ := state.Get(storage.KeyProfile); ok {
		t.Error("profile written despite invalid sibling key")
	}
	raw, _, _ := state.Get(storage.KeyHistory)
	if string(raw) != `{"2024-03-01":[]}` {
		t.Errorf("history modified: %s", raw)
	}
}
