package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/frame-color/internal/exercise"
	"github.com/vovakirdan/frame-color/internal/settings"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	_, dbPath := openTestStore(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreGetSet(t *testing.T) {
	store, _ := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want absent", ok, err)
	}

	if err := store.Set("k", "v1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("k", "v2"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	got, ok, err := store.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get(k) = ok %v, err %v", ok, err)
	}
	if got != "v2" {
		t.Errorf("Expected last write to win, got %q", got)
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("Key still present after Delete")
	}
}

func TestStoreSettingsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	audio := settings.NewAudioStore(store, nil)
	audio.SetVolume(73)
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if got := settings.NewAudioStore(reopened, nil).Volume(); got != 73 {
		t.Errorf("Expected volume 73 after reopen, got %d", got)
	}
}

func TestStoreAttempts(t *testing.T) {
	store, _ := openTestStore(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	attempts := []exercise.Attempt{
		{SessionID: "s1", Target: exercise.FrameColorBlue, Selected: exercise.FrameColorGreen, Outcome: exercise.OutcomeWrong, At: base},
		{SessionID: "s1", Target: exercise.FrameColorBlue, Selected: exercise.FrameColorBlue, Outcome: exercise.OutcomeSuccess, At: base.Add(time.Minute)},
		{SessionID: "s2", Target: exercise.FrameColorYellow, Selected: exercise.FrameColorYellow, Outcome: exercise.OutcomeSuccess, At: base.Add(2 * time.Minute)},
	}
	for _, a := range attempts {
		if err := store.RecordAttempt(a); err != nil {
			t.Fatalf("RecordAttempt() failed: %v", err)
		}
	}

	recent, err := store.RecentAttempts(10)
	if err != nil {
		t.Fatalf("RecentAttempts() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 attempts, got %d", len(recent))
	}
	if recent[0].SessionID != "s2" || recent[0].Target != exercise.FrameColorYellow || !recent[0].Correct {
		t.Errorf("Unexpected newest attempt: %+v", recent[0])
	}
	if recent[2].Selected != exercise.FrameColorGreen || recent[2].Correct {
		t.Errorf("Unexpected oldest attempt: %+v", recent[2])
	}
	if !recent[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("Expected timestamp %v, got %v", base.Add(2*time.Minute), recent[0].CreatedAt)
	}

	limited, err := store.RecentAttempts(2)
	if err != nil {
		t.Fatalf("RecentAttempts(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 attempts with limit, got %d", len(limited))
	}

	s1, err := store.SessionAttempts("s1")
	if err != nil {
		t.Fatalf("SessionAttempts() failed: %v", err)
	}
	if len(s1) != 2 || s1[0].Correct || !s1[1].Correct {
		t.Errorf("Unexpected session attempts: %+v", s1)
	}
}

func TestStoreStats(t *testing.T) {
	store, _ := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Attempts != 0 || empty.Accuracy() != 0 || !empty.LastEntry.IsZero() {
		t.Errorf("Unexpected empty stats: %+v", empty)
	}

	store.RecordAttempt(exercise.Attempt{SessionID: "a", Target: exercise.FrameColorBlue, Selected: exercise.FrameColorBlue, Outcome: exercise.OutcomeSuccess})
	store.RecordAttempt(exercise.Attempt{SessionID: "a", Target: exercise.FrameColorBlue, Selected: exercise.FrameColorGreen, Outcome: exercise.OutcomeWrong})
	store.RecordAttempt(exercise.Attempt{SessionID: "b", Target: exercise.FrameColorGreen, Selected: exercise.FrameColorGreen, Outcome: exercise.OutcomeSuccess})
	store.RecordAttempt(exercise.Attempt{SessionID: "b", Target: exercise.FrameColorGreen, Selected: exercise.FrameColorYellow, Outcome: exercise.OutcomeWrong})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Attempts != 4 || stats.Correct != 2 || stats.Sessions != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.Accuracy() != 0.5 {
		t.Errorf("Expected accuracy 0.5, got %f", stats.Accuracy())
	}

	if err := store.ClearAttempts(); err != nil {
		t.Fatalf("ClearAttempts() failed: %v", err)
	}
	recent, _ := store.RecentAttempts(10)
	if len(recent) != 0 {
		t.Errorf("Expected no attempts after clear, got %d", len(recent))
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	if _, ok, _ := m.Get("x"); ok {
		t.Error("Empty store should not contain x")
	}

	m.Set("b", "2")
	m.Set("a", "1")
	m.Set("a", "3")

	if v, ok, _ := m.Get("a"); !ok || v != "3" {
		t.Errorf("Get(a) = %q, %v; want 3, true", v, ok)
	}
	if keys := m.Keys(); len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Unexpected keys: %v", keys)
	}

	m.Delete("a")
	if _, ok, _ := m.Get("a"); ok {
		t.Error("Key still present after Delete")
	}
}
