package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// fakeClock advances by one second on every call.
func fakeClock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		now := cur
		cur = cur.Add(time.Second)
		return now
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.StartSession("alice", "127.0.0.1:4000")
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	sess, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if sess == nil || sess.User != "alice" {
		t.Errorf("session not persisted across reopen: %+v", sess)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = fakeClock(start)

	id, err := store.StartSession("bob", "10.0.0.2:5555")
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	if id == "" {
		t.Fatal("StartSession() returned an empty id")
	}

	sess, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if !sess.Active() {
		t.Error("fresh session should be active")
	}
	if sess.Duration() != 0 {
		t.Errorf("live session duration = %v, expected 0", sess.Duration())
	}

	if err := store.EndSession(id, 3600, 2); err != nil {
		t.Fatalf("EndSession() failed: %v", err)
	}

	sess, err = store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if sess.Active() {
		t.Error("ended session should not be active")
	}
	if sess.Frames != 3600 || sess.Rounds != 2 {
		t.Errorf("counters = %d/%d, expected 3600/2", sess.Frames, sess.Rounds)
	}
	if !sess.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, expected %v", sess.StartedAt, start)
	}
	if sess.Duration() != time.Second {
		t.Errorf("Duration() = %v, expected 1s", sess.Duration())
	}
	if sess.Remote != "10.0.0.2:5555" {
		t.Errorf("Remote = %q", sess.Remote)
	}
}

func TestEndUnknownSession(t *testing.T) {
	store := openTestStore(t)

	err := store.EndSession("missing", 1, 0)
	if !errors.Is(err, ErrUnknownSession) {
		t.Errorf("EndSession() error = %v, expected ErrUnknownSession", err)
	}
}

func TestSessionByIDMissing(t *testing.T) {
	store := openTestStore(t)

	sess, err := store.SessionByID("nope")
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if sess != nil {
		t.Errorf("expected nil for a missing session, got %+v", sess)
	}
}

func TestRecentSessions(t *testing.T) {
	store := openTestStore(t)
	store.now = fakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	users := []string{"a", "b", "c", "d"}
	for _, u := range users {
		if _, err := store.StartSession(u, ""); err != nil {
			t.Fatalf("StartSession(%q) failed: %v", u, err)
		}
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"limited", 2, []string{"d", "c"}},
		{"all", 10, []string{"d", "c", "b", "a"}},
		{"default limit", 0, []string{"d", "c", "b", "a"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.RecentSessions(tc.limit)
			if err != nil {
				t.Fatalf("RecentSessions() failed: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d sessions, expected %d", len(got), len(tc.want))
			}
			for i, u := range tc.want {
				if got[i].User != u {
					t.Errorf("sessions[%d].User = %q, expected %q", i, got[i].User, u)
				}
			}
		})
	}
}

func TestSessionIDsUnique(t *testing.T) {
	store := openTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := store.StartSession("u", "")
		if err != nil {
			t.Fatalf("StartSession() failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = true
	}
}
