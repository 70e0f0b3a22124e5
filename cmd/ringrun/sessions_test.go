package main

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/ringrun/internal/storage"
)

func TestSessionTable(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)
	sessions := []storage.Session{
		{User: "alice", Remote: "10.0.0.1", StartedAt: start, EndedAt: start.Add(90 * time.Second), Frames: 5400, Rounds: 3},
		{User: "bob", Remote: "10.0.0.2", StartedAt: start},
	}

	view := sessionTable(sessions).View()

	for _, want := range []string{"alice", "bob", "1m30s", "5400", "live", "2024-03-01 10:00"} {
		if !strings.Contains(view, want) {
			t.Errorf("table is missing %q:\n%s", want, view)
		}
	}
}
