// Package storage keeps a journal of SSH play sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrUnknownSession is returned when ending a session that was never started.
var ErrUnknownSession = errors.New("storage: unknown session")

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Session is one journal entry. EndedAt is zero while the session is live.
type Session struct {
	ID        string
	User      string
	Remote    string
	StartedAt time.Time
	EndedAt   time.Time
	Frames    uint64
	Rounds    int
}

// Active reports whether the session has not been ended yet.
func (s Session) Active() bool {
	return s.EndedAt.IsZero()
}

// Duration returns how long the session lasted, or zero while it is live.
func (s Session) Duration() time.Duration {
	if s.Active() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Timestamps are unix milliseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user TEXT NOT NULL,
			remote TEXT NOT NULL DEFAULT '',
			started_at INTEGER NOT NULL,
			ended_at INTEGER,
			frames INTEGER NOT NULL DEFAULT 0,
			rounds INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartSession records a new live session and returns its id.
func (s *Store) StartSession(user, remote string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, user, remote, started_at) VALUES (?, ?, ?, ?)",
		id, user, remote, s.now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot start session: %w", err)
	}
	return id, nil
}

// EndSession stamps the end time and the final counters on a session.
// Ending a session twice overwrites the earlier values.
func (s *Store) EndSession(id string, frames uint64, rounds int) error {
	res, err := s.db.Exec(
		"UPDATE sessions SET ended_at = ?, frames = ?, rounds = ? WHERE id = ?",
		s.now().UnixMilli(), int64(frames), rounds, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return nil
}

// SessionByID retrieves a single session. Returns nil if it does not exist.
func (s *Store) SessionByID(id string) (*Session, error) {
	row := s.db.QueryRow(
		`SELECT id, user, remote, started_at, ended_at, frames, rounds
		 FROM sessions
		 WHERE id = ?`,
		id,
	)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &sess, nil
}

// RecentSessions retrieves the most recently started sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, user, remote, started_at, ended_at, frames, rounds
		 FROM sessions
		 ORDER BY started_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var (
		sess    Session
		started int64
		ended   sql.NullInt64
		frames  int64
	)
	if err := row.Scan(&sess.ID, &sess.User, &sess.Remote, &started, &ended, &frames, &sess.Rounds); err != nil {
		return Session{}, err
	}

	sess.StartedAt = time.UnixMilli(started)
	if ended.Valid {
		sess.EndedAt = time.UnixMilli(ended.Int64)
	}
	sess.Frames = uint64(frames)
	return sess, nil
}
