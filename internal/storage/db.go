// Package storage is the persistence layer: a local SQLite database
// holding one JSON blob per application key. Every mutation reads the
// full blob, modifies it, and writes the full blob back — safe because
// the state is single-writer (one session, no concurrent tabs).
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"
)

// Persisted keys.
const (
	KeyHistory   = "history"
	KeyProfile   = "user_profile"
	KeyPhotos    = "photos"
	KeyRestTimer = "rest_timer"
	KeyAPIKey    = "api_key"
)

// AllKeys lists every persisted key, in export order.
var AllKeys = []string{KeyHistory, KeyProfile, KeyPhotos, KeyRestTimer, KeyAPIKey}

// Store wraps the state database and fans out change notifications.
// Listeners are invoked synchronously after each mutation and must
// re-derive their state from storage rather than apply deltas.
type Store struct {
	db *sql.DB

	mu        sync.Mutex
	listeners []func()
}

// Open opens (or creates) the state database at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging state db: %w", err)
	}
	return &Store{db: db}, nil
}

// RunMigrations applies all pending migrations from the given directory.
func RunMigrations(dbPath, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, "sqlite://"+dbPath)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Close closes the state database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the blob stored under key. The second result is false
// when the key is absent.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put replaces the blob under key and notifies listeners.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	s.notify()
	return nil
}

// Delete removes the key entirely and notifies listeners.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM app_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	s.notify()
	return nil
}

// Subscribe registers a listener called after every mutation. There is
// no payload and no acknowledgment; listeners must be idempotent.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
