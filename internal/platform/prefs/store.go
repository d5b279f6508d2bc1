package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no value is stored under the requested key.
var ErrNotFound = errors.New("prefs: key not found")

// Notifier receives the key of every successful Set or Remove. Used to mirror
// storage-change events out to interested listeners.
type Notifier func(key string)

// Store is a durable key-value store for server-local preference state:
// per-client ratings, banner dismissals, and cached collection fallbacks.
type Store struct {
	db *sql.DB

	mu       sync.RWMutex
	notifier Notifier
}

// Open creates or opens the preference database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("prefs: open database %s: %w", path, err)
	}

	// WAL keeps concurrent readers cheap. Some filesystems refuse the journal
	// mode change; default journaling still works, so the failure is ignored.
	_, _ = db.Exec("PRAGMA journal_mode=WAL")

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prefs: set busy timeout: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prefs: migrate: %w", err)
	}
	return store, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetNotifier registers the change listener. Passing nil removes it.
func (s *Store) SetNotifier(fn Notifier) {
	s.mu.Lock()
	s.notifier = fn
	s.mu.Unlock()
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("prefs: get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("prefs: set %s: %w", key, err)
	}
	s.notify(key)
	return nil
}

// Remove deletes the value stored under key. Removing an absent key is not an
// error and does not notify.
func (s *Store) Remove(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM preferences WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("prefs: remove %s: %w", key, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected > 0 {
		s.notify(key)
	}
	return nil
}

// CacheCollection stores a serialized collection payload used as a read
// fallback when the remote store is unreachable.
func (s *Store) CacheCollection(ctx context.Context, name, payload string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collection_cache (name, payload, cached_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, cached_at = CURRENT_TIMESTAMP
	`, name, payload)
	if err != nil {
		return fmt.Errorf("prefs: cache collection %s: %w", name, err)
	}
	return nil
}

// CachedCollection returns the last cached payload for name, or ErrNotFound.
func (s *Store) CachedCollection(ctx context.Context, name string) (string, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM collection_cache WHERE name = ?", name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("prefs: cached collection %s: %w", name, err)
	}
	return payload, nil
}

func (s *Store) notify(key string) {
	s.mu.RLock()
	fn := s.notifier
	s.mu.RUnlock()
	if fn != nil {
		fn(key)
	}
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	for i, m := range migrations {
		version := i + 1
		var count int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version).Scan(&count); err != nil {
			return fmt.Errorf("check migration %d: %w", version, err)
		}
		if count > 0 {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("migration %d (%s): %w", version, m.name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("record migration %d: %w", version, err)
		}
	}
	return nil
}
