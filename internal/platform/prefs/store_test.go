package prefs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSetGetRemove(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "theme"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := store.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "dark" {
		t.Errorf("expected dark, got %q", value)
	}

	// Last write wins.
	if err := store.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err = store.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "light" {
		t.Errorf("expected light, got %q", value)
	}

	if err := store.Remove(ctx, "theme"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := store.Get(ctx, "theme"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestNotifierFiresOnChange(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	var changed []string
	store.SetNotifier(func(key string) { changed = append(changed, key) })

	if err := store.Set(ctx, "user_rating:client-1:42", "5"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Remove(ctx, "user_rating:client-1:42"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// Removing an absent key stays silent.
	if err := store.Remove(ctx, "user_rating:client-1:42"); err != nil {
		t.Fatalf("Remove absent: %v", err)
	}

	if len(changed) != 2 {
		t.Fatalf("expected 2 notifications, got %d (%v)", len(changed), changed)
	}
	for _, key := range changed {
		if key != "user_rating:client-1:42" {
			t.Errorf("unexpected key %q", key)
		}
	}
}

func TestCollectionCache(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.CachedCollection(ctx, "items"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.CacheCollection(ctx, "items", `[{"id":"1"}]`); err != nil {
		t.Fatalf("CacheCollection: %v", err)
	}
	payload, err := store.CachedCollection(ctx, "items")
	if err != nil {
		t.Fatalf("CachedCollection: %v", err)
	}
	if payload != `[{"id":"1"}]` {
		t.Errorf("unexpected payload %q", payload)
	}

	if err := store.CacheCollection(ctx, "items", `[]`); err != nil {
		t.Fatalf("CacheCollection overwrite: %v", err)
	}
	payload, err = store.CachedCollection(ctx, "items")
	if err != nil {
		t.Fatalf("CachedCollection: %v", err)
	}
	if payload != `[]` {
		t.Errorf("expected overwrite, got %q", payload)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Set(ctx, "ad_dismissed_until:client-1", "1756600000000"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	value, err := store.Get(ctx, "ad_dismissed_until:client-1")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if value != "1756600000000" {
		t.Errorf("unexpected value %q", value)
	}
}
