package services

import "context"

// PreferenceStore persists server-local key-value state: per-client ratings
// and banner dismissals. Get returns an error satisfying the backing store's
// not-found sentinel when the key is absent.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
