package services

import "context"

// CollectionCache stores serialized fallback copies of remote collections.
// Reads consult it when the remote store is unreachable.
type CollectionCache interface {
	CacheCollection(ctx context.Context, name, payload string) error
	CachedCollection(ctx context.Context, name string) (string, error)
}
