package docstore

import (
	"context"

	"github.com/kovfs/api/internal/platform/docstore"
)

// HealthRepository verifies connectivity by reading a small singleton document.
type HealthRepository struct {
	client *docstore.Client
}

// Ping performs a lightweight read against the store.
func (r *HealthRepository) Ping(ctx context.Context) error {
	var settings any
	return r.client.GetJSON(ctx, siteSettingsDocument, &settings)
}
