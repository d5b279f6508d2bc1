package docstore

import (
	"context"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/platform/docstore"
)

// ItemRepository implements repositories.ItemRepository on the items document.
type ItemRepository struct {
	client *docstore.Client
}

// FetchAll reads the full item collection ordered by identifier.
func (r *ItemRepository) FetchAll(ctx context.Context) ([]domain.Item, error) {
	return docstore.FetchCollection[domain.Item](ctx, r.client, itemsDocument)
}

// ReplaceAll overwrites the item collection.
func (r *ItemRepository) ReplaceAll(ctx context.Context, items []domain.Item) error {
	return docstore.ReplaceCollection(ctx, r.client, itemsDocument, items, func(item domain.Item) string {
		return item.ID
	})
}
