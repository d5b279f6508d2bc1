package docstore

import (
	"context"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/platform/docstore"
)

// ButtonRepository implements repositories.ButtonRepository on the
// adminButtons document.
type ButtonRepository struct {
	client *docstore.Client
}

// FetchAll reads the full button collection ordered by identifier.
func (r *ButtonRepository) FetchAll(ctx context.Context) ([]domain.AdminButton, error) {
	return docstore.FetchCollection[domain.AdminButton](ctx, r.client, buttonsDocument)
}

// ReplaceAll overwrites the button collection.
func (r *ButtonRepository) ReplaceAll(ctx context.Context, buttons []domain.AdminButton) error {
	return docstore.ReplaceCollection(ctx, r.client, buttonsDocument, buttons, func(b domain.AdminButton) string {
		return b.ID
	})
}
