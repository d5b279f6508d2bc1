package docstore

import (
	"context"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/platform/docstore"
)

// AnnouncementRepository implements repositories.AnnouncementRepository on the
// announcements document.
type AnnouncementRepository struct {
	client *docstore.Client
}

// FetchAll reads the full announcement collection ordered by identifier.
func (r *AnnouncementRepository) FetchAll(ctx context.Context) ([]domain.Announcement, error) {
	return docstore.FetchCollection[domain.Announcement](ctx, r.client, announcementsDocument)
}

// ReplaceAll overwrites the announcement collection.
func (r *AnnouncementRepository) ReplaceAll(ctx context.Context, announcements []domain.Announcement) error {
	return docstore.ReplaceCollection(ctx, r.client, announcementsDocument, announcements, func(a domain.Announcement) string {
		return a.ID
	})
}
