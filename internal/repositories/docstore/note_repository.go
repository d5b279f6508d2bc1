package docstore

import (
	"context"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/platform/docstore"
)

// NoteRepository implements repositories.NoteRepository on the adminNotes
// document.
type NoteRepository struct {
	client *docstore.Client
}

// FetchAll reads the full note collection ordered by identifier.
func (r *NoteRepository) FetchAll(ctx context.Context) ([]domain.AdminNote, error) {
	return docstore.FetchCollection[domain.AdminNote](ctx, r.client, notesDocument)
}

// ReplaceAll overwrites the note collection.
func (r *NoteRepository) ReplaceAll(ctx context.Context, notes []domain.AdminNote) error {
	return docstore.ReplaceCollection(ctx, r.client, notesDocument, notes, func(n domain.AdminNote) string {
		return n.ID
	})
}
