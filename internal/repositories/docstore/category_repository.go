package docstore

import (
	"context"

	"github.com/kovfs/api/internal/platform/docstore"
)

// CategoryRepository implements repositories.CategoryRepository. Unlike the
// keyed collections, categories are stored as a plain ordered JSON array.
type CategoryRepository struct {
	client *docstore.Client
}

// FetchAll reads the ordered category list. An absent document yields an empty
// list.
func (r *CategoryRepository) FetchAll(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.client.GetJSON(ctx, categoriesDocument, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// ReplaceAll overwrites the category list, preserving order.
func (r *CategoryRepository) ReplaceAll(ctx context.Context, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	return r.client.PutJSON(ctx, categoriesDocument, categories)
}
