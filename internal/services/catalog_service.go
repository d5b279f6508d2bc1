package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/platform/requestctx"
	"github.com/kovfs/api/internal/repositories"
)

// CategoryAll is the filter value matching every category.
const CategoryAll = "all"

// CatalogServiceDeps groups constructor parameters for the catalog service.
type CatalogServiceDeps struct {
	Repository repositories.ItemRepository
	Cache      CollectionCache
	Publisher  Publisher
	Clock      func() time.Time
}

type catalogService struct {
	repo      repositories.ItemRepository
	cache     CollectionCache
	publisher Publisher
	clock     func() time.Time
}

// ErrItemRepositoryMissing signals that the item repository dependency is absent.
var ErrItemRepositoryMissing = errors.New("catalog service: item repository is not configured")

// NewCatalogService constructs the catalog service with the supplied dependencies.
func NewCatalogService(deps CatalogServiceDeps) (CatalogService, error) {
	if deps.Repository == nil {
		return nil, ErrItemRepositoryMissing
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = NoopPublisher()
	}
	return &catalogService{
		repo:      deps.Repository,
		cache:     deps.Cache,
		publisher: publisher,
		clock:     func() time.Time { return clock().UTC() },
	}, nil
}

func (s *catalogService) ListActiveItems(ctx context.Context, filter ItemFilter) ([]Item, error) {
	items, err := s.fetchItems(ctx)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(filter.Category)
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	result := make([]Item, 0, len(items))
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		if category != "" && category != CategoryAll && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *catalogService) GetItem(ctx context.Context, itemID string) (Item, error) {
	items, err := s.fetchItems(ctx)
	if err != nil {
		return Item{}, err
	}
	for _, item := range items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return Item{}, ErrItemNotFound
}

func (s *catalogService) Stats(ctx context.Context) (CatalogStats, error) {
	items, err := s.fetchItems(ctx)
	if err != nil {
		return CatalogStats{}, err
	}

	stats := CatalogStats{}
	categories := make(map[string]struct{})
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		stats.ActiveItems++
		stats.TotalQuantity += item.Quantity
		if item.Category != "" {
			categories[item.Category] = struct{}{}
		}
	}
	stats.Categories = len(categories)
	return stats, nil
}

func (s *catalogService) ListAllItems(ctx context.Context) ([]Item, error) {
	return s.fetchItems(ctx)
}

func (s *catalogService) CreateItem(ctx context.Context, cmd CreateItemCommand) (Item, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return Item{}, ErrTitleRequired
	}
	if strings.TrimSpace(cmd.Category) == "" {
		return Item{}, ErrCategoryRequired
	}

	items, err := s.repo.FetchAll(ctx)
	if err != nil {
		return Item{}, err
	}

	now := s.clock()
	quantity := cmd.Quantity
	if quantity < 0 {
		quantity = 0
	}
	item := Item{
		ID:             domain.NewRecordID(now),
		Title:          cmd.Title,
		Description:    cmd.Description,
		SubDescription: cmd.SubDescription,
		ImageURL:       cmd.ImageURL,
		GalleryImages:  cmd.GalleryImages,
		AppIcon:        cmd.AppIcon,
		Category:       cmd.Category,
		Quantity:       quantity,
		ContactInfo:    cmd.ContactInfo,
		Location:       cmd.Location,
		Publisher:      cmd.Publisher,
		Version:        cmd.Version,
		Size:           cmd.Size,
		Requirements:   cmd.Requirements,
		UpdatedDate:    cmd.UpdatedDate,
		DownloadCount:  cmd.DownloadCount,
		IsActive:       true,
		DateAdded:      isoTimestamp(now),
	}

	items = append(items, item)
	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		return Item{}, err
	}
	s.refreshCache(ctx, items)
	s.publisher.CollectionChanged(CollectionItems)
	return item, nil
}

func (s *catalogService) UpdateItem(ctx context.Context, cmd UpdateItemCommand) (Item, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return Item{}, ErrTitleRequired
	}
	if strings.TrimSpace(cmd.Category) == "" {
		return Item{}, ErrCategoryRequired
	}

	items, err := s.repo.FetchAll(ctx)
	if err != nil {
		return Item{}, err
	}

	for i := range items {
		if items[i].ID != cmd.ID {
			continue
		}

		quantity := cmd.Quantity
		if quantity < 0 {
			quantity = 0
		}
		updated := items[i]
		updated.Title = cmd.Title
		updated.Description = cmd.Description
		updated.SubDescription = cmd.SubDescription
		updated.ImageURL = cmd.ImageURL
		updated.GalleryImages = cmd.GalleryImages
		updated.AppIcon = cmd.AppIcon
		updated.Category = cmd.Category
		updated.Quantity = quantity
		updated.ContactInfo = cmd.ContactInfo
		updated.Location = cmd.Location
		updated.Publisher = cmd.Publisher
		updated.Version = cmd.Version
		updated.Size = cmd.Size
		updated.Requirements = cmd.Requirements
		updated.UpdatedDate = cmd.UpdatedDate
		updated.DownloadCount = cmd.DownloadCount
		items[i] = updated

		if err := s.repo.ReplaceAll(ctx, items); err != nil {
			return Item{}, err
		}
		s.refreshCache(ctx, items)
		s.publisher.CollectionChanged(CollectionItems)
		return updated, nil
	}
	return Item{}, ErrItemNotFound
}

func (s *catalogService) ToggleItem(ctx context.Context, itemID string) (Item, error) {
	items, err := s.repo.FetchAll(ctx)
	if err != nil {
		return Item{}, err
	}

	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		items[i].IsActive = !items[i].IsActive
		if err := s.repo.ReplaceAll(ctx, items); err != nil {
			return Item{}, err
		}
		s.refreshCache(ctx, items)
		s.publisher.CollectionChanged(CollectionItems)
		return items[i], nil
	}
	return Item{}, ErrItemNotFound
}

func (s *catalogService) DeleteItem(ctx context.Context, itemID string) error {
	items, err := s.repo.FetchAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]Item, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return ErrItemNotFound
	}

	if err := s.repo.ReplaceAll(ctx, remaining); err != nil {
		return err
	}
	s.refreshCache(ctx, remaining)
	s.publisher.CollectionChanged(CollectionItems)
	return nil
}

// fetchItems reads the collection, falling back to the cached copy and then
// to an empty list when the store is unreachable.
func (s *catalogService) fetchItems(ctx context.Context) ([]Item, error) {
	items, err := s.repo.FetchAll(ctx)
	if err == nil {
		s.refreshCache(ctx, items)
		return items, nil
	}

	logger := requestctx.Logger(ctx)
	logger.Warn("item fetch failed, serving cached copy", zap.Error(err))

	if s.cache != nil {
		payload, cacheErr := s.cache.CachedCollection(ctx, CollectionItems)
		if cacheErr == nil {
			var cached []Item
			if jsonErr := json.Unmarshal([]byte(payload), &cached); jsonErr == nil {
				return cached, nil
			}
		}
	}
	return []Item{}, nil
}

func (s *catalogService) refreshCache(ctx context.Context, items []Item) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.cache.CacheCollection(ctx, CollectionItems, string(payload)); err != nil {
		requestctx.Logger(ctx).Warn("item cache refresh failed", zap.Error(err))
	}
}

// isoTimestamp renders the instant the way the catalog stores creation dates.
func isoTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
