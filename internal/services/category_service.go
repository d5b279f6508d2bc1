package services

import (
	"context"
	"errors"
	"strings"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/repositories"
)

// CategoryServiceDeps groups constructor parameters for the category service.
type CategoryServiceDeps struct {
	Repository repositories.CategoryRepository
	Publisher  Publisher
}

type categoryService struct {
	repo      repositories.CategoryRepository
	publisher Publisher
}

// ErrCategoryRepositoryMissing signals that the category repository dependency is absent.
var ErrCategoryRepositoryMissing = errors.New("category service: category repository is not configured")

// NewCategoryService constructs the category service with the supplied dependencies.
func NewCategoryService(deps CategoryServiceDeps) (CategoryService, error) {
	if deps.Repository == nil {
		return nil, ErrCategoryRepositoryMissing
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = NoopPublisher()
	}
	return &categoryService{repo: deps.Repository, publisher: publisher}, nil
}

// List returns the ordered category names, seeding the defaults when the
// collection has never been written.
func (s *categoryService) List(ctx context.Context) ([]string, error) {
	categories, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return domain.DefaultCategories(), nil
	}
	return categories, nil
}

func (s *categoryService) Add(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryRequired
	}

	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	// Duplicate detection is case sensitive, matching the original behaviour.
	for _, existing := range categories {
		if existing == name {
			return nil, ErrCategoryExists
		}
	}

	categories = append(categories, name)
	if err := s.repo.ReplaceAll(ctx, categories); err != nil {
		return nil, err
	}
	s.publisher.CollectionChanged(CollectionCategories)
	return categories, nil
}

func (s *categoryService) Rename(ctx context.Context, oldName, newName string) ([]string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, ErrCategoryRequired
	}

	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, existing := range categories {
		if existing == oldName {
			index = i
			continue
		}
		if existing == newName {
			return nil, ErrCategoryExists
		}
	}
	if index == -1 {
		return nil, ErrCategoryNotFound
	}

	categories[index] = newName
	if err := s.repo.ReplaceAll(ctx, categories); err != nil {
		return nil, err
	}
	s.publisher.CollectionChanged(CollectionCategories)
	return categories, nil
}

func (s *categoryService) Delete(ctx context.Context, name string) ([]string, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(categories))
	found := false
	for _, existing := range categories {
		if existing == name {
			found = true
			continue
		}
		remaining = append(remaining, existing)
	}
	if !found {
		return nil, ErrCategoryNotFound
	}

	if err := s.repo.ReplaceAll(ctx, remaining); err != nil {
		return nil, err
	}
	s.publisher.CollectionChanged(CollectionCategories)
	return remaining, nil
}
