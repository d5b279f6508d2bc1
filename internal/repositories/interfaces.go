package repositories

import (
	"context"

	"github.com/kovfs/api/internal/domain"
)

// Registry exposes typed repository accessors and lifecycle hooks for dependency injection.
type Registry interface {
	Close(ctx context.Context) error

	Items() ItemRepository
	Announcements() AnnouncementRepository
	Categories() CategoryRepository
	Notes() NoteRepository
	Buttons() ButtonRepository
	Settings() SettingsRepository
	Health() HealthRepository
}

// RepositoryError wraps low-level persistence failures with categorisation used by services.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsConflict() bool
	IsUnavailable() bool
}

// ItemRepository persists the giveaway item collection. The store's only
// mutation primitive is a whole-collection overwrite, so the interface reads
// and replaces the full list.
type ItemRepository interface {
	FetchAll(ctx context.Context) ([]domain.Item, error)
	ReplaceAll(ctx context.Context, items []domain.Item) error
}

// AnnouncementRepository persists the announcement collection.
type AnnouncementRepository interface {
	FetchAll(ctx context.Context) ([]domain.Announcement, error)
	ReplaceAll(ctx context.Context, announcements []domain.Announcement) error
}

// CategoryRepository persists the ordered category name list.
type CategoryRepository interface {
	FetchAll(ctx context.Context) ([]string, error)
	ReplaceAll(ctx context.Context, categories []string) error
}

// NoteRepository persists admin console notes.
type NoteRepository interface {
	FetchAll(ctx context.Context) ([]domain.AdminNote, error)
	ReplaceAll(ctx context.Context, notes []domain.AdminNote) error
}

// ButtonRepository persists the decorative menu buttons.
type ButtonRepository interface {
	FetchAll(ctx context.Context) ([]domain.AdminButton, error)
	ReplaceAll(ctx context.Context, buttons []domain.AdminButton) error
}

// SettingsRepository persists the singleton site documents. The boolean result
// reports whether a saved document exists; callers apply defaults when absent.
type SettingsRepository interface {
	SiteSettings(ctx context.Context) (domain.SiteSettings, bool, error)
	SaveSiteSettings(ctx context.Context, settings domain.SiteSettings) error

	AdBanner(ctx context.Context) (domain.AdBanner, bool, error)
	SaveAdBanner(ctx context.Context, banner domain.AdBanner) error
	RemoveAdBanner(ctx context.Context) error

	ThemeColors(ctx context.Context) (domain.ThemeColors, error)
	SaveThemeColors(ctx context.Context, colors domain.ThemeColors) error

	Credentials(ctx context.Context) (domain.Credentials, bool, error)
	SaveCredentials(ctx context.Context, credentials domain.Credentials) error
}

// HealthRepository verifies connectivity to the backing store.
type HealthRepository interface {
	Ping(ctx context.Context) error
}
