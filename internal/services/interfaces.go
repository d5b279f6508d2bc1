package services

import (
	"context"

	"github.com/kovfs/api/internal/domain"
)

// Type aliases expose domain models to the services package without reversing dependency direction.
type (
	Item         = domain.Item
	Announcement = domain.Announcement
	AdminNote    = domain.AdminNote
	AdminButton  = domain.AdminButton
	AdBanner     = domain.AdBanner
	SiteSettings = domain.SiteSettings
	ThemeColors  = domain.ThemeColors
	CatalogStats = domain.CatalogStats
)

// ItemFilter narrows the public catalog listing.
type ItemFilter struct {
	// Category filters by exact, case-sensitive category name. Empty or "all"
	// matches every category.
	Category string
	// Query does a case-insensitive substring match on title and description.
	Query string
}

// CreateItemCommand carries the admin-submitted fields for a new item.
type CreateItemCommand struct {
	Title          string
	Description    string
	SubDescription string
	ImageURL       string
	GalleryImages  []string
	AppIcon        string
	Category       string
	Quantity       int
	ContactInfo    string
	Location       string
	Publisher      string
	Version        string
	Size           string
	Requirements   string
	UpdatedDate    string
	DownloadCount  string
}

// UpdateItemCommand replaces the editable fields of an existing item.
type UpdateItemCommand struct {
	ID             string
	Title          string
	Description    string
	SubDescription string
	ImageURL       string
	GalleryImages  []string
	AppIcon        string
	Category       string
	Quantity       int
	ContactInfo    string
	Location       string
	Publisher      string
	Version        string
	Size           string
	Requirements   string
	UpdatedDate    string
	DownloadCount  string
}

// RatingResult reports the item's rating after a vote is applied.
type RatingResult struct {
	Rating      float64
	RatingCount int
}

// CatalogService serves the public item views and the admin item CRUD.
type CatalogService interface {
	ListActiveItems(ctx context.Context, filter ItemFilter) ([]Item, error)
	GetItem(ctx context.Context, itemID string) (Item, error)
	Stats(ctx context.Context) (CatalogStats, error)

	ListAllItems(ctx context.Context) ([]Item, error)
	CreateItem(ctx context.Context, cmd CreateItemCommand) (Item, error)
	UpdateItem(ctx context.Context, cmd UpdateItemCommand) (Item, error)
	ToggleItem(ctx context.Context, itemID string) (Item, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// AnnouncementService manages the notices shown above the catalog.
type AnnouncementService interface {
	ListActive(ctx context.Context) ([]Announcement, error)
	ListAll(ctx context.Context) ([]Announcement, error)
	Create(ctx context.Context, title, content string) (Announcement, error)
	Toggle(ctx context.Context, announcementID string) (Announcement, error)
	Delete(ctx context.Context, announcementID string) error
}

// CategoryService manages the ordered category name list.
type CategoryService interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) ([]string, error)
	Rename(ctx context.Context, oldName, newName string) ([]string, error)
	Delete(ctx context.Context, name string) ([]string, error)
}

// NoteService manages private admin console notes.
type NoteService interface {
	List(ctx context.Context) ([]AdminNote, error)
	Create(ctx context.Context, content string) (AdminNote, error)
	Update(ctx context.Context, noteID, content string) (AdminNote, error)
	Delete(ctx context.Context, noteID string) error
}

// ButtonService manages the decorative menu shortcuts.
type ButtonService interface {
	List(ctx context.Context) ([]AdminButton, error)
	Add(ctx context.Context, label, url, icon string) (AdminButton, error)
	ReplaceAll(ctx context.Context, buttons []AdminButton) error
	Delete(ctx context.Context, buttonID string) error
}

// SettingsService serves and updates the branding singletons.
type SettingsService interface {
	SiteSettings(ctx context.Context) (SiteSettings, error)
	SaveSiteSettings(ctx context.Context, settings SiteSettings) (SiteSettings, error)
	ThemeColors(ctx context.Context) (ThemeColors, error)
	SaveThemeColors(ctx context.Context, colors ThemeColors) (ThemeColors, error)
}

// BannerService manages the promotional overlay and its per-client dismissal.
type BannerService interface {
	BannerFor(ctx context.Context, clientID string) (AdBanner, bool, error)
	Dismiss(ctx context.Context, clientID string, minutes int) error

	Current(ctx context.Context) (AdBanner, bool, error)
	Save(ctx context.Context, banner AdBanner) (AdBanner, error)
	Remove(ctx context.Context) error
}

// EngagementService applies download and rating interactions to items.
type EngagementService interface {
	RecordDownload(ctx context.Context, itemID string) (string, error)
	RateItem(ctx context.Context, itemID, clientID string, score int) (RatingResult, error)
}

// AuthService gates the admin console behind the shared secret.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

// SystemService reports backend health for readiness probes.
type SystemService interface {
	Health(ctx context.Context) error
}
