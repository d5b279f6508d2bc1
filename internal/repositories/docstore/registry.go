package docstore

import (
	"context"
	"errors"

	"github.com/kovfs/api/internal/platform/docstore"
	"github.com/kovfs/api/internal/repositories"
)

// Document names used by the remote collection store.
const (
	itemsDocument             = "items"
	announcementsDocument     = "announcements"
	categoriesDocument        = "categories"
	notesDocument             = "adminNotes"
	buttonsDocument           = "adminButtons"
	siteSettingsDocument      = "siteSettings"
	adBannerDocument          = "adBanner"
	titleColorDocument        = "titleColor"
	borderColorDocument       = "borderColor"
	headerBorderColorDocument = "headerBorderColor"
	credentialsDocument       = "adminCredentials"
)

// Registry implements repositories.Registry on top of the document store client.
type Registry struct {
	items         *ItemRepository
	announcements *AnnouncementRepository
	categories    *CategoryRepository
	notes         *NoteRepository
	buttons       *ButtonRepository
	settings      *SettingsRepository
	health        *HealthRepository
}

// NewRegistry wires every repository to the shared client.
func NewRegistry(client *docstore.Client) (*Registry, error) {
	if client == nil {
		return nil, errors.New("docstore registry requires a client")
	}
	return &Registry{
		items:         &ItemRepository{client: client},
		announcements: &AnnouncementRepository{client: client},
		categories:    &CategoryRepository{client: client},
		notes:         &NoteRepository{client: client},
		buttons:       &ButtonRepository{client: client},
		settings:      &SettingsRepository{client: client},
		health:        &HealthRepository{client: client},
	}, nil
}

// Close implements repositories.Registry. The HTTP client holds no resources
// needing explicit teardown.
func (r *Registry) Close(context.Context) error { return nil }

func (r *Registry) Items() repositories.ItemRepository                 { return r.items }
func (r *Registry) Announcements() repositories.AnnouncementRepository { return r.announcements }
func (r *Registry) Categories() repositories.CategoryRepository        { return r.categories }
func (r *Registry) Notes() repositories.NoteRepository                 { return r.notes }
func (r *Registry) Buttons() repositories.ButtonRepository             { return r.buttons }
func (r *Registry) Settings() repositories.SettingsRepository          { return r.settings }
func (r *Registry) Health() repositories.HealthRepository              { return r.health }
