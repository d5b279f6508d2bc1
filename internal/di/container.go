package di

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kovfs/api/internal/platform/auth"
	"github.com/kovfs/api/internal/platform/config"
	"github.com/kovfs/api/internal/platform/docstore"
	"github.com/kovfs/api/internal/platform/prefs"
	"github.com/kovfs/api/internal/repositories"
	docstorerepo "github.com/kovfs/api/internal/repositories/docstore"
	"github.com/kovfs/api/internal/services"
)

// Services bundles the service-layer contracts that handlers rely upon.
type Services struct {
	Catalog       services.CatalogService
	Announcements services.AnnouncementService
	Categories    services.CategoryService
	Notes         services.NoteService
	Buttons       services.ButtonService
	Settings      services.SettingsService
	Banner        services.BannerService
	Engagement    services.EngagementService
	Auth          services.AuthService
	System        services.SystemService
}

// Container wires repositories, services, and supporting infrastructure for
// runtime use.
type Container struct {
	Config       config.Config
	Repositories repositories.Registry
	Preferences  *prefs.Store
	Sessions     *auth.SessionManager
	Services     Services
}

// NewContainer assembles the runtime dependencies from configuration. The
// publisher receives a collection-changed notification after every successful
// write; pass services.NoopPublisher() when no change feed is running.
func NewContainer(cfg config.Config, publisher services.Publisher) (*Container, error) {
	if publisher == nil {
		publisher = services.NoopPublisher()
	}

	client, err := docstore.NewClient(cfg.Store.BaseURL,
		docstore.WithHTTPClient(&http.Client{Timeout: cfg.Store.Timeout}),
		docstore.WithMaxRetries(cfg.Store.MaxRetries),
	)
	if err != nil {
		return nil, fmt.Errorf("build document client: %w", err)
	}

	registry, err := docstorerepo.NewRegistry(client)
	if err != nil {
		return nil, fmt.Errorf("build repository registry: %w", err)
	}

	prefStore, err := prefs.Open(cfg.Prefs.Path)
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}

	sessions, err := auth.NewSessionManager(cfg.Security.SessionSecret, cfg.Security.SessionTTL, time.Now)
	if err != nil {
		_ = prefStore.Close()
		return nil, fmt.Errorf("build session manager: %w", err)
	}

	svc, err := buildServices(cfg, registry, prefStore, sessions, publisher)
	if err != nil {
		_ = prefStore.Close()
		return nil, err
	}

	return &Container{
		Config:       cfg,
		Repositories: registry,
		Preferences:  prefStore,
		Sessions:     sessions,
		Services:     svc,
	}, nil
}

// Close releases the preference store and repository clients.
func (c *Container) Close(ctx context.Context) error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.Preferences != nil {
		if err := c.Preferences.Close(); err != nil {
			firstErr = err
		}
	}
	if c.Repositories != nil {
		if err := c.Repositories.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func buildServices(cfg config.Config, reg repositories.Registry, prefStore *prefs.Store, sessions *auth.SessionManager, publisher services.Publisher) (Services, error) {
	var svc Services

	var cache services.CollectionCache
	if cfg.Features.EnablePrefCache {
		cache = prefStore
	}

	catalog, err := services.NewCatalogService(services.CatalogServiceDeps{
		Repository: reg.Items(),
		Cache:      cache,
		Publisher:  publisher,
		Clock:      time.Now,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build catalog service: %w", err)
	}
	svc.Catalog = catalog

	announcements, err := services.NewAnnouncementService(services.AnnouncementServiceDeps{
		Repository: reg.Announcements(),
		Publisher:  publisher,
		Clock:      time.Now,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build announcement service: %w", err)
	}
	svc.Announcements = announcements

	categories, err := services.NewCategoryService(services.CategoryServiceDeps{
		Repository: reg.Categories(),
		Publisher:  publisher,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build category service: %w", err)
	}
	svc.Categories = categories

	notes, err := services.NewNoteService(services.NoteServiceDeps{
		Repository: reg.Notes(),
		Publisher:  publisher,
		Clock:      time.Now,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build note service: %w", err)
	}
	svc.Notes = notes

	buttons, err := services.NewButtonService(services.ButtonServiceDeps{
		Repository: reg.Buttons(),
		Publisher:  publisher,
		Clock:      time.Now,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build button service: %w", err)
	}
	svc.Buttons = buttons

	settings, err := services.NewSettingsService(services.SettingsServiceDeps{
		Repository: reg.Settings(),
		Publisher:  publisher,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build settings service: %w", err)
	}
	svc.Settings = settings

	banner, err := services.NewBannerService(services.BannerServiceDeps{
		Repository:    reg.Settings(),
		Preferences:   prefStore,
		Publisher:     publisher,
		Clock:         time.Now,
		DismissWindow: cfg.Security.BannerDismissal,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build banner service: %w", err)
	}
	svc.Banner = banner

	engagement, err := services.NewEngagementService(services.EngagementServiceDeps{
		Repository:  reg.Items(),
		Preferences: prefStore,
		Publisher:   publisher,
		Clock:       time.Now,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build engagement service: %w", err)
	}
	svc.Engagement = engagement

	authSvc, err := services.NewAuthService(services.AuthServiceDeps{
		Repository: reg.Settings(),
		Tokens:     sessions,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build auth service: %w", err)
	}
	svc.Auth = authSvc

	system, err := services.NewSystemService(services.SystemServiceDeps{
		Health: reg.Health(),
	})
	if err != nil {
		return Services{}, fmt.Errorf("build system service: %w", err)
	}
	svc.System = system

	return svc, nil
}
