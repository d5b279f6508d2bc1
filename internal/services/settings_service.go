package services

import (
	"context"
	"errors"
	"strings"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/repositories"
)

// SettingsServiceDeps groups constructor parameters for the settings service.
type SettingsServiceDeps struct {
	Repository repositories.SettingsRepository
	Publisher  Publisher
}

type settingsService struct {
	repo      repositories.SettingsRepository
	publisher Publisher
}

// ErrSettingsRepositoryMissing signals that the settings repository dependency is absent.
var ErrSettingsRepositoryMissing = errors.New("settings service: settings repository is not configured")

// NewSettingsService constructs the settings service with the supplied dependencies.
func NewSettingsService(deps SettingsServiceDeps) (SettingsService, error) {
	if deps.Repository == nil {
		return nil, ErrSettingsRepositoryMissing
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = NoopPublisher()
	}
	return &settingsService{repo: deps.Repository, publisher: publisher}, nil
}

// SiteSettings returns the saved branding, or the built-in defaults when
// nothing has been saved yet.
func (s *settingsService) SiteSettings(ctx context.Context) (SiteSettings, error) {
	settings, found, err := s.repo.SiteSettings(ctx)
	if err != nil {
		return SiteSettings{}, err
	}
	if !found {
		return domain.DefaultSiteSettings(), nil
	}
	if settings.SiteLogoType != domain.LogoTypeIcon && settings.SiteLogoType != domain.LogoTypeImage {
		settings.SiteLogoType = domain.LogoTypeIcon
	}
	return settings, nil
}

func (s *settingsService) SaveSiteSettings(ctx context.Context, settings SiteSettings) (SiteSettings, error) {
	if strings.TrimSpace(settings.SiteTitle) == "" {
		return SiteSettings{}, ErrTitleRequired
	}
	if settings.SiteLogoType != domain.LogoTypeImage {
		settings.SiteLogoType = domain.LogoTypeIcon
	}
	if err := s.repo.SaveSiteSettings(ctx, settings); err != nil {
		return SiteSettings{}, err
	}
	s.publisher.CollectionChanged(CollectionSiteSettings)
	return settings, nil
}

// ThemeColors returns the saved accents with per-field defaults for anything
// never written.
func (s *settingsService) ThemeColors(ctx context.Context) (ThemeColors, error) {
	colors, err := s.repo.ThemeColors(ctx)
	if err != nil {
		return ThemeColors{}, err
	}
	return fillThemeDefaults(colors), nil
}

func (s *settingsService) SaveThemeColors(ctx context.Context, colors ThemeColors) (ThemeColors, error) {
	colors = fillThemeDefaults(colors)
	if err := s.repo.SaveThemeColors(ctx, colors); err != nil {
		return ThemeColors{}, err
	}
	s.publisher.CollectionChanged(CollectionThemeColors)
	return colors, nil
}

func fillThemeDefaults(colors ThemeColors) ThemeColors {
	if strings.TrimSpace(colors.TitleColor) == "" {
		colors.TitleColor = domain.DefaultTitleColor
	}
	if strings.TrimSpace(colors.BorderColor) == "" {
		colors.BorderColor = domain.DefaultBorderColor
	}
	if strings.TrimSpace(colors.HeaderBorderColor) == "" {
		colors.HeaderBorderColor = domain.DefaultHeaderBorderColor
	}
	return colors
}
