package docstore

import (
	"context"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/platform/docstore"
)

// SettingsRepository implements repositories.SettingsRepository over the
// singleton documents. Theme colors are three scalar string documents, the
// rest are single JSON objects.
type SettingsRepository struct {
	client *docstore.Client
}

// SiteSettings reads the branding document. The boolean reports whether a
// saved document exists.
func (r *SettingsRepository) SiteSettings(ctx context.Context) (domain.SiteSettings, bool, error) {
	var doc *domain.SiteSettings
	if err := r.client.GetJSON(ctx, siteSettingsDocument, &doc); err != nil {
		return domain.SiteSettings{}, false, err
	}
	if doc == nil {
		return domain.SiteSettings{}, false, nil
	}
	return *doc, true, nil
}

// SaveSiteSettings overwrites the branding document.
func (r *SettingsRepository) SaveSiteSettings(ctx context.Context, settings domain.SiteSettings) error {
	return r.client.PutJSON(ctx, siteSettingsDocument, settings)
}

// AdBanner reads the promotional banner document.
func (r *SettingsRepository) AdBanner(ctx context.Context) (domain.AdBanner, bool, error) {
	var doc *domain.AdBanner
	if err := r.client.GetJSON(ctx, adBannerDocument, &doc); err != nil {
		return domain.AdBanner{}, false, err
	}
	if doc == nil {
		return domain.AdBanner{}, false, nil
	}
	return *doc, true, nil
}

// SaveAdBanner overwrites the promotional banner document.
func (r *SettingsRepository) SaveAdBanner(ctx context.Context, banner domain.AdBanner) error {
	return r.client.PutJSON(ctx, adBannerDocument, banner)
}

// RemoveAdBanner deletes the promotional banner document.
func (r *SettingsRepository) RemoveAdBanner(ctx context.Context) error {
	return r.client.DeleteJSON(ctx, adBannerDocument)
}

// ThemeColors reads the three accent class documents. Absent documents come
// back as empty strings; callers apply defaults.
func (r *SettingsRepository) ThemeColors(ctx context.Context) (domain.ThemeColors, error) {
	var colors domain.ThemeColors
	if err := r.client.GetJSON(ctx, titleColorDocument, &colors.TitleColor); err != nil {
		return domain.ThemeColors{}, err
	}
	if err := r.client.GetJSON(ctx, borderColorDocument, &colors.BorderColor); err != nil {
		return domain.ThemeColors{}, err
	}
	if err := r.client.GetJSON(ctx, headerBorderColorDocument, &colors.HeaderBorderColor); err != nil {
		return domain.ThemeColors{}, err
	}
	return colors, nil
}

// SaveThemeColors overwrites the three accent class documents.
func (r *SettingsRepository) SaveThemeColors(ctx context.Context, colors domain.ThemeColors) error {
	if err := r.client.PutJSON(ctx, titleColorDocument, colors.TitleColor); err != nil {
		return err
	}
	if err := r.client.PutJSON(ctx, borderColorDocument, colors.BorderColor); err != nil {
		return err
	}
	return r.client.PutJSON(ctx, headerBorderColorDocument, colors.HeaderBorderColor)
}

// Credentials reads the shared admin secret document.
func (r *SettingsRepository) Credentials(ctx context.Context) (domain.Credentials, bool, error) {
	var doc *domain.Credentials
	if err := r.client.GetJSON(ctx, credentialsDocument, &doc); err != nil {
		return domain.Credentials{}, false, err
	}
	if doc == nil {
		return domain.Credentials{}, false, nil
	}
	return *doc, true, nil
}

// SaveCredentials overwrites the shared admin secret document.
func (r *SettingsRepository) SaveCredentials(ctx context.Context, credentials domain.Credentials) error {
	return r.client.PutJSON(ctx, credentialsDocument, credentials)
}
