package services

import (
	"context"
	"errors"
	"sync"

	"github.com/kovfs/api/internal/domain"
)

var errStoreDown = errors.New("store unreachable")

// stubItemRepository keeps the collection in memory and can simulate outages.
type stubItemRepository struct {
	items      []domain.Item
	fetchErr   error
	replaceErr error
	replaced   int
}

func (s *stubItemRepository) FetchAll(context.Context) ([]domain.Item, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubItemRepository) ReplaceAll(_ context.Context, items []domain.Item) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.items = make([]domain.Item, len(items))
	copy(s.items, items)
	s.replaced++
	return nil
}

type stubAnnouncementRepository struct {
	announcements []domain.Announcement
	fetchErr      error
}

func (s *stubAnnouncementRepository) FetchAll(context.Context) ([]domain.Announcement, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	out := make([]domain.Announcement, len(s.announcements))
	copy(out, s.announcements)
	return out, nil
}

func (s *stubAnnouncementRepository) ReplaceAll(_ context.Context, announcements []domain.Announcement) error {
	s.announcements = make([]domain.Announcement, len(announcements))
	copy(s.announcements, announcements)
	return nil
}

type stubCategoryRepository struct {
	categories []string
}

func (s *stubCategoryRepository) FetchAll(context.Context) ([]string, error) {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *stubCategoryRepository) ReplaceAll(_ context.Context, categories []string) error {
	s.categories = make([]string, len(categories))
	copy(s.categories, categories)
	return nil
}

type stubNoteRepository struct {
	notes []domain.AdminNote
}

func (s *stubNoteRepository) FetchAll(context.Context) ([]domain.AdminNote, error) {
	out := make([]domain.AdminNote, len(s.notes))
	copy(out, s.notes)
	return out, nil
}

func (s *stubNoteRepository) ReplaceAll(_ context.Context, notes []domain.AdminNote) error {
	s.notes = make([]domain.AdminNote, len(notes))
	copy(s.notes, notes)
	return nil
}

type stubButtonRepository struct {
	buttons []domain.AdminButton
}

func (s *stubButtonRepository) FetchAll(context.Context) ([]domain.AdminButton, error) {
	out := make([]domain.AdminButton, len(s.buttons))
	copy(out, s.buttons)
	return out, nil
}

func (s *stubButtonRepository) ReplaceAll(_ context.Context, buttons []domain.AdminButton) error {
	s.buttons = make([]domain.AdminButton, len(buttons))
	copy(s.buttons, buttons)
	return nil
}

type stubSettingsRepository struct {
	siteSettings    *domain.SiteSettings
	banner          *domain.AdBanner
	colors          domain.ThemeColors
	credentials     *domain.Credentials
	credentialsErr  error
	saveBannerErr   error
	saveSettingsErr error
}

func (s *stubSettingsRepository) SiteSettings(context.Context) (domain.SiteSettings, bool, error) {
	if s.siteSettings == nil {
		return domain.SiteSettings{}, false, nil
	}
	return *s.siteSettings, true, nil
}

func (s *stubSettingsRepository) SaveSiteSettings(_ context.Context, settings domain.SiteSettings) error {
	if s.saveSettingsErr != nil {
		return s.saveSettingsErr
	}
	s.siteSettings = &settings
	return nil
}

func (s *stubSettingsRepository) AdBanner(context.Context) (domain.AdBanner, bool, error) {
	if s.banner == nil {
		return domain.AdBanner{}, false, nil
	}
	return *s.banner, true, nil
}

func (s *stubSettingsRepository) SaveAdBanner(_ context.Context, banner domain.AdBanner) error {
	if s.saveBannerErr != nil {
		return s.saveBannerErr
	}
	s.banner = &banner
	return nil
}

func (s *stubSettingsRepository) RemoveAdBanner(context.Context) error {
	s.banner = nil
	return nil
}

func (s *stubSettingsRepository) ThemeColors(context.Context) (domain.ThemeColors, error) {
	return s.colors, nil
}

func (s *stubSettingsRepository) SaveThemeColors(_ context.Context, colors domain.ThemeColors) error {
	s.colors = colors
	return nil
}

func (s *stubSettingsRepository) Credentials(context.Context) (domain.Credentials, bool, error) {
	if s.credentialsErr != nil {
		return domain.Credentials{}, false, s.credentialsErr
	}
	if s.credentials == nil {
		return domain.Credentials{}, false, nil
	}
	return *s.credentials, true, nil
}

func (s *stubSettingsRepository) SaveCredentials(_ context.Context, credentials domain.Credentials) error {
	s.credentials = &credentials
	return nil
}

// memoryPrefStore is an in-memory PreferenceStore.
type memoryPrefStore struct {
	mu     sync.Mutex
	values map[string]string
}

var errPrefMissing = errors.New("pref missing")

func newMemoryPrefStore() *memoryPrefStore {
	return &memoryPrefStore{values: make(map[string]string)}
}

func (s *memoryPrefStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return "", errPrefMissing
	}
	return value, nil
}

func (s *memoryPrefStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryPrefStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// memoryCache is an in-memory CollectionCache.
type memoryCache struct {
	mu       sync.Mutex
	payloads map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{payloads: make(map[string]string)}
}

func (c *memoryCache) CacheCollection(_ context.Context, name, payload string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payloads[name] = payload
	return nil
}

func (c *memoryCache) CachedCollection(_ context.Context, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.payloads[name]
	if !ok {
		return "", errPrefMissing
	}
	return payload, nil
}

// recordingPublisher captures collection change notifications.
type recordingPublisher struct {
	mu      sync.Mutex
	changes []string
}

func (p *recordingPublisher) CollectionChanged(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, name)
}

func (p *recordingPublisher) Changes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.changes))
	copy(out, p.changes)
	return out
}
