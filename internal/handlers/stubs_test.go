package handlers

import (
	"context"

	"github.com/kovfs/api/internal/services"
)

// Service stubs returning canned values. Each stub records the last call so
// tests can assert what the handler passed through.

type stubCatalogService struct {
	items   []services.Item
	item    services.Item
	stats   services.CatalogStats
	err     error
	created services.CreateItemCommand
	updated services.UpdateItemCommand
	toggled string
	deleted string
	filter  services.ItemFilter
}

func (s *stubCatalogService) ListActiveItems(_ context.Context, filter services.ItemFilter) ([]services.Item, error) {
	s.filter = filter
	return s.items, s.err
}

func (s *stubCatalogService) GetItem(context.Context, string) (services.Item, error) {
	return s.item, s.err
}

func (s *stubCatalogService) Stats(context.Context) (services.CatalogStats, error) {
	return s.stats, s.err
}

func (s *stubCatalogService) ListAllItems(context.Context) ([]services.Item, error) {
	return s.items, s.err
}

func (s *stubCatalogService) CreateItem(_ context.Context, cmd services.CreateItemCommand) (services.Item, error) {
	s.created = cmd
	return s.item, s.err
}

func (s *stubCatalogService) UpdateItem(_ context.Context, cmd services.UpdateItemCommand) (services.Item, error) {
	s.updated = cmd
	return s.item, s.err
}

func (s *stubCatalogService) ToggleItem(_ context.Context, itemID string) (services.Item, error) {
	s.toggled = itemID
	return s.item, s.err
}

func (s *stubCatalogService) DeleteItem(_ context.Context, itemID string) error {
	s.deleted = itemID
	return s.err
}

type stubAnnouncementService struct {
	announcements []services.Announcement
	announcement  services.Announcement
	err           error

	createdTitle   string
	createdContent string
}

func (s *stubAnnouncementService) ListActive(context.Context) ([]services.Announcement, error) {
	return s.announcements, s.err
}

func (s *stubAnnouncementService) ListAll(context.Context) ([]services.Announcement, error) {
	return s.announcements, s.err
}

func (s *stubAnnouncementService) Create(_ context.Context, title, content string) (services.Announcement, error) {
	s.createdTitle = title
	s.createdContent = content
	return s.announcement, s.err
}

func (s *stubAnnouncementService) Toggle(context.Context, string) (services.Announcement, error) {
	return s.announcement, s.err
}

func (s *stubAnnouncementService) Delete(context.Context, string) error {
	return s.err
}

type stubCategoryService struct {
	categories []string
	err        error

	renamedFrom string
	renamedTo   string
}

func (s *stubCategoryService) List(context.Context) ([]string, error) {
	return s.categories, s.err
}

func (s *stubCategoryService) Add(context.Context, string) ([]string, error) {
	return s.categories, s.err
}

func (s *stubCategoryService) Rename(_ context.Context, oldName, newName string) ([]string, error) {
	s.renamedFrom = oldName
	s.renamedTo = newName
	return s.categories, s.err
}

func (s *stubCategoryService) Delete(context.Context, string) ([]string, error) {
	return s.categories, s.err
}

type stubNoteService struct {
	notes []services.AdminNote
	note  services.AdminNote
	err   error
}

func (s *stubNoteService) List(context.Context) ([]services.AdminNote, error) {
	return s.notes, s.err
}

func (s *stubNoteService) Create(context.Context, string) (services.AdminNote, error) {
	return s.note, s.err
}

func (s *stubNoteService) Update(context.Context, string, string) (services.AdminNote, error) {
	return s.note, s.err
}

func (s *stubNoteService) Delete(context.Context, string) error {
	return s.err
}

type stubButtonService struct {
	buttons  []services.AdminButton
	button   services.AdminButton
	err      error
	replaced []services.AdminButton
}

func (s *stubButtonService) List(context.Context) ([]services.AdminButton, error) {
	return s.buttons, s.err
}

func (s *stubButtonService) Add(context.Context, string, string, string) (services.AdminButton, error) {
	return s.button, s.err
}

func (s *stubButtonService) ReplaceAll(_ context.Context, buttons []services.AdminButton) error {
	s.replaced = buttons
	return s.err
}

func (s *stubButtonService) Delete(context.Context, string) error {
	return s.err
}

type stubSettingsService struct {
	settings services.SiteSettings
	colors   services.ThemeColors
	err      error
}

func (s *stubSettingsService) SiteSettings(context.Context) (services.SiteSettings, error) {
	return s.settings, s.err
}

func (s *stubSettingsService) SaveSiteSettings(_ context.Context, settings services.SiteSettings) (services.SiteSettings, error) {
	if s.err != nil {
		return services.SiteSettings{}, s.err
	}
	s.settings = settings
	return settings, nil
}

func (s *stubSettingsService) ThemeColors(context.Context) (services.ThemeColors, error) {
	return s.colors, s.err
}

func (s *stubSettingsService) SaveThemeColors(_ context.Context, colors services.ThemeColors) (services.ThemeColors, error) {
	if s.err != nil {
		return services.ThemeColors{}, s.err
	}
	s.colors = colors
	return colors, nil
}

type stubBannerService struct {
	banner  services.AdBanner
	visible bool
	err     error

	dismissedClient  string
	dismissedMinutes int
	saved            services.AdBanner
	removed          bool
}

func (s *stubBannerService) BannerFor(context.Context, string) (services.AdBanner, bool, error) {
	return s.banner, s.visible, s.err
}

func (s *stubBannerService) Dismiss(_ context.Context, clientID string, minutes int) error {
	s.dismissedClient = clientID
	s.dismissedMinutes = minutes
	return s.err
}

func (s *stubBannerService) Current(context.Context) (services.AdBanner, bool, error) {
	return s.banner, s.visible, s.err
}

func (s *stubBannerService) Save(_ context.Context, banner services.AdBanner) (services.AdBanner, error) {
	s.saved = banner
	return banner, s.err
}

func (s *stubBannerService) Remove(context.Context) error {
	s.removed = true
	return s.err
}

// recordingBannerService captures the client identifier handed to BannerFor.
type recordingBannerService struct {
	stubBannerService
	lastClient string
}

func (s *recordingBannerService) BannerFor(_ context.Context, clientID string) (services.AdBanner, bool, error) {
	s.lastClient = clientID
	return s.banner, s.visible, s.err
}

type stubEngagementService struct {
	count  string
	result services.RatingResult
	err    error

	ratedItem   string
	ratedClient string
	ratedScore  int
}

func (s *stubEngagementService) RecordDownload(context.Context, string) (string, error) {
	return s.count, s.err
}

func (s *stubEngagementService) RateItem(_ context.Context, itemID, clientID string, score int) (services.RatingResult, error) {
	s.ratedItem = itemID
	s.ratedClient = clientID
	s.ratedScore = score
	return s.result, s.err
}

type stubAuthService struct {
	token string
	err   error

	loginUser string
	loginPass string
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, error) {
	s.loginUser = username
	s.loginPass = password
	return s.token, s.err
}

func (s *stubAuthService) ChangePassword(context.Context, string, string) error {
	return s.err
}

type stubSystemService struct {
	err error
}

func (s *stubSystemService) Health(context.Context) error {
	return s.err
}
