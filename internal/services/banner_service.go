package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/repositories"
)

// BannerServiceDeps groups constructor parameters for the banner service.
type BannerServiceDeps struct {
	Repository  repositories.SettingsRepository
	Preferences PreferenceStore
	Publisher   Publisher
	Clock       func() time.Time
	// DismissWindow is the dismissal duration applied when the caller does
	// not supply one.
	DismissWindow time.Duration
}

type bannerService struct {
	repo          repositories.SettingsRepository
	prefStore     PreferenceStore
	publisher     Publisher
	clock         func() time.Time
	dismissWindow time.Duration
}

const defaultDismissWindow = 5 * time.Minute

// NewBannerService constructs the banner service with the supplied dependencies.
func NewBannerService(deps BannerServiceDeps) (BannerService, error) {
	if deps.Repository == nil {
		return nil, ErrSettingsRepositoryMissing
	}
	if deps.Preferences == nil {
		return nil, ErrPreferenceStoreMissing
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = NoopPublisher()
	}
	window := deps.DismissWindow
	if window <= 0 {
		window = defaultDismissWindow
	}
	return &bannerService{
		repo:          deps.Repository,
		prefStore:     deps.Preferences,
		publisher:     publisher,
		clock:         func() time.Time { return clock().UTC() },
		dismissWindow: window,
	}, nil
}

// BannerFor returns the banner when it is active and not currently dismissed
// by this client. An expired dismissal is cleared on read.
func (s *bannerService) BannerFor(ctx context.Context, clientID string) (AdBanner, bool, error) {
	banner, found, err := s.repo.AdBanner(ctx)
	if err != nil {
		return AdBanner{}, false, err
	}
	if !found || !banner.IsActive {
		return AdBanner{}, false, nil
	}

	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return banner, true, nil
	}

	key := dismissKey(clientID)
	value, err := s.prefStore.Get(ctx, key)
	if err != nil {
		return banner, true, nil
	}

	until, parseErr := strconv.ParseInt(value, 10, 64)
	if parseErr != nil {
		_ = s.prefStore.Remove(ctx, key)
		return banner, true, nil
	}

	if s.clock().UnixMilli() < until {
		return AdBanner{}, false, nil
	}

	// The dismissal has lapsed; clear it so the banner shows again.
	_ = s.prefStore.Remove(ctx, key)
	return banner, true, nil
}

// Dismiss hides the banner from clientID until now plus the requested number
// of minutes.
func (s *bannerService) Dismiss(ctx context.Context, clientID string, minutes int) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return ErrClientRequired
	}

	window := time.Duration(minutes) * time.Minute
	if window <= 0 {
		window = s.dismissWindow
	}

	until := s.clock().Add(window).UnixMilli()
	return s.prefStore.Set(ctx, dismissKey(clientID), strconv.FormatInt(until, 10))
}

// Current returns the banner regardless of activity, for the admin console.
func (s *bannerService) Current(ctx context.Context) (AdBanner, bool, error) {
	return s.repo.AdBanner(ctx)
}

// Save overwrites the singleton banner. The identifier is fixed.
func (s *bannerService) Save(ctx context.Context, banner AdBanner) (AdBanner, error) {
	if strings.TrimSpace(banner.Title) == "" {
		return AdBanner{}, ErrTitleRequired
	}
	if strings.TrimSpace(banner.Content) == "" {
		return AdBanner{}, ErrContentRequired
	}

	banner.ID = domain.AdBannerID
	if banner.DateCreated == "" {
		banner.DateCreated = isoTimestamp(s.clock())
	}

	if err := s.repo.SaveAdBanner(ctx, banner); err != nil {
		return AdBanner{}, err
	}
	s.publisher.CollectionChanged(CollectionAdBanner)
	return banner, nil
}

// Remove deletes the banner entirely.
func (s *bannerService) Remove(ctx context.Context) error {
	_, found, err := s.repo.AdBanner(ctx)
	if err != nil {
		return err
	}
	if !found {
		return ErrBannerNotFound
	}
	if err := s.repo.RemoveAdBanner(ctx); err != nil {
		return err
	}
	s.publisher.CollectionChanged(CollectionAdBanner)
	return nil
}

func dismissKey(clientID string) string {
	return "ad_dismissed_until:" + clientID
}
