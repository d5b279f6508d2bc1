package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/repositories"
)

// DefaultAnnouncementTitle is used when the admin leaves the title blank.
const DefaultAnnouncementTitle = "ประกาศ"

// AnnouncementServiceDeps groups constructor parameters for the announcement service.
type AnnouncementServiceDeps struct {
	Repository repositories.AnnouncementRepository
	Publisher  Publisher
	Clock      func() time.Time
}

type announcementService struct {
	repo      repositories.AnnouncementRepository
	publisher Publisher
	clock     func() time.Time
}

// ErrAnnouncementRepositoryMissing signals that the announcement repository dependency is absent.
var ErrAnnouncementRepositoryMissing = errors.New("announcement service: announcement repository is not configured")

// NewAnnouncementService constructs the announcement service with the supplied dependencies.
func NewAnnouncementService(deps AnnouncementServiceDeps) (AnnouncementService, error) {
	if deps.Repository == nil {
		return nil, ErrAnnouncementRepositoryMissing
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = NoopPublisher()
	}
	return &announcementService{
		repo:      deps.Repository,
		publisher: publisher,
		clock:     func() time.Time { return clock().UTC() },
	}, nil
}

func (s *announcementService) ListActive(ctx context.Context) ([]Announcement, error) {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]Announcement, 0, len(all))
	for _, a := range all {
		if a.IsActive {
			active = append(active, a)
		}
	}
	return active, nil
}

func (s *announcementService) ListAll(ctx context.Context) ([]Announcement, error) {
	return s.repo.FetchAll(ctx)
}

func (s *announcementService) Create(ctx context.Context, title, content string) (Announcement, error) {
	if strings.TrimSpace(content) == "" {
		return Announcement{}, ErrContentRequired
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultAnnouncementTitle
	}

	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return Announcement{}, err
	}

	now := s.clock()
	announcement := Announcement{
		ID:          domain.NewRecordID(now),
		Title:       title,
		Content:     content,
		IsActive:    true,
		DateCreated: isoTimestamp(now),
	}

	all = append(all, announcement)
	if err := s.repo.ReplaceAll(ctx, all); err != nil {
		return Announcement{}, err
	}
	s.publisher.CollectionChanged(CollectionAnnouncements)
	return announcement, nil
}

func (s *announcementService) Toggle(ctx context.Context, announcementID string) (Announcement, error) {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return Announcement{}, err
	}

	for i := range all {
		if all[i].ID != announcementID {
			continue
		}
		all[i].IsActive = !all[i].IsActive
		if err := s.repo.ReplaceAll(ctx, all); err != nil {
			return Announcement{}, err
		}
		s.publisher.CollectionChanged(CollectionAnnouncements)
		return all[i], nil
	}
	return Announcement{}, ErrAnnouncementNotFound
}

func (s *announcementService) Delete(ctx context.Context, announcementID string) error {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]Announcement, 0, len(all))
	found := false
	for _, a := range all {
		if a.ID == announcementID {
			found = true
			continue
		}
		remaining = append(remaining, a)
	}
	if !found {
		return ErrAnnouncementNotFound
	}

	if err := s.repo.ReplaceAll(ctx, remaining); err != nil {
		return err
	}
	s.publisher.CollectionChanged(CollectionAnnouncements)
	return nil
}
