package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kovfs/api/internal/repositories"
)

// Rating defaults applied to items that have never been voted on.
const (
	defaultRating      = 4.5
	defaultRatingCount = 100
)

// ErrClientRequired signals a missing client identifier on a per-client operation.
var ErrClientRequired = errors.New("clientId is required")

// EngagementServiceDeps groups constructor parameters for the engagement service.
type EngagementServiceDeps struct {
	Repository  repositories.ItemRepository
	Preferences PreferenceStore
	Publisher   Publisher
	Clock       func() time.Time
}

type engagementService struct {
	repo      repositories.ItemRepository
	prefStore PreferenceStore
	publisher Publisher
	clock     func() time.Time
}

// ErrPreferenceStoreMissing signals that the preference store dependency is absent.
var ErrPreferenceStoreMissing = errors.New("engagement service: preference store is not configured")

// NewEngagementService constructs the engagement service with the supplied dependencies.
func NewEngagementService(deps EngagementServiceDeps) (EngagementService, error) {
	if deps.Repository == nil {
		return nil, ErrItemRepositoryMissing
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
	return &engagementService{
		repo:      deps.Repository,
		prefStore: deps.Preferences,
		publisher: publisher,
		clock:     func() time.Time { return clock().UTC() },
	}, nil
}

// RecordDownload bumps the item's human-readable download counter and returns
// the new display string.
func (s *engagementService) RecordDownload(ctx context.Context, itemID string) (string, error) {
	items, err := s.repo.FetchAll(ctx)
	if err != nil {
		return "", err
	}

	for i := range items {
		if items[i].ID != itemID {
			continue
		}

		count := parseDownloadCount(items[i].DownloadCount) + 1
		items[i].DownloadCount = formatDownloadCount(count)

		if err := s.repo.ReplaceAll(ctx, items); err != nil {
			return "", err
		}
		s.publisher.CollectionChanged(CollectionItems)
		return items[i].DownloadCount, nil
	}
	return "", ErrItemNotFound
}

// RateItem applies a 1..5 vote from clientID. A repeat vote from the same
// client replaces its prior contribution without growing the vote count.
func (s *engagementService) RateItem(ctx context.Context, itemID, clientID string, score int) (RatingResult, error) {
	if strings.TrimSpace(clientID) == "" {
		return RatingResult{}, ErrClientRequired
	}
	if score < 1 || score > 5 {
		return RatingResult{}, ErrInvalidScore
	}

	items, err := s.repo.FetchAll(ctx)
	if err != nil {
		return RatingResult{}, err
	}

	for i := range items {
		if items[i].ID != itemID {
			continue
		}

		rating := items[i].Rating
		if rating == 0 {
			rating = defaultRating
		}
		count := items[i].RatingCount
		if count == 0 {
			count = defaultRatingCount
		}

		key := ratingKey(clientID, itemID)
		previous, hadPrevious := s.previousScore(ctx, key)

		var newRating float64
		newCount := count
		if hadPrevious {
			total := rating*float64(count) - float64(previous) + float64(score)
			newRating = total / float64(count)
		} else {
			total := rating*float64(count) + float64(score)
			newCount = count + 1
			newRating = total / float64(newCount)
		}
		newRating = math.Round(newRating*10) / 10

		items[i].Rating = newRating
		items[i].RatingCount = newCount

		if err := s.repo.ReplaceAll(ctx, items); err != nil {
			return RatingResult{}, err
		}
		if err := s.prefStore.Set(ctx, key, strconv.Itoa(score)); err != nil {
			return RatingResult{}, err
		}
		s.publisher.CollectionChanged(CollectionItems)
		return RatingResult{Rating: newRating, RatingCount: newCount}, nil
	}
	return RatingResult{}, ErrItemNotFound
}

func (s *engagementService) previousScore(ctx context.Context, key string) (int, bool) {
	value, err := s.prefStore.Get(ctx, key)
	if err != nil {
		// Absent key or store failure both mean the client has no counted vote.
		return 0, false
	}
	score, err := strconv.Atoi(value)
	if err != nil || score < 1 || score > 5 {
		return 0, false
	}
	return score, true
}

func ratingKey(clientID, itemID string) string {
	return fmt.Sprintf("user_rating:%s:%s", clientID, itemID)
}

// parseDownloadCount recovers the numeric value behind a display string like
// "500+", "2K+", or "1M+". Only the digits and a K or M multiplier count.
func parseDownloadCount(raw string) int64 {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}

	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, "M"):
		return n * 1_000_000
	case strings.Contains(upper, "K"):
		return n * 1_000
	}
	return n
}

// formatDownloadCount renders a numeric count back into the display format.
func formatDownloadCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%dM+", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%dK+", n/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}
