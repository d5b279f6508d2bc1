package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/repositories"
)

// ButtonServiceDeps groups constructor parameters for the button service.
type ButtonServiceDeps struct {
	Repository repositories.ButtonRepository
	Publisher  Publisher
	Clock      func() time.Time
}

type buttonService struct {
	repo      repositories.ButtonRepository
	publisher Publisher
	clock     func() time.Time
}

// ErrButtonRepositoryMissing signals that the button repository dependency is absent.
var ErrButtonRepositoryMissing = errors.New("button service: button repository is not configured")

// NewButtonService constructs the button service with the supplied dependencies.
func NewButtonService(deps ButtonServiceDeps) (ButtonService, error) {
	if deps.Repository == nil {
		return nil, ErrButtonRepositoryMissing
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = NoopPublisher()
	}
	return &buttonService{
		repo:      deps.Repository,
		publisher: publisher,
		clock:     func() time.Time { return clock().UTC() },
	}, nil
}

func (s *buttonService) List(ctx context.Context) ([]AdminButton, error) {
	return s.repo.FetchAll(ctx)
}

func (s *buttonService) Add(ctx context.Context, label, url, icon string) (AdminButton, error) {
	label = strings.TrimSpace(label)
	url = strings.TrimSpace(url)
	if label == "" {
		return AdminButton{}, ErrLabelRequired
	}
	if url == "" {
		return AdminButton{}, ErrURLRequired
	}
	parsedIcon, ok := domain.ParseButtonIcon(strings.TrimSpace(icon))
	if !ok {
		return AdminButton{}, ErrInvalidIcon
	}

	buttons, err := s.repo.FetchAll(ctx)
	if err != nil {
		return AdminButton{}, err
	}

	button := AdminButton{
		ID:    domain.NewRecordID(s.clock()),
		Label: label,
		URL:   url,
		Icon:  string(parsedIcon),
	}

	buttons = append(buttons, button)
	if err := s.repo.ReplaceAll(ctx, buttons); err != nil {
		return AdminButton{}, err
	}
	s.publisher.CollectionChanged(CollectionButtons)
	return button, nil
}

func (s *buttonService) ReplaceAll(ctx context.Context, buttons []AdminButton) error {
	for i := range buttons {
		if strings.TrimSpace(buttons[i].Label) == "" {
			return ErrLabelRequired
		}
		if strings.TrimSpace(buttons[i].URL) == "" {
			return ErrURLRequired
		}
		// Unknown icons degrade to the default glyph rather than failing a
		// bulk replace.
		buttons[i].Icon = string(domain.NormalizeButtonIcon(buttons[i].Icon))
	}

	if err := s.repo.ReplaceAll(ctx, buttons); err != nil {
		return err
	}
	s.publisher.CollectionChanged(CollectionButtons)
	return nil
}

func (s *buttonService) Delete(ctx context.Context, buttonID string) error {
	buttons, err := s.repo.FetchAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]AdminButton, 0, len(buttons))
	found := false
	for _, button := range buttons {
		if button.ID == buttonID {
			found = true
			continue
		}
		remaining = append(remaining, button)
	}
	if !found {
		return ErrButtonNotFound
	}

	if err := s.repo.ReplaceAll(ctx, remaining); err != nil {
		return err
	}
	s.publisher.CollectionChanged(CollectionButtons)
	return nil
}
