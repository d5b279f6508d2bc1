package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/repositories"
)

// NoteServiceDeps groups constructor parameters for the note service.
type NoteServiceDeps struct {
	Repository repositories.NoteRepository
	Publisher  Publisher
	Clock      func() time.Time
}

type noteService struct {
	repo      repositories.NoteRepository
	publisher Publisher
	clock     func() time.Time
}

// ErrNoteRepositoryMissing signals that the note repository dependency is absent.
var ErrNoteRepositoryMissing = errors.New("note service: note repository is not configured")

// NewNoteService constructs the note service with the supplied dependencies.
func NewNoteService(deps NoteServiceDeps) (NoteService, error) {
	if deps.Repository == nil {
		return nil, ErrNoteRepositoryMissing
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = NoopPublisher()
	}
	return &noteService{
		repo:      deps.Repository,
		publisher: publisher,
		clock:     func() time.Time { return clock().UTC() },
	}, nil
}

func (s *noteService) List(ctx context.Context) ([]AdminNote, error) {
	return s.repo.FetchAll(ctx)
}

func (s *noteService) Create(ctx context.Context, content string) (AdminNote, error) {
	if strings.TrimSpace(content) == "" {
		return AdminNote{}, ErrContentRequired
	}

	notes, err := s.repo.FetchAll(ctx)
	if err != nil {
		return AdminNote{}, err
	}

	now := s.clock()
	note := AdminNote{
		ID:          domain.NewRecordID(now),
		Content:     content,
		DateCreated: isoTimestamp(now),
		DateUpdated: isoTimestamp(now),
	}

	notes = append(notes, note)
	if err := s.repo.ReplaceAll(ctx, notes); err != nil {
		return AdminNote{}, err
	}
	s.publisher.CollectionChanged(CollectionNotes)
	return note, nil
}

func (s *noteService) Update(ctx context.Context, noteID, content string) (AdminNote, error) {
	if strings.TrimSpace(content) == "" {
		return AdminNote{}, ErrContentRequired
	}

	notes, err := s.repo.FetchAll(ctx)
	if err != nil {
		return AdminNote{}, err
	}

	for i := range notes {
		if notes[i].ID != noteID {
			continue
		}
		notes[i].Content = content
		notes[i].DateUpdated = isoTimestamp(s.clock())
		if err := s.repo.ReplaceAll(ctx, notes); err != nil {
			return AdminNote{}, err
		}
		s.publisher.CollectionChanged(CollectionNotes)
		return notes[i], nil
	}
	return AdminNote{}, ErrNoteNotFound
}

func (s *noteService) Delete(ctx context.Context, noteID string) error {
	notes, err := s.repo.FetchAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]AdminNote, 0, len(notes))
	found := false
	for _, note := range notes {
		if note.ID == noteID {
			found = true
			continue
		}
		remaining = append(remaining, note)
	}
	if !found {
		return ErrNoteNotFound
	}

	if err := s.repo.ReplaceAll(ctx, remaining); err != nil {
		return err
	}
	s.publisher.CollectionChanged(CollectionNotes)
	return nil
}
