package services

import (
	"context"
	"errors"

	"github.com/kovfs/api/internal/repositories"
)

// SystemServiceDeps groups constructor parameters for the system service.
type SystemServiceDeps struct {
	Health repositories.HealthRepository
}

type systemService struct {
	health repositories.HealthRepository
}

// ErrHealthRepositoryMissing signals that the health repository dependency is absent.
var ErrHealthRepositoryMissing = errors.New("system service: health repository is not configured")

// NewSystemService constructs the system service with the supplied dependencies.
func NewSystemService(deps SystemServiceDeps) (SystemService, error) {
	if deps.Health == nil {
		return nil, ErrHealthRepositoryMissing
	}
	return &systemService{health: deps.Health}, nil
}

// Health checks that the backing store answers reads.
func (s *systemService) Health(ctx context.Context) error {
	return s.health.Ping(ctx)
}
