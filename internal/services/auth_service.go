package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/kovfs/api/internal/domain"
	"github.com/kovfs/api/internal/repositories"
)

// TokenIssuer mints session tokens for authenticated admins.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// AuthServiceDeps groups constructor parameters for the auth service.
type AuthServiceDeps struct {
	Repository repositories.SettingsRepository
	Tokens     TokenIssuer
}

type authService struct {
	repo   repositories.SettingsRepository
	tokens TokenIssuer
}

// ErrTokenIssuerMissing signals that the token issuer dependency is absent.
var ErrTokenIssuerMissing = errors.New("auth service: token issuer is not configured")

// NewAuthService constructs the auth service with the supplied dependencies.
func NewAuthService(deps AuthServiceDeps) (AuthService, error) {
	if deps.Repository == nil {
		return nil, ErrSettingsRepositoryMissing
	}
	if deps.Tokens == nil {
		return nil, ErrTokenIssuerMissing
	}
	return &authService{repo: deps.Repository, tokens: deps.Tokens}, nil
}

// Login compares the submitted credentials against the stored shared secret
// and issues a session token on success. The secret is intentionally stored
// and compared as plaintext; the gate is a console convenience, not account
// security.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	stored, err := s.currentCredentials(ctx)
	if err != nil {
		return "", err
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(stored.Username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(stored.Password)) == 1
	if !usernameOK || !passwordOK {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(stored.Username)
}

// ChangePassword replaces the stored password after verifying the current one.
func (s *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	stored, err := s.currentCredentials(ctx)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(currentPassword), []byte(stored.Password)) != 1 {
		return ErrPasswordMismatch
	}
	if len(strings.TrimSpace(newPassword)) < 6 {
		return ErrPasswordTooShort
	}

	stored.Password = newPassword
	return s.repo.SaveCredentials(ctx, stored)
}

func (s *authService) currentCredentials(ctx context.Context) (domain.Credentials, error) {
	stored, found, err := s.repo.Credentials(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}
	if !found {
		return domain.Credentials{
			Username: domain.DefaultAdminUsername,
			Password: domain.DefaultAdminPassword,
		}, nil
	}
	return stored, nil
}
