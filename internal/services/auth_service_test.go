package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kovfs/api/internal/domain"
)

type stubTokenIssuer struct {
	issued []string
	err    error
}

func (s *stubTokenIssuer) Issue(username string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.issued = append(s.issued, username)
	return "token-for-" + username, nil
}

func newTestAuth(t *testing.T, repo *stubSettingsRepository) (AuthService, *stubTokenIssuer) {
	t.Helper()
	issuer := &stubTokenIssuer{}
	svc, err := NewAuthService(AuthServiceDeps{Repository: repo, Tokens: issuer})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc, issuer
}

func TestLoginWithBuiltInDefaults(t *testing.T) {
	svc, issuer := newTestAuth(t, &stubSettingsRepository{})
	ctx := context.Background()

	token, err := svc.Login(ctx, domain.DefaultAdminUsername, domain.DefaultAdminPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "token-for-"+domain.DefaultAdminUsername {
		t.Errorf("unexpected token %q", token)
	}
	if len(issuer.issued) != 1 {
		t.Errorf("expected one issued token, got %d", len(issuer.issued))
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	svc, _ := newTestAuth(t, &stubSettingsRepository{})
	ctx := context.Background()

	cases := []struct{ username, password string }{
		{domain.DefaultAdminUsername, "wrong"},
		{"wrong", domain.DefaultAdminPassword},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Login(ctx, tc.username, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("login %q/%q: expected ErrInvalidCredentials, got %v", tc.username, tc.password, err)
		}
	}
}

func TestLoginUsesSavedCredentials(t *testing.T) {
	repo := &stubSettingsRepository{credentials: &domain.Credentials{Username: "admin", Password: "changed-pass"}}
	svc, _ := newTestAuth(t, repo)
	ctx := context.Background()

	if _, err := svc.Login(ctx, domain.DefaultAdminUsername, domain.DefaultAdminPassword); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("defaults must stop working once credentials are saved, got %v", err)
	}
	if _, err := svc.Login(ctx, "admin", "changed-pass"); err != nil {
		t.Errorf("saved credentials rejected: %v", err)
	}
}

func TestLoginPropagatesStoreFailure(t *testing.T) {
	repo := &stubSettingsRepository{credentialsErr: errStoreDown}
	svc, _ := newTestAuth(t, repo)

	if _, err := svc.Login(context.Background(), "raze", "11223344"); !errors.Is(err, errStoreDown) {
		t.Errorf("expected store failure to propagate, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	repo := &stubSettingsRepository{}
	svc, _ := newTestAuth(t, repo)
	ctx := context.Background()

	t.Run("wrong current password", func(t *testing.T) {
		if err := svc.ChangePassword(ctx, "nope", "new-password"); !errors.Is(err, ErrPasswordMismatch) {
			t.Errorf("expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("too short", func(t *testing.T) {
		if err := svc.ChangePassword(ctx, domain.DefaultAdminPassword, "12345"); !errors.Is(err, ErrPasswordTooShort) {
			t.Errorf("expected ErrPasswordTooShort, got %v", err)
		}
	})

	t.Run("success persists new secret", func(t *testing.T) {
		if err := svc.ChangePassword(ctx, domain.DefaultAdminPassword, "fresh-secret"); err != nil {
			t.Fatalf("ChangePassword: %v", err)
		}
		if repo.credentials == nil || repo.credentials.Password != "fresh-secret" {
			t.Fatalf("credentials not saved: %+v", repo.credentials)
		}
		if repo.credentials.Username != domain.DefaultAdminUsername {
			t.Errorf("username must carry over, got %q", repo.credentials.Username)
		}

		if _, err := svc.Login(ctx, domain.DefaultAdminUsername, "fresh-secret"); err != nil {
			t.Errorf("login with new password failed: %v", err)
		}
	})
}
