package auth

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// ErrInvalidSession is returned when a token fails verification for any reason.
var ErrInvalidSession = errors.New("auth: invalid session token")

// SessionManager issues and verifies HMAC-signed admin session tokens.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	clock  func() time.Time

	mu      sync.Mutex
	entropy *rand.Rand
}

// NewSessionManager constructs a manager signing with secret. Tokens expire
// after ttl.
func NewSessionManager(secret string, ttl time.Duration, clock func() time.Time) (*SessionManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth: session secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("auth: session ttl must be positive")
	}
	if clock == nil {
		clock = time.Now
	}
	return &SessionManager{
		secret:  []byte(secret),
		ttl:     ttl,
		clock:   clock,
		entropy: rand.New(rand.NewSource(clock().UnixNano())),
	}, nil
}

// Issue mints a signed session token for the given admin username.
func (m *SessionManager) Issue(username string) (string, error) {
	now := m.clock()

	m.mu.Lock()
	sessionID := ulid.MustNew(ulid.Timestamp(now), m.entropy).String()
	m.mu.Unlock()

	claims := jwt.RegisteredClaims{
		Subject:   username,
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns the admin username.
func (m *SessionManager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidSession
	}
	if claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}
