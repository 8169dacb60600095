package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
)

// TokensKey is the storage key of the persisted session
const TokensKey = "auth_tokens"

// Session holds the signed in user's tokens and hands the access token to the REST client.
// It is safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	tokens    *domain.AuthTokens
	expiresAt time.Time
	store     port.KeyValueStore
	logger    *slog.Logger
}

// NewSession creates an empty session. store may be nil, the session then lives in memory only.
func NewSession(store port.KeyValueStore, logger *slog.Logger) *Session {
	return &Session{store: store, logger: logger}
}

// AccessToken returns the bearer credential, empty when signed out or expired
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tokens == nil || s.expired() {
		return ""
	}
	return s.tokens.AccessToken
}

// User returns the signed in user while the session is valid
func (s *Session) User() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tokens == nil || s.expired() {
		return nil, false
	}
	user := s.tokens.User
	return &user, true
}

// ExpiresAt is the zero time when the token carries no expiry
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

func (s *Session) expired() bool {
	return !s.expiresAt.IsZero() && !time.Now().Before(s.expiresAt)
}

// Set replaces the session tokens and persists them
func (s *Session) Set(ctx context.Context, tokens domain.AuthTokens) {
	s.mu.Lock()
	s.tokens = &tokens
	s.expiresAt = tokenExpiry(tokens.AccessToken, tokens.ExpiresAt)
	s.mu.Unlock()

	if s.store == nil {
		return
	}
	raw, err := json.Marshal(tokens)
	if err != nil {
		s.logger.Debug("could not encode session", "error", err)
		return
	}
	if err := s.store.Set(ctx, TokensKey, raw); err != nil {
		s.logger.Warn("could not persist session", "error", err)
	}
}

// Clear forgets the tokens locally and in the store
func (s *Session) Clear(ctx context.Context) {
	s.mu.Lock()
	s.tokens = nil
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	if s.store == nil {
		return
	}
	if err := s.store.Delete(ctx, TokensKey); err != nil {
		s.logger.Warn("could not delete persisted session", "error", err)
	}
}

// Restore loads persisted tokens. A missing or expired session leaves it signed out.
func (s *Session) Restore(ctx context.Context) bool {
	if s.store == nil {
		return false
	}

	raw, err := s.store.Get(ctx, TokensKey)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			s.logger.Debug("could not read persisted session", "error", err)
		}
		return false
	}

	var tokens domain.AuthTokens
	if err := json.Unmarshal(raw, &tokens); err != nil {
		s.logger.Debug("persisted session is corrupt", "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = &tokens
	s.expiresAt = tokenExpiry(tokens.AccessToken, tokens.ExpiresAt)
	if s.expired() {
		s.tokens = nil
		return false
	}
	return true
}

// tokenExpiry reads the exp claim without verifying the signature, the API is the one that verifies.
func tokenExpiry(accessToken string, fallback time.Time) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil || claims.ExpiresAt == nil {
		return fallback
	}
	return claims.ExpiresAt.Time
}
