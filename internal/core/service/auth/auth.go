package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"
)

type authService struct {
	api     port.AuthAPI
	session *Session
	logger  *slog.Logger
}

// NewAuthService creates a new auth service on top of session
func NewAuthService(api port.AuthAPI, session *Session, logger *slog.Logger) port.AuthService {
	return &authService{
		api:     api,
		session: session,
		logger:  logger,
	}
}

func (s *authService) AccessToken() string {
	return s.session.AccessToken()
}

func (s *authService) CurrentUser() (*domain.User, bool) {
	return s.session.User()
}

// SignIn authenticates and stores the returned tokens in the session
func (s *authService) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	req := domain.SignInRequest{Email: strings.TrimSpace(email), Password: password}
	if err := domain.Validate(req); err != nil {
		return nil, err
	}

	tokens, err := s.api.SignIn(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}

	s.session.Set(ctx, *tokens)
	s.logger.Info("signed in", "user", tokens.User.ID, "expires_at", s.session.ExpiresAt())
	return &tokens.User, nil
}

// SignOut always clears the local session, the API error is still returned
func (s *authService) SignOut(ctx context.Context) error {
	if s.session.AccessToken() == "" {
		s.session.Clear(ctx)
		return domain.ErrNotSignedIn
	}

	err := s.api.SignOut(ctx)
	s.session.Clear(ctx)
	if err != nil {
		s.logger.Warn("sign out request failed, local session cleared", "error", err)
		return fmt.Errorf("sign out failed: %w", err)
	}
	return nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	req := domain.PasswordResetRequest{Email: strings.TrimSpace(email)}
	if err := domain.Validate(req); err != nil {
		return err
	}
	return s.api.RequestPasswordReset(ctx, req)
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	req := domain.PasswordResetConfirm{Token: token, Password: newPassword}
	if err := domain.Validate(req); err != nil {
		return err
	}
	return s.api.ResetPassword(ctx, req)
}

func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	req := domain.VerifyEmailRequest{Token: token}
	if err := domain.Validate(req); err != nil {
		return err
	}
	return s.api.VerifyEmail(ctx, req)
}

func (s *authService) ResendVerification(ctx context.Context, email string) error {
	req := domain.ResendVerificationRequest{Email: strings.TrimSpace(email)}
	if err := domain.Validate(req); err != nil {
		return err
	}
	return s.api.ResendVerification(ctx, req)
}
