package restapi

import (
	"context"
	"net/http"
	"training-reels/internal/core/domain"
)

// SignIn exchanges credentials for tokens
func (c *Client) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.AuthTokens, error) {
	var tokens domain.AuthTokens
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// SignOut revokes the current session server side
func (c *Client) SignOut(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) RequestPasswordReset(ctx context.Context, req domain.PasswordResetRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", req, nil)
}

func (c *Client) ResetPassword(ctx context.Context, req domain.PasswordResetConfirm) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password", req, nil)
}

func (c *Client) VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/verify-email", req, nil)
}

func (c *Client) ResendVerification(ctx context.Context, req domain.ResendVerificationRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/resend-verification", req, nil)
}
