package port

import (
	"context"
	"training-reels/internal/core/domain"
)

// TokenProvider hands the bearer credential to the REST client
type TokenProvider interface {
	AccessToken() string
}

// AuthAPI is the auth part of the REST API
type AuthAPI interface {
	SignIn(ctx context.Context, req domain.SignInRequest) (*domain.AuthTokens, error)
	SignOut(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, req domain.PasswordResetRequest) error
	ResetPassword(ctx context.Context, req domain.PasswordResetConfirm) error
	VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error
	ResendVerification(ctx context.Context, req domain.ResendVerificationRequest) error
}

// AuthService manages the user session
type AuthService interface {
	TokenProvider
	SignIn(ctx context.Context, email, password string) (*domain.User, error)
	SignOut(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	CurrentUser() (*domain.User, bool)
}
