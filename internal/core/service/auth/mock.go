package auth

import (
	"context"
	"training-reels/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) AccessToken() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) ResendVerification(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser() (*domain.User, bool) {
	args := m.Called()
	return args.Get(0).(*domain.User), args.Bool(1)
}
