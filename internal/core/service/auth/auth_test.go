package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
	"training-reels/internal/adapters/restapi"
	"training-reels/internal/adapters/storage/badger"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/service/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func signedToken(t *testing.T, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func tokens(access string) *domain.AuthTokens {
	return &domain.AuthTokens{
		AccessToken: access,
		User:        domain.User{ID: "user-1", Email: "tech@plant.example", Name: "Tech"},
	}
}

func TestSignIn_StoresSession(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	access := signedToken(t, time.Now().Add(time.Hour))
	api.On("SignIn", mock.Anything, domain.SignInRequest{Email: "tech@plant.example", Password: "s3cret"}).
		Return(tokens(access), nil)

	session := auth.NewSession(nil, discardLogger)
	service := auth.NewAuthService(api, session, discardLogger)

	// Act
	user, err := service.SignIn(context.Background(), " tech@plant.example ", "s3cret")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, access, service.AccessToken())
	current, ok := service.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Tech", current.Name)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt(), 2*time.Second)
}

func TestSignIn_InvalidEmail(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	service := auth.NewAuthService(api, auth.NewSession(nil, discardLogger), discardLogger)

	// Act
	_, err := service.SignIn(context.Background(), "not-an-email", "pw")

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	api.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything)
}

func TestSignIn_Rejected(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	api.On("SignIn", mock.Anything, mock.Anything).Return((*domain.AuthTokens)(nil), domain.ErrUnauthorized)
	service := auth.NewAuthService(api, auth.NewSession(nil, discardLogger), discardLogger)

	// Act
	_, err := service.SignIn(context.Background(), "tech@plant.example", "wrong")

	// Assert
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, service.AccessToken())
}

func TestSession_ExpiredTokenIsNotHandedOut(t *testing.T) {
	// Arrange
	session := auth.NewSession(nil, discardLogger)

	// Act
	session.Set(context.Background(), *tokens(signedToken(t, time.Now().Add(-time.Minute))))

	// Assert
	assert.Empty(t, session.AccessToken())
	_, ok := session.User()
	assert.False(t, ok)
}

func TestSession_OpaqueTokenUsesAPIExpiry(t *testing.T) {
	// Arrange
	session := auth.NewSession(nil, discardLogger)
	t1 := tokens("opaque-token")
	t1.ExpiresAt = time.Now().Add(30 * time.Minute)

	// Act
	session.Set(context.Background(), *t1)

	// Assert
	assert.Equal(t, "opaque-token", session.AccessToken())
	assert.Equal(t, t1.ExpiresAt, session.ExpiresAt())
}

func TestSession_RestoresFromStore(t *testing.T) {
	// Arrange
	store, err := badger.Open(context.Background(), "", discardLogger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	access := signedToken(t, time.Now().Add(time.Hour))
	auth.NewSession(store, discardLogger).Set(context.Background(), *tokens(access))

	restored := auth.NewSession(store, discardLogger)

	// Act
	ok := restored.Restore(context.Background())

	// Assert
	require.True(t, ok)
	assert.Equal(t, access, restored.AccessToken())
}

func TestSignOut_ClearsSessionEvenOnFailure(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	api.On("SignIn", mock.Anything, mock.Anything).Return(tokens("opaque"), nil)
	api.On("SignOut", mock.Anything).Return(errors.New("gateway timeout"))
	service := auth.NewAuthService(api, auth.NewSession(nil, discardLogger), discardLogger)
	_, err := service.SignIn(context.Background(), "tech@plant.example", "pw")
	require.NoError(t, err)

	// Act
	err = service.SignOut(context.Background())

	// Assert
	require.Error(t, err)
	assert.Empty(t, service.AccessToken())
}

func TestSignOut_NotSignedIn(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	service := auth.NewAuthService(api, auth.NewSession(nil, discardLogger), discardLogger)

	// Act
	err := service.SignOut(context.Background())

	// Assert
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
	api.AssertNotCalled(t, "SignOut", mock.Anything)
}

func TestResetPassword_ValidatesLength(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	api.On("ResetPassword", mock.Anything, domain.PasswordResetConfirm{Token: "tok", Password: "longenough"}).Return(nil)
	service := auth.NewAuthService(api, auth.NewSession(nil, discardLogger), discardLogger)

	// Act
	shortErr := service.ResetPassword(context.Background(), "tok", "short")
	okErr := service.ResetPassword(context.Background(), "tok", "longenough")

	// Assert
	assert.ErrorIs(t, shortErr, domain.ErrInvalidRequest)
	assert.NoError(t, okErr)
}

func TestEmailFlows(t *testing.T) {
	// Arrange
	api := restapi.NewMockAPI()
	api.On("RequestPasswordReset", mock.Anything, domain.PasswordResetRequest{Email: "tech@plant.example"}).Return(nil)
	api.On("VerifyEmail", mock.Anything, domain.VerifyEmailRequest{Token: "verify"}).Return(nil)
	api.On("ResendVerification", mock.Anything, domain.ResendVerificationRequest{Email: "tech@plant.example"}).Return(nil)
	service := auth.NewAuthService(api, auth.NewSession(nil, discardLogger), discardLogger)
	ctx := context.Background()

	// Act
	errs := []error{
		service.RequestPasswordReset(ctx, "tech@plant.example"),
		service.VerifyEmail(ctx, "verify"),
		service.ResendVerification(ctx, "tech@plant.example"),
	}

	// Assert
	for _, err := range errs {
		assert.NoError(t, err)
	}
	api.AssertExpectations(t)
}
