package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/pkg/apperrors"
	"github.com/campushub/registra/internal/pkg/auth"
	"github.com/campushub/registra/internal/seed"
)

func newAuthService(t *testing.T) (*AuthService, func() context.Context) {
	t.Helper()
	store := newSeededStore(t)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	return NewAuthService(store, jwtService), context.Background
}

func TestRegisterDuplicateUsernameCaseInsensitive(t *testing.T) {
	svc, ctx := newAuthService(t)

	_, err := svc.Register(ctx(), "ADMIN", "secret123", "", "Student", nil)
	assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
}

func TestRegisterDefaultsToStudentRole(t *testing.T) {
	svc, ctx := newAuthService(t)

	account, err := svc.Register(ctx(), "newuser", "secret123", "new@university.edu", "", nil)
	require.NoError(t, err)

	assert.Equal(t, models.RoleStudent, account.Role)
	assert.Empty(t, account.Password)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, ctx := newAuthService(t)

	_, err := svc.Register(ctx(), "newuser", "secret123", "", "superuser", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterRejectsMissingStudentLink(t *testing.T) {
	svc, ctx := newAuthService(t)

	missing := int64(999)
	_, err := svc.Register(ctx(), "newuser", "secret123", "", "Student", &missing)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestRegisterThenLogin(t *testing.T) {
	svc, ctx := newAuthService(t)

	_, err := svc.Register(ctx(), "newuser", "secret123", "", "Teacher", nil)
	require.NoError(t, err)

	account, tokens, err := svc.Login(ctx(), "NewUser", "secret123")
	require.NoError(t, err)

	assert.Equal(t, models.RoleInstructor, account.Role)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, 3600, tokens.ExpiresIn)
}

func TestLoginSeededAccounts(t *testing.T) {
	svc, ctx := newAuthService(t)

	for _, username := range []string{"admin", "teacher", "student"} {
		account, tokens, err := svc.Login(ctx(), username, seed.DemoPassword)
		require.NoError(t, err, "login %q", username)
		assert.Equal(t, username, account.Username)
		assert.NotEmpty(t, tokens.AccessToken)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, ctx := newAuthService(t)

	_, _, err := svc.Login(ctx(), "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, ctx := newAuthService(t)

	_, _, err := svc.Login(ctx(), "ghost", seed.DemoPassword)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetUserByUsernameSanitizes(t *testing.T) {
	svc, ctx := newAuthService(t)

	account, err := svc.GetUserByUsername(ctx(), "student")
	require.NoError(t, err)

	assert.Empty(t, account.Password)
	require.NotNil(t, account.StudentID)
	assert.EqualValues(t, 1, *account.StudentID)
}
