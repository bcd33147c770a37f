package services

import (
	"context"
	"fmt"

	"github.com/campushub/registra/internal/app/models"
	"github.com/campushub/registra/internal/app/repositories"
	"github.com/campushub/registra/internal/pkg/apperrors"
	"github.com/campushub/registra/internal/pkg/auth"
	"github.com/campushub/registra/internal/pkg/dberrors"
	"github.com/campushub/registra/internal/pkg/logger"
)

// TokenPair holds the result of a successful login.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	ExpiresIn        int
	RefreshExpiresIn int
}

// AuthService handles registration and authentication.
type AuthService struct {
	store      repositories.Store
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service.
func NewAuthService(store repositories.Store, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		store:      store,
		jwtService: jwtService,
	}
}

// Register creates a user account. An empty role defaults to Student.
// Usernames are unique case-insensitively.
func (s *AuthService) Register(ctx context.Context, username, password, email, roleName string, studentID *int64) (*models.UserAccount, error) {
	role, err := models.ParseRole(roleName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error())
	}

	existing, err := s.store.Accounts().GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUsernameExists
	}

	if studentID != nil {
		student, err := s.store.Students().GetByID(ctx, *studentID)
		if err != nil {
			return nil, fmt.Errorf("failed to check student link: %w", err)
		}
		if student == nil {
			return nil, apperrors.ErrStudentNotFound
		}
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.UserAccount{
		Username:  username,
		Password:  hashed,
		Email:     email,
		Role:      role,
		StudentID: studentID,
	}

	created, err := s.store.Accounts().Add(ctx, account)
	if err != nil {
		// The store-level uniqueness backstop catches concurrent registrations.
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("Account registered")
	return created.Sanitized(), nil
}

// Login verifies credentials and issues a token pair. Username matching is
// case-insensitive. Wrong username and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.UserAccount, *TokenPair, error) {
	account, err := s.store.Accounts().GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(account.Password, password) {
		logger.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(account)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	logger.Info().Str("username", account.Username).Msg("User logged in")

	return account.Sanitized(), &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

// GetUserByUsername returns an account without its credentials.
func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (*models.UserAccount, error) {
	account, err := s.store.Accounts().GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, apperrors.ErrAccountNotFound
	}
	return account.Sanitized(), nil
}

// LinkedStudentID resolves the student record linked to a username, used
// when the token claims carry no student id.
func (s *AuthService) LinkedStudentID(ctx context.Context, username string) (*int64, error) {
	account, err := s.store.Accounts().GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, apperrors.ErrAccountNotFound
	}
	return account.StudentID, nil
}
