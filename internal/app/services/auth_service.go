package services

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/store"
	"github.com/attendly/attendly/internal/pkg/apperrors"
	"github.com/attendly/attendly/internal/pkg/auth"
)

// AuthService defines the login and profile operations
type AuthService interface {
	Login(email, password string) (models.User, string, int, error)
	Profile(userID int64) (models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	store      *store.Store
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(st *store.Store, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:      st,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login matches the email case-insensitively against the user collection
// and issues an access token. There is no stored credential to verify;
// any non-empty password is accepted for a known email.
func (s *authServiceImpl) Login(email, password string) (models.User, string, int, error) {
	if email == "" || password == "" {
		return models.User{}, "", 0, apperrors.ErrInvalidCredentials
	}

	user, err := s.store.UserByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return models.User{}, "", 0, apperrors.ErrInvalidCredentials
		}
		return models.User{}, "", 0, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(&user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to issue access token")
		return models.User{}, "", 0, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return user, token, expiresIn, nil
}

// Profile returns the user record behind an authenticated identity.
func (s *authServiceImpl) Profile(userID int64) (models.User, error) {
	return s.store.UserByID(userID)
}
