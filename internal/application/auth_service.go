package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/zonecast/zonecast/internal/domain/entity"
	"github.com/zonecast/zonecast/internal/domain/repository"
	"github.com/zonecast/zonecast/pkg/helpers"
)

// AuthService orchestrates registration and login against the user store
// and the token issuer.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// AuthResult is the login payload: a bearer token plus its lifetime.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Register creates a new identity. The pre-check below is the fast path;
// the authoritative duplicate guard is the username uniqueness constraint,
// whose violation the repository reports as ErrDuplicateUsername.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	existing, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	u := &entity.User{Username: username, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return err
	}
	s.Logger.WithField("user_id", u.ID).Info("user registered")
	return nil
}

// Login verifies credentials and issues a bearer token. Unknown user and
// wrong password collapse into one generic failure so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || !helpers.VerifyPassword(u.PasswordHash, password) {
		s.Logger.WithField("username", username).Warn("failed login attempt")
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.JWT.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", u.ID).Info("successful login")
	return &AuthResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.JWT.TTL.Seconds()),
	}, nil
}
