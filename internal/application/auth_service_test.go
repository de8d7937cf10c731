package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonecast/zonecast/internal/domain/entity"
	"github.com/zonecast/zonecast/internal/domain/repository"
	"github.com/zonecast/zonecast/pkg/helpers"
)

const testSecret = "unit-test-secret-with-32-bytes!!"

type mockUserRepository struct {
	createFunc        func(ctx context.Context, u *entity.User) error
	getByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *entity.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestAuthService(repo *mockUserRepository) *AuthService {
	jwt := helpers.NewJWTManager(testSecret, 30*time.Minute)
	return NewAuthService(repo, jwt, testLogger())
}

func TestRegisterSuccess(t *testing.T) {
	var created *entity.User
	repo := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, u *entity.User) error {
			u.ID = 1
			created = u
			return nil
		},
	}
	svc := newTestAuthService(repo)

	err := svc.Register(context.Background(), "alice", "supersecret")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "alice", created.Username)
	assert.NotEqual(t, "supersecret", created.PasswordHash)
	assert.True(t, helpers.VerifyPassword(created.PasswordHash, "supersecret"))
}

func TestRegisterUsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return &entity.User{ID: 1, Username: username}, nil
		},
	}
	svc := newTestAuthService(repo)

	err := svc.Register(context.Background(), "alice", "supersecret")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterDuplicateRaceLostToConstraint(t *testing.T) {
	// The pre-check passes but a concurrent insert wins; the store's
	// uniqueness constraint is the authoritative guard.
	repo := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, u *entity.User) error {
			return repository.ErrDuplicateUsername
		},
	}
	svc := newTestAuthService(repo)

	err := svc.Register(context.Background(), "alice", "supersecret")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginSuccessReturnsVerifiableToken(t *testing.T) {
	hash, err := helpers.HashPassword("supersecret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return &entity.User{ID: 42, Username: username, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	res, err := svc.Login(context.Background(), "alice", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(1800), res.ExpiresIn)

	uid, err := svc.JWT.Verify(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := helpers.HashPassword("supersecret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return &entity.User{ID: 42, Username: username, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), "alice", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	repo := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			return nil, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	// Unknown user and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
