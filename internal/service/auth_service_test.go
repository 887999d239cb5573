package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pesagem/internal/auth"
	apperrors "pesagem/internal/errors"
	"pesagem/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Blacklist(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	jwtService := auth.NewJWTService("test-secret")

	t.Run("success returns token with role claim", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", ctx, "admin").Return(&model.User{
			ID:           1,
			Username:     "admin",
			PasswordHash: hashFor(t, "123"),
			Role:         model.RoleMaster,
			NomeCompleto: "Administrador",
		}, nil)

		svc := NewAuthService(repo, jwtService, new(MockTokenStore))
		token, user, err := svc.Login(ctx, "admin", "123")
		assert.NoError(t, err)
		assert.Equal(t, model.RoleMaster, user.Role)

		claims, err := jwtService.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleMaster, claims.Role)
		assert.Equal(t, "Administrador", claims.NomeCompleto)
	})

	t.Run("unknown username and wrong password yield the same error", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)
		repo.On("FindByUsername", ctx, "admin").Return(&model.User{
			Username:     "admin",
			PasswordHash: hashFor(t, "123"),
		}, nil)

		svc := NewAuthService(repo, jwtService, new(MockTokenStore))

		_, _, errUnknown := svc.Login(ctx, "ghost", "123")
		_, _, errWrongPass := svc.Login(ctx, "admin", "wrong")

		assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	jwtService := auth.NewJWTService("test-secret")

	t.Run("forces motorista role and hashes the password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Role == model.RoleMotorista &&
				u.PasswordHash != "segredo" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("segredo")) == nil
		})).Return(nil)

		svc := NewAuthService(repo, jwtService, new(MockTokenStore))
		user, err := svc.Register(ctx, "alice", "segredo", model.User{NomeCompleto: "Alice Souza"})
		assert.NoError(t, err)
		assert.Equal(t, model.RoleMotorista, user.Role)
		assert.Equal(t, "Alice Souza", user.NomeCompleto)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username maps to ErrUsernameTaken", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

		svc := NewAuthService(repo, jwtService, new(MockTokenStore))
		_, err := svc.Register(ctx, "alice", "segredo", model.User{})
		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	jwtService := auth.NewJWTService("test-secret")

	t.Run("blacklists the jti for the remaining lifetime", func(t *testing.T) {
		token, err := jwtService.GenerateToken(&model.User{ID: 1, Username: "admin", Role: model.RoleMaster})
		assert.NoError(t, err)
		claims, err := jwtService.ValidateToken(token)
		assert.NoError(t, err)

		store := new(MockTokenStore)
		store.On("Blacklist", ctx, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 0 && ttl <= auth.TokenExpiry
		})).Return(nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, store)
		assert.NoError(t, svc.Logout(ctx, claims))
		store.AssertExpectations(t)
	})

	t.Run("claims without jti are a no-op", func(t *testing.T) {
		store := new(MockTokenStore)
		svc := NewAuthService(new(MockUserRepository), jwtService, store)
		assert.NoError(t, svc.Logout(ctx, &auth.Claims{}))
		store.AssertNotCalled(t, "Blacklist", mock.Anything, mock.Anything, mock.Anything)
	})
}
