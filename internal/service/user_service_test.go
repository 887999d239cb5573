package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "pesagem/internal/errors"
	"pesagem/internal/model"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	master := identityFor(model.RoleMaster, "Administrador")

	t.Run("master creates a user with an arbitrary role", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Role == model.RoleAuditor && u.Username == "carol"
		})).Return(nil)

		svc := NewUserService(repo)
		user, err := svc.Create(ctx, UserInput{Username: "carol", Password: "pw", Role: model.RoleAuditor}, master)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAuditor, user.Role)
	})

	t.Run("unknown role falls back to motorista", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Role == model.RoleMotorista
		})).Return(nil)

		svc := NewUserService(repo)
		_, err := svc.Create(ctx, UserInput{Username: "dave", Password: "pw", Role: "chefe"}, master)
		assert.NoError(t, err)
	})

	t.Run("non-master callers are forbidden", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository))
		for _, role := range []model.Role{model.RoleMotorista, model.RoleAuditor, model.RoleVisualizador} {
			_, err := svc.Create(ctx, UserInput{Username: "x", Password: "pw"}, identityFor(role, "Someone"))
			assert.ErrorIs(t, err, apperrors.ErrForbidden, "role %s", role)
		}
	})

	t.Run("duplicate username maps to ErrUsernameTaken", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

		svc := NewUserService(repo)
		_, err := svc.Create(ctx, UserInput{Username: "carol", Password: "pw"}, master)
		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	master := identityFor(model.RoleMaster, "Administrador")

	t.Run("empty password keeps the current hash", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, uint(2)).Return(&model.User{ID: 2, Username: "alice", PasswordHash: "$old-hash"}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.PasswordHash == "$old-hash"
		})).Return(nil)

		svc := NewUserService(repo)
		_, err := svc.Update(ctx, 2, UserInput{Username: "alice", NomeCompleto: "Alice Souza"}, master)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("non-empty password is rehashed", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, uint(2)).Return(&model.User{ID: 2, Username: "alice", PasswordHash: "$old-hash"}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.PasswordHash != "$old-hash" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("nova-senha")) == nil
		})).Return(nil)

		svc := NewUserService(repo)
		_, err := svc.Update(ctx, 2, UserInput{Username: "alice", Password: "nova-senha"}, master)
		assert.NoError(t, err)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	master := identityFor(model.RoleMaster, "Administrador")

	t.Run("master account cannot be deleted", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, uint(1)).Return(&model.User{ID: 1, Username: "admin", Role: model.RoleMaster}, nil)

		svc := NewUserService(repo)
		err := svc.Delete(ctx, 1, master)
		assert.ErrorIs(t, err, apperrors.ErrMasterProtected)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("regular accounts delete fine", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, uint(2)).Return(&model.User{ID: 2, Username: "alice", Role: model.RoleMotorista}, nil)
		repo.On("Delete", ctx, uint(2)).Return(nil)

		svc := NewUserService(repo)
		assert.NoError(t, svc.Delete(ctx, 2, master))
		repo.AssertExpectations(t)
	})

	t.Run("motorista cannot manage users", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository))
		err := svc.Delete(ctx, 2, identityFor(model.RoleMotorista, "Alice Souza"))
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("master lists everyone", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("List", ctx).Return([]model.User{{ID: 1}, {ID: 2}}, nil)

		svc := NewUserService(repo)
		users, err := svc.List(ctx, identityFor(model.RoleMaster, "Administrador"))
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("auditor may not list users", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository))
		_, err := svc.List(ctx, identityFor(model.RoleAuditor, "Carol"))
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}
