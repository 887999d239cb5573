package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "pesagem/internal/errors"
	"pesagem/internal/model"
)

// MockReferenciaRepository is a mock implementation of ReferenciaRepository.
type MockReferenciaRepository struct {
	mock.Mock
}

func (m *MockReferenciaRepository) Create(ctx context.Context, ref *model.Referencia) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockReferenciaRepository) Update(ctx context.Context, ref *model.Referencia) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockReferenciaRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReferenciaRepository) FindByID(ctx context.Context, id uint) (*model.Referencia, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Referencia), args.Error(1)
}

func (m *MockReferenciaRepository) List(ctx context.Context) ([]model.Referencia, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Referencia), args.Error(1)
}

func TestReferenciaService(t *testing.T) {
	ctx := context.Background()
	master := identityFor(model.RoleMaster, "Administrador")

	t.Run("any authenticated role may list", func(t *testing.T) {
		for _, role := range []model.Role{model.RoleMaster, model.RoleMotorista, model.RoleAuditor, model.RoleVisualizador} {
			repo := new(MockReferenciaRepository)
			repo.On("List", ctx).Return([]model.Referencia{{ID: 1, Nome: "Soja"}}, nil)

			svc := NewReferenciaService(repo)
			refs, err := svc.List(ctx, identityFor(role, "Someone"))
			assert.NoError(t, err, "role %s", role)
			assert.Len(t, refs, 1)
		}
	})

	t.Run("only master may write", func(t *testing.T) {
		svc := NewReferenciaService(new(MockReferenciaRepository))
		for _, role := range []model.Role{model.RoleMotorista, model.RoleAuditor, model.RoleVisualizador} {
			ident := identityFor(role, "Someone")

			_, err := svc.Create(ctx, "Trigo", ident)
			assert.ErrorIs(t, err, apperrors.ErrForbidden, "create as %s", role)

			_, err = svc.Update(ctx, 1, "Trigo", ident)
			assert.ErrorIs(t, err, apperrors.ErrForbidden, "update as %s", role)

			err = svc.Delete(ctx, 1, ident)
			assert.ErrorIs(t, err, apperrors.ErrForbidden, "delete as %s", role)
		}
	})

	t.Run("create maps duplicate names", func(t *testing.T) {
		repo := new(MockReferenciaRepository)
		repo.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

		svc := NewReferenciaService(repo)
		_, err := svc.Create(ctx, "Soja", master)
		assert.ErrorIs(t, err, apperrors.ErrNomeTaken)
	})

	t.Run("update renames an existing entry", func(t *testing.T) {
		repo := new(MockReferenciaRepository)
		repo.On("FindByID", ctx, uint(1)).Return(&model.Referencia{ID: 1, Nome: "Soja"}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(ref *model.Referencia) bool {
			return ref.ID == 1 && ref.Nome == "Soja Premium"
		})).Return(nil)

		svc := NewReferenciaService(repo)
		ref, err := svc.Update(ctx, 1, "Soja Premium", master)
		assert.NoError(t, err)
		assert.Equal(t, "Soja Premium", ref.Nome)
	})

	t.Run("delete of a missing entry surfaces not found", func(t *testing.T) {
		repo := new(MockReferenciaRepository)
		repo.On("FindByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewReferenciaService(repo)
		err := svc.Delete(ctx, 9, master)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
