package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pesagem/internal/auth"
	"pesagem/internal/authz"
	apperrors "pesagem/internal/errors"
	"pesagem/internal/model"
	"pesagem/internal/repository"
)

// ReferenciaService covers one reference list (produtos, origens or
// destinos): readable by any authenticated user, writable by master only.
type ReferenciaService interface {
	List(ctx context.Context, ident auth.Identity) ([]model.Referencia, error)
	Create(ctx context.Context, nome string, ident auth.Identity) (*model.Referencia, error)
	Update(ctx context.Context, id uint, nome string, ident auth.Identity) (*model.Referencia, error)
	Delete(ctx context.Context, id uint, ident auth.Identity) error
}

type referenciaService struct {
	repo repository.ReferenciaRepository
}

// NewReferenciaService creates a service over one reference-list repository.
func NewReferenciaService(repo repository.ReferenciaRepository) ReferenciaService {
	return &referenciaService{repo: repo}
}

func (s *referenciaService) List(ctx context.Context, ident auth.Identity) ([]model.Referencia, error) {
	if !authz.Allow(ident.Role, authz.ResourceReferencias, authz.ActionRead, "", "") {
		return nil, apperrors.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *referenciaService) Create(ctx context.Context, nome string, ident auth.Identity) (*model.Referencia, error) {
	if !authz.Allow(ident.Role, authz.ResourceReferencias, authz.ActionCreate, "", "") {
		return nil, apperrors.ErrForbidden
	}

	ref := &model.Referencia{Nome: nome}
	if err := s.repo.Create(ctx, ref); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrNomeTaken
		}
		return nil, fmt.Errorf("create referencia: %w", err)
	}
	return ref, nil
}

func (s *referenciaService) Update(ctx context.Context, id uint, nome string, ident auth.Identity) (*model.Referencia, error) {
	if !authz.Allow(ident.Role, authz.ResourceReferencias, authz.ActionUpdate, "", "") {
		return nil, apperrors.ErrForbidden
	}

	ref, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ref.Nome = nome
	if err := s.repo.Update(ctx, ref); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrNomeTaken
		}
		return nil, fmt.Errorf("update referencia: %w", err)
	}
	return ref, nil
}

// Delete removes a reference-list entry. Lancamentos referencing the name
// keep their denormalized copy; nothing cascades.
func (s *referenciaService) Delete(ctx context.Context, id uint, ident auth.Identity) error {
	if !authz.Allow(ident.Role, authz.ResourceReferencias, authz.ActionDelete, "", "") {
		return apperrors.ErrForbidden
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
