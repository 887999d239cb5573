package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pesagem/internal/auth"
	"pesagem/internal/authz"
	apperrors "pesagem/internal/errors"
	"pesagem/internal/model"
	"pesagem/internal/repository"
)

// UserInput carries the fields an administrator may set on a user. Password
// is optional on update: empty means keep the current hash.
type UserInput struct {
	Username       string     `json:"username" validate:"required"`
	Password       string     `json:"password"`
	Role           model.Role `json:"role"`
	NomeCompleto   string     `json:"nome_completo"`
	CPF            string     `json:"cpf"`
	CNH            string     `json:"cnh"`
	PlacaCavalo    string     `json:"placa_cavalo"`
	PlacasCarretas string     `json:"placas_carretas"`
}

// UserService is the master-only user administration surface.
type UserService interface {
	List(ctx context.Context, ident auth.Identity) ([]model.User, error)
	Create(ctx context.Context, in UserInput, ident auth.Identity) (*model.User, error)
	Update(ctx context.Context, id uint, in UserInput, ident auth.Identity) (*model.User, error)
	Delete(ctx context.Context, id uint, ident auth.Identity) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context, ident auth.Identity) ([]model.User, error) {
	if !authz.Allow(ident.Role, authz.ResourceUtilizadores, authz.ActionRead, "", "") {
		return nil, apperrors.ErrForbidden
	}
	return s.repo.List(ctx)
}

// Create lets an administrator create an account with an arbitrary role.
func (s *userService) Create(ctx context.Context, in UserInput, ident auth.Identity) (*model.User, error) {
	if !authz.Allow(ident.Role, authz.ResourceUtilizadores, authz.ActionCreate, "", "") {
		return nil, apperrors.ErrForbidden
	}

	role := in.Role
	if !role.Valid() {
		role = model.RoleMotorista
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:       in.Username,
		PasswordHash:   string(hashed),
		Role:           role,
		NomeCompleto:   in.NomeCompleto,
		CPF:            in.CPF,
		CNH:            in.CNH,
		PlacaCavalo:    in.PlacaCavalo,
		PlacasCarretas: in.PlacasCarretas,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update overwrites the profile fields and role. The password hash changes
// only when a non-empty password is submitted.
func (s *userService) Update(ctx context.Context, id uint, in UserInput, ident auth.Identity) (*model.User, error) {
	if !authz.Allow(ident.Role, authz.ResourceUtilizadores, authz.ActionUpdate, "", "") {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = in.Username
	if in.Role.Valid() {
		user.Role = in.Role
	}
	user.NomeCompleto = in.NomeCompleto
	user.CPF = in.CPF
	user.CNH = in.CNH
	user.PlacaCavalo = in.PlacaCavalo
	user.PlacasCarretas = in.PlacasCarretas

	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete refuses to remove a master account so an administrator cannot lock
// everyone out through the generic delete-by-id path.
func (s *userService) Delete(ctx context.Context, id uint, ident auth.Identity) error {
	if !authz.Allow(ident.Role, authz.ResourceUtilizadores, authz.ActionDelete, "", "") {
		return apperrors.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == model.RoleMaster {
		return apperrors.ErrMasterProtected
	}
	return s.repo.Delete(ctx, id)
}
