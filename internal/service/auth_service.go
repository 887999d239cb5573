package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pesagem/internal/auth"
	apperrors "pesagem/internal/errors"
	"pesagem/internal/model"
	"pesagem/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication operations.
type AuthService interface {
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	// Register creates a self-service account. The role is always motorista;
	// privileged accounts are created through user management.
	Register(ctx context.Context, username, password string, profile model.User) (*model.User, error)
	// Logout blacklists the presented token until its natural expiry.
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Login authenticates a user. A missing user and a wrong password produce the
// same error so the response never reveals whether the username exists.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// Register creates a new motorista account with a hashed password.
func (s *authService) Register(ctx context.Context, username, password string, profile model.User) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:       username,
		PasswordHash:   string(hashed),
		Role:           model.RoleMotorista,
		NomeCompleto:   profile.NomeCompleto,
		CPF:            profile.CPF,
		CNH:            profile.CNH,
		PlacaCavalo:    profile.PlacaCavalo,
		PlacasCarretas: profile.PlacasCarretas,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Logout blacklists the token's jti for its remaining lifetime. An already
// expired token is a no-op.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	return s.tokenStore.Blacklist(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}
