package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pesagem/internal/model"
)

// TokenExpiry is the fixed validity window for session tokens.
const TokenExpiry = 8 * time.Hour

// Claims carries the caller's identity inside the session token. Tokens are
// self-contained: no session row exists server side.
type Claims struct {
	UserID       uint       `json:"user_id"`
	Username     string     `json:"username"`
	Role         model.Role `json:"role"`
	NomeCompleto string     `json:"nome_completo"`
	jwt.RegisteredClaims
}

// Identity is the request-scoped view of the authenticated caller, extracted
// from the token by the router middleware and consumed by every service.
type Identity struct {
	UserID       uint
	Username     string
	Role         model.Role
	NomeCompleto string
}

// Identity converts validated claims into the caller identity.
func (c *Claims) Identity() Identity {
	return Identity{
		UserID:       c.UserID,
		Username:     c.Username,
		Role:         c.Role,
		NomeCompleto: c.NomeCompleto,
	}
}

// JWTService handles token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given signing secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// GenerateToken issues a signed session token for the user. The jti lets a
// logout blacklist the token until it expires naturally.
func (s *JWTService) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		NomeCompleto: user.NomeCompleto,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a session token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
