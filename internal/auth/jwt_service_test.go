package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pesagem/internal/model"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := &model.User{
		ID:           7,
		Username:     "alice",
		Role:         model.RoleMotorista,
		NomeCompleto: "Alice Souza",
	}

	token, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, model.RoleMotorista, claims.Role)
	assert.Equal(t, "Alice Souza", claims.NomeCompleto)
	assert.NotEmpty(t, claims.ID, "token should carry a jti for the logout blacklist")

	ident := claims.Identity()
	assert.Equal(t, "Alice Souza", ident.NomeCompleto)
	assert.Equal(t, model.RoleMotorista, ident.Role)
}

func TestTokenExpiryWindow(t *testing.T) {
	svc := NewJWTService("test-secret")
	token, err := svc.GenerateToken(&model.User{ID: 1, Username: "admin", Role: model.RoleMaster})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, TokenExpiry-time.Minute)
	assert.LessOrEqual(t, remaining, TokenExpiry)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(&model.User{ID: 1, Username: "admin"})
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
