package jwt

import (
	"context"
	"testing"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	branchID := "branch-1"

	token, expiresAt, err := svc.GenerateAccessToken("user-1", auth.RoleAdmin, &branchID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	parsed, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "ADMIN", claims["role"])
	assert.Equal(t, "branch-1", claims["branch_id"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_NoBranchForSuperAdmin(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateAccessToken("user-1", auth.RoleSuperAdmin, nil)
	require.NoError(t, err)

	parsed, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)

	_, hasBranch := claims["branch_id"]
	assert.False(t, hasBranch)
}

func TestParseRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateAccessToken("user-1", auth.RoleSuperAdmin, nil)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRefreshToken_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	_, err := svc.ParseRefreshToken("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestCallerFromClaims(t *testing.T) {
	caller, err := CallerFromClaims(map[string]interface{}{
		"user_id":   "user-1",
		"role":      "ADMIN",
		"branch_id": "branch-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", caller.UserID)
	assert.Equal(t, auth.RoleAdmin, caller.Role)
	require.NotNil(t, caller.BranchID)
	assert.Equal(t, "branch-1", *caller.BranchID)

	_, err = CallerFromClaims(map[string]interface{}{"user_id": "user-1", "role": "MANAGER"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = CallerFromClaims(map[string]interface{}{"role": "ADMIN"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
