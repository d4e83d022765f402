//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"pricing-admin-api/internal/domain/user"
	"pricing-admin-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.NewService("unit-test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleOperator, "tenant-1", "store-1")
	require.NoError(t, err)
	assert.True(t, len(token) > 0)
	assert.Equal(t, "ey", token[:2], "JWT should be base64-encoded JSON")

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "operator", claims.Role)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, "store-1", claims.StoreID)
}

func TestGenerateToken_EmptyScopes(t *testing.T) {
	svc := jwt.NewService("unit-test-secret", time.Hour)

	token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin, "", "")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.TenantID)
	assert.Empty(t, claims.StoreID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := jwt.NewService("unit-test-secret", -time.Minute)

	token, err := svc.GenerateToken(uuid.New(), user.RoleViewer, "", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := jwt.NewService("secret-a", time.Hour)
	verifier := jwt.NewService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(uuid.New(), user.RoleViewer, "", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := jwt.NewService("unit-test-secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
