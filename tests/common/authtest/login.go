//go:build unit || e2e

package authtest

import (
	"net/http"
	"strings"
	"testing"

	"pricing-admin-api/internal/handler/dto/request"
	"pricing-admin-api/tests/common/dbtest"
	"pricing-admin-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser authenticates and returns the bare JWT from the response body.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token := strings.TrimSpace(w.Body.String())
	require.True(t, strings.HasPrefix(token, "ey"), "Response body is not a JWT: %q", token)

	return token
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, username, role)
	return LoginUser(t, router, username, dbtest.TestPassword)
}
