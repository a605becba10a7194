//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "makespace/internal/handler/dto/request"
	resdto "makespace/internal/handler/dto/response"
	commonhttp "makespace/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin authenticates the test admin account and returns its access
// token. Credentials match config.NewTestConfig.
func LoginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: "admin@example.com", Password: "password"}, "")
	require.Equal(t, http.StatusOK, w.Code, "admin login failed: %s", w.Body.String())

	var body resdto.LoginResponse
	require.NoError(t, commonhttp.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.AccessToken)

	return body.AccessToken
}
