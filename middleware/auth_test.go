package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("/", ValidateToken)
	authed.GET("/me", func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	admin := authed.Group("/admin", RequireRole("Admin"))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	require.Equal(t, http.StatusUnauthorized, doGet(r, "/me", "").Code)

	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.Equal(t, http.StatusUnauthorized, doGet(r, "/me", wrongKey).Code)

	expired := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	require.Equal(t, http.StatusUnauthorized, doGet(r, "/me", expired).Code)

	valid := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	rec := doGet(r, "/me", valid)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"user_id":"u1"`)
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	plainUser := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u1",
		"roles":   []string{"User"},
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.Equal(t, http.StatusForbidden, doGet(r, "/admin/ping", plainUser).Code)

	admin := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u1",
		"roles":   []string{"User", "Admin"},
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.Equal(t, http.StatusOK, doGet(r, "/admin/ping", admin).Code)
}
