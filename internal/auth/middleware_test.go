package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signAccessToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func setupProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_ACCESS_SECRET", "test-access-secret")

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		adminID := c.MustGet("adminID").(uint)
		c.JSON(http.StatusOK, gin.H{"admin_id": adminID})
	})
	return r
}

func getProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	r := setupProtectedRouter(t)

	token := signAccessToken(t, "test-access-secret", jwt.MapClaims{
		"admin_id": 42,
		"exp":      time.Now().Add(time.Minute).Unix(),
		"iat":      time.Now().Unix(),
	})

	w := getProtected(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin_id":42`)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r := setupProtectedRouter(t)

	w := getProtected(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "NO_AUTH_HEADER")
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	r := setupProtectedRouter(t)

	token := signAccessToken(t, "test-access-secret", jwt.MapClaims{
		"admin_id": 42,
		"exp":      time.Now().Add(-time.Minute).Unix(),
		"iat":      time.Now().Add(-time.Hour).Unix(),
	})

	w := getProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddlewareRejectsWrongKey(t *testing.T) {
	r := setupProtectedRouter(t)

	token := signAccessToken(t, "some-other-secret", jwt.MapClaims{
		"admin_id": 42,
		"exp":      time.Now().Add(time.Minute).Unix(),
	})

	w := getProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// The middleware must see the secret that is in the environment at
// request time. A token signed before a secret rotation stops working
// once the environment changes.
func TestAuthMiddlewarePicksUpRotatedSecret(t *testing.T) {
	r := setupProtectedRouter(t)

	token := signAccessToken(t, "test-access-secret", jwt.MapClaims{
		"admin_id": 42,
		"exp":      time.Now().Add(time.Minute).Unix(),
	})
	require.Equal(t, http.StatusOK, getProtected(r, "Bearer "+token).Code)

	t.Setenv("JWT_ACCESS_SECRET", "rotated-secret")
	assert.Equal(t, http.StatusUnauthorized, getProtected(r, "Bearer "+token).Code)
}
