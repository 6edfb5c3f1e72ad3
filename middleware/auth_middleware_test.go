package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/estateregistry-api/middleware"
	"github.com/estateregistry-api/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", middleware.Identity(), func(c *gin.Context) {
		id, ok := middleware.UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "authenticated": ok})
	})
	r.GET("/private", middleware.Identity(), middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter()

	t.Run("valid cookie yields the subject", func(t *testing.T) {
		token, _, err := services.GenerateToken("user-42")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"user-42"`)
		assert.Contains(t, w.Body.String(), `"authenticated":true`)
	})

	t.Run("missing cookie means absent identity, not an error", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/whoami", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})

	t.Run("tampered cookie means absent identity", func(t *testing.T) {
		token, _, err := services.GenerateToken("user-42")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token + "x"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter()

	t.Run("fails closed without a session", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/private", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), "Login to continue.")
	})

	t.Run("passes through with a session", func(t *testing.T) {
		token, _, err := services.GenerateToken("user-42")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/private", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), `"success":true`)
	})
}
