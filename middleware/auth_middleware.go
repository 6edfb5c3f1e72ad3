package middleware

import (
	"net/http"

	"github.com/estateregistry-api/services"
	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "jwt"

const identityKey = "userId"

// Identity decodes the session cookie once per request into a typed
// context value. Verification failure of any kind (missing cookie,
// expired, malformed, bad signature) just leaves the identity absent;
// it is never a hard error.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if claims, err := services.ValidateToken(token); err == nil {
				c.Set(identityKey, claims.UserID)
			}
		}
		c.Next()
	}
}

// RequireAuth fails closed when no identity was established. The
// failure is reported in-body, matching the rest of the API surface.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(identityKey); !ok {
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"status":  "Login to continue.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated subject, if any. Handlers consume
// identity explicitly through this instead of reading ambient state.
func UserID(c *gin.Context) (string, bool) {
	id, ok := c.Get(identityKey)
	if !ok {
		return "", false
	}
	userID, ok := id.(string)
	return userID, ok && userID != ""
}
