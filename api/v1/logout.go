package v1

import (
	"net/http"

	"github.com/estateregistry-api/config"
	"github.com/estateregistry-api/middleware"
	"github.com/gin-gonic/gin"
)

// Logout clears the session cookie. The token itself stays valid
// until natural expiry; there is no server-side revocation.
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.SessionCookie, // name
		"",                       // value (empty)
		-1,                       // max age (expired)
		"/",                      // path
		"",                       // domain
		config.IsProduction(),    // secure
		true,                     // httpOnly
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "Logged out successfully.",
	})
}
