package v1

import (
	"errors"
	"net/http"

	"github.com/estateregistry-api/config"
	"github.com/estateregistry-api/dto"
	"github.com/estateregistry-api/middleware"
	"github.com/estateregistry-api/services"
	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 15 * 24 * 60 * 60 // seconds, matches token expiry

// setSessionCookie attaches the signed token as an HTTP-only,
// SameSite=Strict cookie; Secure outside local deployments.
func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.SessionCookie, // name
		token,                    // value
		sessionMaxAge,            // max age
		"/",                      // path
		"",                       // domain
		config.IsProduction(),    // secure
		true,                     // httpOnly
	)
}

// Register handles user registration and logs the new user in.
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Name, login id and a password of at least 6 characters are required.")
		return
	}

	auth, err := services.Register(req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			fail(c, "User already exists")
			return
		}
		internalError(c, "Error registering user:", err)
		return
	}

	setSessionCookie(c, auth.Token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "User registered and logged in successfully",
		"user":    auth.User,
	})
}

// Login handles user authentication.
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "Login id and password are required.")
		return
	}

	auth, err := services.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, "Invalid Login Id or password")
			return
		}
		internalError(c, "Error logging in:", err)
		return
	}

	setSessionCookie(c, auth.Token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "Login successful",
		"user":    auth.User,
	})
}

// GetCurrentUser returns the profile of the session's subject.
func GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		fail(c, "User not logged In.")
		return
	}

	user, err := services.GetUser(userID)
	if err != nil {
		fail(c, "Invalid session token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "User data retrieved successfully.",
		"user":    user,
	})
}

// GetCurrentUserID returns just the session subject's id.
func GetCurrentUserID(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		fail(c, "Login to continue.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"userId":  userID,
	})
}
