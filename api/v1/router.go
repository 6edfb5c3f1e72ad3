package v1

import (
	"github.com/estateregistry-api/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes. Identity is decoded once
// per request by the middleware; only routes that need a session fail
// closed via RequireAuth. Section endpoints only require a resolvable
// project id, mirroring the original route wiring.
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// User endpoints
	userGroup := router.Group("/user")
	userGroup.Use(middleware.Identity())
	{
		userGroup.POST("/register", Register)
		userGroup.POST("/login", Login)
		userGroup.POST("/logout", Logout)
		userGroup.GET("", GetCurrentUser)
		userGroup.GET("/id", GetCurrentUserID)
		userGroup.GET("/projects", middleware.RequireAuth(), ListProjects)
	}

	// Project endpoints
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.Identity())
	{
		projectGroup.POST("/new", middleware.RequireAuth(), CreateProject)

		projectGroup.GET("/:id", GetProject)
		projectGroup.DELETE("/:id", DeleteProject)

		projectGroup.PATCH("/:id/basic-info", SaveBasicInfo)
		projectGroup.PATCH("/:id/property-info", SavePropertyInfo)
		projectGroup.PATCH("/:id/amenities", SaveAmenities)
		projectGroup.PATCH("/:id/gallery", SaveGallery)
		projectGroup.PATCH("/:id/documents", SaveDocuments)

		projectGroup.GET("/:id/basic-info", GetBasicInfo)
		projectGroup.GET("/:id/property-info", GetPropertyInfo)
		projectGroup.GET("/:id/amenities", GetAmenities)
		projectGroup.GET("/:id/gallery", GetGallery)
		projectGroup.GET("/:id/documents", GetDocuments)

		projectGroup.DELETE("/:id/gallery/:type/:filename", DeleteGalleryFile)
		projectGroup.DELETE("/:id/documents/:filename", DeleteDocument)
	}
}
