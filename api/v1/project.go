package v1

import (
	"errors"
	"net/http"

	"github.com/estateregistry-api/middleware"
	"github.com/estateregistry-api/services"
	"github.com/gin-gonic/gin"
)

var projectService = services.NewProjectService()

// CreateProject creates an empty aggregate owned by the caller and
// returns its id; sections are filled in by later partial updates.
func CreateProject(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		fail(c, "Login to add new project.")
		return
	}

	project, err := projectService.CreateProject(userID)
	if err != nil {
		internalError(c, "Problem in initializing new project:", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "New project initialized successfully.",
		"id":      project.ID,
	})
}

// GetProject returns the full aggregate with the owner populated.
func GetProject(c *gin.Context) {
	project, err := projectService.GetProjectDetail(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			fail(c, "Project not found.")
			return
		}
		internalError(c, "Error retrieving project:", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "Project details retrieved successfully.",
		"project": project,
	})
}

// ListProjects returns the basicInfo projection of the caller's
// projects.
func ListProjects(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		fail(c, "User not logged in.")
		return
	}

	projects, err := projectService.ListProjects(userID)
	if err != nil {
		internalError(c, "Error listing projects:", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"status":   "Projects retrieved successfully.",
		"projects": projects,
	})
}

// DeleteProject removes the aggregate and cleans up its stored files
// best-effort.
func DeleteProject(c *gin.Context) {
	err := projectService.DeleteProject(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			fail(c, "Project not found.")
			return
		}
		internalError(c, "Error deleting project:", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "Project deleted successfully.",
	})
}
