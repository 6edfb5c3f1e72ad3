package v1

import (
	"errors"
	"net/http"

	"github.com/estateregistry-api/dto"
	"github.com/estateregistry-api/models"
	"github.com/estateregistry-api/services"
	"github.com/gin-gonic/gin"
)

// Section updates are partial by design: each endpoint validates and
// persists its own section, leaving the others untouched. basic-info
// and property-info replace wholesale; amenities replaces the set.

// SaveBasicInfo validates the section as a unit and replaces it.
func SaveBasicInfo(c *gin.Context) {
	var req dto.BasicInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "All basic info fields are required.")
		return
	}

	if err := projectService.SaveBasicInfo(c.Param("id"), req); err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			fail(c, "Project not found.")
		case errors.Is(err, services.ErrDuplicateName):
			fail(c, "You already have a project with this name.")
		default:
			internalError(c, "Error saving basic info:", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": "Basic info saved successfully."})
}

// SavePropertyInfo validates the section as a unit and replaces it.
func SavePropertyInfo(c *gin.Context) {
	var req dto.PropertyInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "All property info fields are required.")
		return
	}

	if err := projectService.SavePropertyInfo(c.Param("id"), req); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			fail(c, "Project not found.")
			return
		}
		internalError(c, "Error saving property info:", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": "Property info saved successfully."})
}

// SaveAmenities replaces the amenity set with the submitted array.
func SaveAmenities(c *gin.Context) {
	var amenities []string
	if err := c.ShouldBindJSON(&amenities); err != nil {
		fail(c, "Amenities must be an array of strings.")
		return
	}

	if err := projectService.SaveAmenities(c.Param("id"), amenities); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			fail(c, "Project not found.")
			return
		}
		internalError(c, "Error saving amenities:", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": "Amenities saved successfully."})
}

func sectionProject(c *gin.Context) (models.Project, bool) {
	project, err := projectService.GetProject(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			fail(c, "Project not found.")
		} else {
			internalError(c, "Error retrieving project:", err)
		}
		return project, false
	}
	return project, true
}

// GetBasicInfo returns just the basic-info section.
func GetBasicInfo(c *gin.Context) {
	project, ok := sectionProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": project.BasicInfo})
}

// GetPropertyInfo returns just the property-info section.
func GetPropertyInfo(c *gin.Context) {
	project, ok := sectionProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": project.PropertyInfo})
}

// GetAmenities returns just the amenities section.
func GetAmenities(c *gin.Context) {
	project, ok := sectionProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": project.Amenities})
}

// GetGallery returns just the gallery section.
func GetGallery(c *gin.Context) {
	project, ok := sectionProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": project.Gallery})
}

// GetDocuments returns just the documents section.
func GetDocuments(c *gin.Context) {
	project, ok := sectionProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "documents": project.Documents})
}
