package v1

import (
	"errors"
	"net/http"

	"github.com/estateregistry-api/services"
	"github.com/estateregistry-api/utils"
	"github.com/gin-gonic/gin"
)

var mediaService = services.NewMediaService()

func uploadFailStatus(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return "Project not found.", true
	case errors.Is(err, utils.ErrFileTooLarge):
		return "The file size shouldn't be more than 6MB", true
	case errors.Is(err, utils.ErrTooManyFiles):
		return "No more than 10 files can be uploaded at once.", true
	case errors.Is(err, services.ErrMissingTitle):
		return "File title is required.", true
	}
	return "", false
}

// SaveGallery appends a multipart upload batch to the matching
// gallery categories. A size or count violation rejects the whole
// batch with nothing written.
func SaveGallery(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		fail(c, "File upload validation failed.")
		return
	}

	if err := mediaService.SaveGallery(c.Param("id"), form.File); err != nil {
		if status, ok := uploadFailStatus(err); ok {
			fail(c, status)
			return
		}
		internalError(c, "Error saving gallery:", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "Gallery files uploaded and saved successfully.",
	})
}

// SaveDocuments appends a titled document batch.
func SaveDocuments(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		fail(c, "File upload validation failed.")
		return
	}

	title := c.PostForm("fileTitle")
	if err := mediaService.SaveDocuments(c.Param("id"), title, form.File["documents"]); err != nil {
		if status, ok := uploadFailStatus(err); ok {
			fail(c, status)
			return
		}
		internalError(c, "Error saving documents:", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "Documents uploaded and saved successfully.",
	})
}

// DeleteGalleryFile removes one gallery entry. The reference removal
// commits even when the physical delete fails; fileRemoved reports
// the actual disk outcome.
func DeleteGalleryFile(c *gin.Context) {
	removed, err := mediaService.DeleteGalleryFile(
		c.Param("id"), c.Param("type"), c.Param("filename"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			fail(c, "Project not found.")
		case errors.Is(err, services.ErrInvalidGalleryType):
			fail(c, "Invalid gallery type.")
		case errors.Is(err, services.ErrFileNotFound):
			fail(c, "File not found in gallery.")
		default:
			internalError(c, "Error deleting gallery file:", err)
		}
		return
	}

	status := "Gallery file deleted successfully."
	if !removed {
		status = "Gallery entry removed; file could not be deleted from storage."
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"status":      status,
		"fileRemoved": removed,
	})
}

// DeleteDocument removes one document entry, same contract as
// DeleteGalleryFile.
func DeleteDocument(c *gin.Context) {
	removed, err := mediaService.DeleteDocument(c.Param("id"), c.Param("filename"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			fail(c, "Project not found.")
		case errors.Is(err, services.ErrFileNotFound):
			fail(c, "Document not found.")
		default:
			internalError(c, "Error deleting document:", err)
		}
		return
	}

	status := "Document deleted successfully."
	if !removed {
		status = "Document entry removed; file could not be deleted from storage."
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"status":      status,
		"fileRemoved": removed,
	})
}
