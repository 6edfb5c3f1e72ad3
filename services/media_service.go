package services

import (
	"errors"
	"log"
	"mime/multipart"

	"github.com/estateregistry-api/config"
	"github.com/estateregistry-api/models"
	"github.com/estateregistry-api/repositories"
	"github.com/estateregistry-api/utils"
	"gorm.io/gorm"
)

// MediaService attaches uploaded files to a project's gallery or
// documents section and manages their deletion. Physical file I/O and
// the aggregate write are independent operations; a crash between the
// two is an accepted inconsistency window.
type MediaService struct {
	projectRepo *repositories.ProjectRepository
}

// NewMediaService creates a new media service instance
func NewMediaService() *MediaService {
	return &MediaService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// SaveGallery validates and stores a multipart gallery batch, then
// appends the stored filenames to the matching categories. Every
// field is validated before any file is written, so a rejected batch
// leaves both disk and document untouched.
func (s *MediaService) SaveGallery(projectID string, files map[string][]*multipart.FileHeader) error {
	project, err := s.projectFor(projectID)
	if err != nil {
		return err
	}

	categories := []string{
		models.GallerySiteElevations,
		models.GallerySiteImages,
		models.GallerySiteBrochore,
	}
	for _, category := range categories {
		if err := utils.ValidateBatch(files[category]); err != nil {
			return err
		}
	}

	if project.Gallery == nil {
		project.Gallery = &models.Gallery{}
	}

	dir := config.UploadDir()
	for _, category := range categories {
		for _, file := range files[category] {
			stored := utils.StoredFilename(file.Filename)
			if err := utils.SaveUpload(file, dir, stored); err != nil {
				return err
			}
			if err := project.Gallery.Append(category, stored); err != nil {
				return err
			}
		}
	}

	return mapNotFound(s.projectRepo.UpdateSection(projectID, "gallery", project.Gallery))
}

// SaveDocuments validates and stores a document batch; one title
// applies to every file in the batch.
func (s *MediaService) SaveDocuments(projectID, title string, files []*multipart.FileHeader) error {
	if title == "" {
		return ErrMissingTitle
	}

	project, err := s.projectFor(projectID)
	if err != nil {
		return err
	}

	if err := utils.ValidateBatch(files); err != nil {
		return err
	}

	dir := config.UploadDir()
	for _, file := range files {
		stored := utils.StoredFilename(file.Filename)
		if err := utils.SaveUpload(file, dir, stored); err != nil {
			return err
		}
		project.Documents.Append(title, stored)
	}

	return mapNotFound(s.projectRepo.UpdateSection(projectID, "documents", project.Documents))
}

// DeleteGalleryFile removes one entry from the named category and
// best-effort deletes the backing file. The reference removal commits
// even when the physical delete fails; the returned flag reports
// whether the file actually came off disk.
func (s *MediaService) DeleteGalleryFile(projectID, category, filename string) (bool, error) {
	if !models.ValidGalleryCategory(category) {
		return false, ErrInvalidGalleryType
	}

	project, err := s.projectFor(projectID)
	if err != nil {
		return false, err
	}

	if project.Gallery == nil || !project.Gallery.Remove(category, filename) {
		return false, ErrFileNotFound
	}

	if err := s.projectRepo.UpdateSection(projectID, "gallery", project.Gallery); err != nil {
		return false, mapNotFound(err)
	}

	return s.removeStoredFile(projectID, filename), nil
}

// DeleteDocument removes the document entry with the given stored
// filename, with the same best-effort file deletion contract.
func (s *MediaService) DeleteDocument(projectID, filename string) (bool, error) {
	project, err := s.projectFor(projectID)
	if err != nil {
		return false, err
	}

	if !project.Documents.Remove(filename) {
		return false, ErrFileNotFound
	}

	if err := s.projectRepo.UpdateSection(projectID, "documents", project.Documents); err != nil {
		return false, mapNotFound(err)
	}

	return s.removeStoredFile(projectID, filename), nil
}

func (s *MediaService) projectFor(id string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project, ErrProjectNotFound
		}
		return project, err
	}
	return project, nil
}

func (s *MediaService) removeStoredFile(projectID, filename string) bool {
	if err := utils.RemoveFile(config.UploadDir(), filename); err != nil {
		log.Printf("Failed to delete file %s of project %s: %v", filename, projectID, err)
		return false
	}
	return true
}
