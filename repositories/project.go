package repositories

import (
	"github.com/estateregistry-api/database"
	"github.com/estateregistry-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// FindByIDWithOwner retrieves a project with its owner populated
func (r *ProjectRepository) FindByIDWithOwner(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("User").First(&project, "id = ?", id)
	return project, result.Error
}

// FindSummariesByUserID retrieves the basicInfo projection of every
// project belonging to a user, oldest first.
func (r *ProjectRepository) FindSummariesByUserID(userID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.
		Select("id", "user_id", "basic_info", "created_at", "updated_at").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&projects)
	return projects, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// UpdateSection overwrites a single section column. The write is one
// atomic row update; other sections are untouched.
func (r *ProjectRepository) UpdateSection(id, column string, value interface{}) error {
	result := database.DB.Model(&models.Project{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NameTakenByOwner reports whether another project of the same owner
// already carries the given basic-info name.
func (r *ProjectRepository) NameTakenByOwner(userID, excludeID, name string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).
		Where("user_id = ? AND id <> ? AND basic_info ->> 'name' = ?", userID, excludeID, name).
		Count(&count).Error
	return count > 0, err
}

// Delete removes a project from the database (soft delete)
func (r *ProjectRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
