package services

import (
	"errors"
	"log"

	"github.com/estateregistry-api/config"
	"github.com/estateregistry-api/dto"
	"github.com/estateregistry-api/models"
	"github.com/estateregistry-api/repositories"
	"github.com/estateregistry-api/utils"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ProjectService handles business logic for project aggregates and
// their five independently-saved sections.
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// CreateProject creates an empty aggregate owned by userID. All five
// sections start absent; they are filled in by later partial updates.
func (s *ProjectService) CreateProject(userID string) (models.Project, error) {
	project := models.Project{UserID: userID}
	return s.projectRepo.Create(project)
}

// GetProjectDetail retrieves the full aggregate with the owner
// populated for display.
func (s *ProjectService) GetProjectDetail(id string) (models.Project, error) {
	project, err := s.projectRepo.FindByIDWithOwner(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project, ErrProjectNotFound
		}
		return project, err
	}
	project.User.Password = ""
	return project, nil
}

// GetProject retrieves the aggregate without relations, for section
// reads.
func (s *ProjectService) GetProject(id string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project, ErrProjectNotFound
		}
		return project, err
	}
	return project, nil
}

// ListProjects returns the basicInfo projection of every project the
// user owns.
func (s *ProjectService) ListProjects(userID string) ([]dto.ProjectSummary, error) {
	projects, err := s.projectRepo.FindSummariesByUserID(userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, dto.ProjectSummary{
			ID:        p.ID,
			BasicInfo: p.BasicInfo,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return summaries, nil
}

// SaveBasicInfo replaces the basic-info section wholesale. The name
// must be unique among the owner's other projects.
func (s *ProjectService) SaveBasicInfo(id string, req dto.BasicInfoRequest) error {
	project, err := s.GetProject(id)
	if err != nil {
		return err
	}

	taken, err := s.projectRepo.NameTakenByOwner(project.UserID, project.ID, req.Name)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateName
	}

	return mapNotFound(s.projectRepo.UpdateSection(id, "basic_info", req.ToModel()))
}

// SavePropertyInfo replaces the property-info section wholesale.
func (s *ProjectService) SavePropertyInfo(id string, req dto.PropertyInfoRequest) error {
	if _, err := s.GetProject(id); err != nil {
		return err
	}
	return mapNotFound(s.projectRepo.UpdateSection(id, "property_info", req.ToModel()))
}

// SaveAmenities replaces the amenity set with the submitted one.
// Catalog membership is advisory and not enforced here.
func (s *ProjectService) SaveAmenities(id string, amenities []string) error {
	if _, err := s.GetProject(id); err != nil {
		return err
	}
	return mapNotFound(s.projectRepo.UpdateSection(id, "amenities", pq.StringArray(amenities)))
}

// DeleteProject removes the aggregate and best-effort deletes every
// file it references. File I/O failures are logged, never fatal.
func (s *ProjectService) DeleteProject(id string) error {
	project, err := s.GetProject(id)
	if err != nil {
		return err
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return err
	}

	dir := config.UploadDir()
	for _, name := range project.ReferencedFiles() {
		if err := utils.RemoveFile(dir, name); err != nil {
			log.Printf("Failed to delete file %s of project %s: %v", name, id, err)
		}
	}
	return nil
}
