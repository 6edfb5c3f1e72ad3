package dto

import (
	"time"

	"github.com/estateregistry-api/models"
)

// BasicInfoRequest is the replace-on-save payload for the basic-info
// section. The section is validated as a unit: every field is
// required once the section is submitted at all.
type BasicInfoRequest struct {
	Name           string `json:"name" binding:"required"`
	State          string `json:"state" binding:"required"`
	Address        string `json:"address" binding:"required"`
	CompletionDate string `json:"completionDate" binding:"required,datetime=2006-01-02"`
	ProjectType    string `json:"projectType" binding:"required,oneof=residential commercial open_plot res_comm"`
	City           string `json:"city" binding:"required"`
	LandStatus     string `json:"landStatus" binding:"required"`
	ReraNumber     string `json:"reraNumber" binding:"required"`
}

// PropertyInfoRequest is the replace-on-save payload for the
// property-info section. Counts are pointers so a legitimate zero
// still passes the required check.
type PropertyInfoRequest struct {
	TotalPlots    *int     `json:"totalPlots" binding:"required"`
	TotalShops    *int     `json:"totalShops" binding:"required"`
	TotalOffices  *int     `json:"totalOffices" binding:"required"`
	TotalFloors   *int     `json:"totalFloors" binding:"required"`
	EngineerName  string   `json:"engineerName" binding:"required"`
	ArchitectName string   `json:"architectName" binding:"required"`
	EstimatedCost *float64 `json:"estimatedCost" binding:"required"`
}

// ToModel converts the validated payload into the stored section.
func (r BasicInfoRequest) ToModel() *models.BasicInfo {
	return &models.BasicInfo{
		Name:           r.Name,
		State:          r.State,
		Address:        r.Address,
		CompletionDate: r.CompletionDate,
		ProjectType:    r.ProjectType,
		City:           r.City,
		LandStatus:     r.LandStatus,
		ReraNumber:     r.ReraNumber,
	}
}

// ToModel converts the validated payload into the stored section.
func (r PropertyInfoRequest) ToModel() *models.PropertyInfo {
	return &models.PropertyInfo{
		TotalPlots:    *r.TotalPlots,
		TotalShops:    *r.TotalShops,
		TotalOffices:  *r.TotalOffices,
		TotalFloors:   *r.TotalFloors,
		EngineerName:  r.EngineerName,
		ArchitectName: r.ArchitectName,
		EstimatedCost: *r.EstimatedCost,
	}
}

// ProjectSummary is the basicInfo projection used when listing an
// owner's projects.
type ProjectSummary struct {
	ID        string            `json:"id"`
	BasicInfo *models.BasicInfo `json:"basicInfo,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
