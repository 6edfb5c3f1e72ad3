package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Gallery category names as they appear on the wire. The original
// client sends "siteBrochore", so that spelling is load-bearing.
const (
	GallerySiteElevations = "siteElevations"
	GallerySiteImages     = "siteImages"
	GallerySiteBrochore   = "siteBrochore"
)

// Project is the central aggregate: one owner plus five sections,
// each independently nullable. A project is valid and persistable at
// every intermediate completion state.
type Project struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID       string         `json:"userId" gorm:"type:uuid;not null;index"`
	BasicInfo    *BasicInfo     `json:"basicInfo,omitempty" gorm:"type:jsonb"`
	PropertyInfo *PropertyInfo  `json:"propertyInfo,omitempty" gorm:"type:jsonb"`
	Amenities    pq.StringArray `json:"amenities,omitempty" gorm:"type:text[]"`
	Gallery      *Gallery       `json:"gallery,omitempty" gorm:"type:jsonb"`
	Documents    DocumentList   `json:"documents,omitempty" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BasicInfo is the first registration step. When the section is
// present every field is required; there is no partial-section state.
type BasicInfo struct {
	Name           string `json:"name"`
	State          string `json:"state"`
	Address        string `json:"address"`
	CompletionDate string `json:"completionDate"`
	ProjectType    string `json:"projectType"`
	City           string `json:"city"`
	LandStatus     string `json:"landStatus"`
	ReraNumber     string `json:"reraNumber"`
}

// PropertyInfo is the second registration step.
type PropertyInfo struct {
	TotalPlots    int     `json:"totalPlots"`
	TotalShops    int     `json:"totalShops"`
	TotalOffices  int     `json:"totalOffices"`
	TotalFloors   int     `json:"totalFloors"`
	EngineerName  string  `json:"engineerName"`
	ArchitectName string  `json:"architectName"`
	EstimatedCost float64 `json:"estimatedCost"`
}

// Gallery holds stored-filename references grouped into the three
// fixed categories. Saves are additive: existing entries are never
// implicitly removed.
type Gallery struct {
	SiteElevations []string `json:"siteElevations"`
	SiteImages     []string `json:"siteImages"`
	SiteBrochore   []string `json:"siteBrochore"`
}

// DocumentEntry is a single titled upload reference.
type DocumentEntry struct {
	Title    string `json:"title"`
	Filename string `json:"filename"`
}

// DocumentList is the ordered documents section.
type DocumentList []DocumentEntry

// ValidGalleryCategory reports whether t names one of the three
// gallery categories.
func ValidGalleryCategory(t string) bool {
	switch t {
	case GallerySiteElevations, GallerySiteImages, GallerySiteBrochore:
		return true
	}
	return false
}

// Append adds stored filenames to the named category, preserving
// existing entries and batch order. Unknown categories are rejected.
func (g *Gallery) Append(category string, filenames ...string) error {
	switch category {
	case GallerySiteElevations:
		g.SiteElevations = append(g.SiteElevations, filenames...)
	case GallerySiteImages:
		g.SiteImages = append(g.SiteImages, filenames...)
	case GallerySiteBrochore:
		g.SiteBrochore = append(g.SiteBrochore, filenames...)
	default:
		return fmt.Errorf("unknown gallery category %q", category)
	}
	return nil
}

// Remove deletes filename from the named category. It reports whether
// an entry was actually removed; other categories are untouched.
func (g *Gallery) Remove(category, filename string) bool {
	var list *[]string
	switch category {
	case GallerySiteElevations:
		list = &g.SiteElevations
	case GallerySiteImages:
		list = &g.SiteImages
	case GallerySiteBrochore:
		list = &g.SiteBrochore
	default:
		return false
	}
	for i, name := range *list {
		if name == filename {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

// Filenames returns every stored filename referenced by the gallery.
func (g *Gallery) Filenames() []string {
	if g == nil {
		return nil
	}
	var names []string
	names = append(names, g.SiteElevations...)
	names = append(names, g.SiteImages...)
	names = append(names, g.SiteBrochore...)
	return names
}

// Append adds one titled entry per filename; a single title applies
// to the whole batch.
func (d *DocumentList) Append(title string, filenames ...string) {
	for _, name := range filenames {
		*d = append(*d, DocumentEntry{Title: title, Filename: name})
	}
}

// Remove deletes the entry with the given stored filename and reports
// whether one was found.
func (d *DocumentList) Remove(filename string) bool {
	for i, entry := range *d {
		if entry.Filename == filename {
			*d = append((*d)[:i], (*d)[i+1:]...)
			return true
		}
	}
	return false
}

// Filenames returns the stored filenames of all document entries.
func (d DocumentList) Filenames() []string {
	var names []string
	for _, entry := range d {
		names = append(names, entry.Filename)
	}
	return names
}

// ReferencedFiles returns every stored filename the aggregate points
// at, for cascade cleanup on project deletion.
func (p *Project) ReferencedFiles() []string {
	var names []string
	names = append(names, p.Gallery.Filenames()...)
	names = append(names, p.Documents.Filenames()...)
	return names
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, dest)
}

func (b *BasicInfo) Scan(value interface{}) error { return scanJSON(value, b) }

func (b BasicInfo) Value() (driver.Value, error) { return json.Marshal(b) }

func (p *PropertyInfo) Scan(value interface{}) error { return scanJSON(value, p) }

func (p PropertyInfo) Value() (driver.Value, error) { return json.Marshal(p) }

func (g *Gallery) Scan(value interface{}) error { return scanJSON(value, g) }

func (g Gallery) Value() (driver.Value, error) { return json.Marshal(g) }

func (d *DocumentList) Scan(value interface{}) error { return scanJSON(value, d) }

func (d DocumentList) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// TableName sets the table name for Project model
func (Project) TableName() string {
	return "projects"
}
