package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BreedingProjectStatusPlanned  = "planned"
	BreedingProjectStatusPaired   = "paired"
	BreedingProjectStatusGravid   = "gravid"
	BreedingProjectStatusLaid     = "laid"
	BreedingProjectStatusHatched  = "hatched"
	BreedingProjectStatusComplete = "complete"
)

type BreedingProjectModel struct {
	BreedingProjectID    uuid.UUID `json:"breeding_project_id" gorm:"type:uuid;primaryKey;column:breeding_project_id;default:gen_random_uuid()"`
	BreedingProjectOrgID uuid.UUID `json:"breeding_project_org_id" gorm:"type:uuid;not null;index;column:breeding_project_org_id"`

	BreedingProjectName   string `json:"breeding_project_name" gorm:"type:text;not null;column:breeding_project_name"`
	BreedingProjectSeason string `json:"breeding_project_season" gorm:"type:text;not null;column:breeding_project_season"` // e.g. "2026"

	BreedingProjectSireID uuid.UUID `json:"breeding_project_sire_id" gorm:"type:uuid;not null;column:breeding_project_sire_id"`
	BreedingProjectDamID  uuid.UUID `json:"breeding_project_dam_id" gorm:"type:uuid;not null;column:breeding_project_dam_id"`

	BreedingProjectStatus string `json:"breeding_project_status" gorm:"type:text;not null;default:'planned';column:breeding_project_status"`

	// Append-only log of pairing attempts: [{"date":"...","observed_lock":bool,"notes":"..."}]
	BreedingProjectPairings datatypes.JSON `json:"breeding_project_pairings,omitempty" gorm:"type:jsonb;column:breeding_project_pairings"`

	BreedingProjectNotes *string `json:"breeding_project_notes,omitempty" gorm:"type:text;column:breeding_project_notes"`

	BreedingProjectCreatedAt time.Time      `json:"breeding_project_created_at" gorm:"column:breeding_project_created_at;not null;autoCreateTime"`
	BreedingProjectUpdatedAt time.Time      `json:"breeding_project_updated_at" gorm:"column:breeding_project_updated_at;not null;autoUpdateTime"`
	BreedingProjectDeletedAt gorm.DeletedAt `json:"breeding_project_deleted_at" gorm:"column:breeding_project_deleted_at;index"`
}

func (BreedingProjectModel) TableName() string {
	return "breeding_projects"
}
