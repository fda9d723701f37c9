package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Status
   ======================================================= */

const (
	ReptileStatusActive   = "active"
	ReptileStatusSold     = "sold"
	ReptileStatusDeceased = "deceased"
)

/* =======================================================
   ReptileModel
   ======================================================= */

type ReptileModel struct {
	ReptileID    uuid.UUID `json:"reptile_id" gorm:"type:uuid;primaryKey;column:reptile_id;default:gen_random_uuid()"`
	ReptileOrgID uuid.UUID `json:"reptile_org_id" gorm:"type:uuid;not null;index;column:reptile_org_id"`

	ReptileName    string  `json:"reptile_name" gorm:"type:text;not null;column:reptile_name"`
	ReptileSpecies string  `json:"reptile_species" gorm:"type:text;not null;column:reptile_species"`
	ReptileSex     *string `json:"reptile_sex,omitempty" gorm:"type:text;column:reptile_sex"` // male | female | unknown

	// Morph/trait names as a JSON string array.
	ReptileMorphs datatypes.JSON `json:"reptile_morphs,omitempty" gorm:"type:jsonb;column:reptile_morphs"`

	ReptileHatchDate   *datatypes.Date `json:"reptile_hatch_date,omitempty" gorm:"type:date;column:reptile_hatch_date"`
	ReptileWeightGrams *int            `json:"reptile_weight_grams,omitempty" gorm:"type:int;column:reptile_weight_grams"`

	ReptileLocationID *uuid.UUID `json:"reptile_location_id,omitempty" gorm:"type:uuid;index;column:reptile_location_id"`

	ReptileDamID  *uuid.UUID `json:"reptile_dam_id,omitempty" gorm:"type:uuid;column:reptile_dam_id"`
	ReptileSireID *uuid.UUID `json:"reptile_sire_id,omitempty" gorm:"type:uuid;column:reptile_sire_id"`

	ReptilePhotoURL *string `json:"reptile_photo_url,omitempty" gorm:"type:text;column:reptile_photo_url"`
	ReptileNotes    *string `json:"reptile_notes,omitempty" gorm:"type:text;column:reptile_notes"`

	ReptileStatus string `json:"reptile_status" gorm:"type:text;not null;default:'active';column:reptile_status"`

	ReptileCreatedAt time.Time      `json:"reptile_created_at" gorm:"column:reptile_created_at;not null;autoCreateTime"`
	ReptileUpdatedAt time.Time      `json:"reptile_updated_at" gorm:"column:reptile_updated_at;not null;autoUpdateTime"`
	ReptileDeletedAt gorm.DeletedAt `json:"reptile_deleted_at" gorm:"column:reptile_deleted_at;index"`
}

func (ReptileModel) TableName() string {
	return "reptiles"
}
