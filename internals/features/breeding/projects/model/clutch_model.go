package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ClutchModel struct {
	ClutchID    uuid.UUID `json:"clutch_id" gorm:"type:uuid;primaryKey;column:clutch_id;default:gen_random_uuid()"`
	ClutchOrgID uuid.UUID `json:"clutch_org_id" gorm:"type:uuid;not null;index;column:clutch_org_id"`

	ClutchProjectID uuid.UUID `json:"clutch_project_id" gorm:"type:uuid;not null;index;column:clutch_project_id"`

	ClutchLaidDate     datatypes.Date  `json:"clutch_laid_date" gorm:"type:date;not null;column:clutch_laid_date"`
	ClutchEggCount     int             `json:"clutch_egg_count" gorm:"type:int;not null;column:clutch_egg_count"`
	ClutchFertileCount *int            `json:"clutch_fertile_count,omitempty" gorm:"type:int;column:clutch_fertile_count"`
	ClutchHatchDate    *datatypes.Date `json:"clutch_hatch_date,omitempty" gorm:"type:date;column:clutch_hatch_date"`

	ClutchCreatedAt time.Time      `json:"clutch_created_at" gorm:"column:clutch_created_at;not null;autoCreateTime"`
	ClutchDeletedAt gorm.DeletedAt `json:"clutch_deleted_at" gorm:"column:clutch_deleted_at;index"`
}

func (ClutchModel) TableName() string {
	return "clutches"
}
