package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	HealthLogCategoryShed        = "shed"
	HealthLogCategoryWeight      = "weight"
	HealthLogCategoryVet         = "vet"
	HealthLogCategoryMedication  = "medication"
	HealthLogCategoryObservation = "observation"
)

type HealthLogModel struct {
	HealthLogID    uuid.UUID `json:"health_log_id" gorm:"type:uuid;primaryKey;column:health_log_id;default:gen_random_uuid()"`
	HealthLogOrgID uuid.UUID `json:"health_log_org_id" gorm:"type:uuid;not null;index;column:health_log_org_id"`

	HealthLogReptileID uuid.UUID `json:"health_log_reptile_id" gorm:"type:uuid;not null;index;column:health_log_reptile_id"`

	HealthLogDate     datatypes.Date `json:"health_log_date" gorm:"type:date;not null;column:health_log_date"`
	HealthLogCategory string         `json:"health_log_category" gorm:"type:text;not null;column:health_log_category"`

	HealthLogWeightGrams *int    `json:"health_log_weight_grams,omitempty" gorm:"type:int;column:health_log_weight_grams"`
	HealthLogNotes       *string `json:"health_log_notes,omitempty" gorm:"type:text;column:health_log_notes"`

	HealthLogCreatedAt time.Time      `json:"health_log_created_at" gorm:"column:health_log_created_at;not null;autoCreateTime"`
	HealthLogDeletedAt gorm.DeletedAt `json:"health_log_deleted_at" gorm:"column:health_log_deleted_at;index"`
}

func (HealthLogModel) TableName() string {
	return "health_logs"
}
