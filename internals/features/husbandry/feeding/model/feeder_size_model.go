package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeederSizeModel is the lookup table for prey sizes (pinky, fuzzy, adult, ...)
type FeederSizeModel struct {
	FeederSizeID    uuid.UUID `json:"feeder_size_id" gorm:"type:uuid;primaryKey;column:feeder_size_id;default:gen_random_uuid()"`
	FeederSizeOrgID uuid.UUID `json:"feeder_size_org_id" gorm:"type:uuid;not null;index;column:feeder_size_org_id"`

	FeederSizeName      string `json:"feeder_size_name" gorm:"type:text;not null;column:feeder_size_name"`
	FeederSizeSortOrder int    `json:"feeder_size_sort_order" gorm:"type:int;not null;default:0;column:feeder_size_sort_order"`

	FeederSizeCreatedAt time.Time      `json:"feeder_size_created_at" gorm:"column:feeder_size_created_at;not null;autoCreateTime"`
	FeederSizeDeletedAt gorm.DeletedAt `json:"feeder_size_deleted_at" gorm:"column:feeder_size_deleted_at;index"`
}

func (FeederSizeModel) TableName() string {
	return "feeder_sizes"
}
