package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Target enum
   ======================================================= */

type TargetType string

const (
	TargetReptile  TargetType = "reptile"
	TargetLocation TargetType = "location"
	TargetRoom     TargetType = "room"
	TargetRack     TargetType = "rack"
	// For level targets the value is "<rackId>-<levelNumber>".
	TargetLevel TargetType = "level"
)

/* =======================================================
   FeedingTargetModel for table feeding_targets

   Targets are stored as references, never as reptile lists:
   the reptile set is recomputed from current housing state on
   every resolution.
   ======================================================= */

type FeedingTargetModel struct {
	FeedingTargetID    uuid.UUID `json:"feeding_target_id" gorm:"type:uuid;primaryKey;column:feeding_target_id;default:gen_random_uuid()"`
	FeedingTargetOrgID uuid.UUID `json:"feeding_target_org_id" gorm:"type:uuid;not null;index;column:feeding_target_org_id"`

	FeedingTargetScheduleID uuid.UUID `json:"feeding_target_schedule_id" gorm:"type:uuid;not null;index;column:feeding_target_schedule_id"`

	FeedingTargetType  TargetType `json:"feeding_target_type" gorm:"type:text;not null;column:feeding_target_type"`
	FeedingTargetValue string     `json:"feeding_target_value" gorm:"type:text;not null;index;column:feeding_target_value"`

	FeedingTargetCreatedAt time.Time      `json:"feeding_target_created_at" gorm:"column:feeding_target_created_at;not null;autoCreateTime"`
	FeedingTargetDeletedAt gorm.DeletedAt `json:"feeding_target_deleted_at" gorm:"column:feeding_target_deleted_at;index"`
}

func (FeedingTargetModel) TableName() string {
	return "feeding_targets"
}
