package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   RackModel for table racks
   ======================================================= */

type RackModel struct {
	RackID    uuid.UUID `json:"rack_id" gorm:"type:uuid;primaryKey;column:rack_id;default:gen_random_uuid()"`
	RackOrgID uuid.UUID `json:"rack_org_id" gorm:"type:uuid;not null;index;column:rack_org_id"`

	RackRoomID uuid.UUID `json:"rack_room_id" gorm:"type:uuid;not null;index;column:rack_room_id"`
	RackName   string    `json:"rack_name" gorm:"type:text;not null;column:rack_name"`

	// Number of shelf levels the rack physically has (1..N)
	RackLevels int `json:"rack_levels" gorm:"type:int;not null;default:1;column:rack_levels"`

	RackCreatedAt time.Time      `json:"rack_created_at" gorm:"column:rack_created_at;not null;autoCreateTime"`
	RackUpdatedAt time.Time      `json:"rack_updated_at" gorm:"column:rack_updated_at;not null;autoUpdateTime"`
	RackDeletedAt gorm.DeletedAt `json:"rack_deleted_at" gorm:"column:rack_deleted_at;index"`
}

func (RackModel) TableName() string {
	return "racks"
}
