package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   RoomModel for table rooms
   ======================================================= */

type RoomModel struct {
	RoomID    uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey;column:room_id;default:gen_random_uuid()"`
	RoomOrgID uuid.UUID `json:"room_org_id" gorm:"type:uuid;not null;index;column:room_org_id"`

	RoomName  string  `json:"room_name" gorm:"type:text;not null;column:room_name"`
	RoomNotes *string `json:"room_notes,omitempty" gorm:"type:text;column:room_notes"`

	RoomCreatedAt time.Time      `json:"room_created_at" gorm:"column:room_created_at;not null;autoCreateTime"`
	RoomUpdatedAt time.Time      `json:"room_updated_at" gorm:"column:room_updated_at;not null;autoUpdateTime"`
	RoomDeletedAt gorm.DeletedAt `json:"room_deleted_at" gorm:"column:room_deleted_at;index"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
