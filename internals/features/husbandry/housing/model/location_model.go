package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   LocationModel for table locations

   A location is one enclosure slot. Hierarchy:
   Room ⊇ Rack ⊇ (shelf level × position) ⊇ Location ⊇ Reptile
   ======================================================= */

type LocationModel struct {
	LocationID    uuid.UUID `json:"location_id" gorm:"type:uuid;primaryKey;column:location_id;default:gen_random_uuid()"`
	LocationOrgID uuid.UUID `json:"location_org_id" gorm:"type:uuid;not null;index;column:location_org_id"`

	LocationRoomID uuid.UUID `json:"location_room_id" gorm:"type:uuid;not null;index;column:location_room_id"`

	// Rack placement is optional; freestanding enclosures have none.
	LocationRackID     *uuid.UUID `json:"location_rack_id,omitempty" gorm:"type:uuid;index;column:location_rack_id"`
	LocationShelfLevel *int       `json:"location_shelf_level,omitempty" gorm:"type:int;column:location_shelf_level"`
	LocationPosition   *int       `json:"location_position,omitempty" gorm:"type:int;column:location_position"`

	LocationLabel string `json:"location_label" gorm:"type:text;not null;column:location_label"`

	LocationCreatedAt time.Time      `json:"location_created_at" gorm:"column:location_created_at;not null;autoCreateTime"`
	LocationUpdatedAt time.Time      `json:"location_updated_at" gorm:"column:location_updated_at;not null;autoUpdateTime"`
	LocationDeletedAt gorm.DeletedAt `json:"location_deleted_at" gorm:"column:location_deleted_at;index"`
}

func (LocationModel) TableName() string {
	return "locations"
}
