package model

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationModel struct {
	OrganizationID   uuid.UUID `json:"organization_id" gorm:"type:uuid;primaryKey;column:organization_id;default:gen_random_uuid()"`
	OrganizationName string    `json:"organization_name" gorm:"type:text;not null;column:organization_name"`

	OrganizationCreatedAt time.Time `json:"organization_created_at" gorm:"column:organization_created_at;not null;autoCreateTime"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
