package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "clutchly_backend/internals/features/husbandry/housing/model"
)

type CreateRackRequest struct {
	RackRoomID string `json:"rack_room_id" validate:"required,uuid4"`
	RackName   string `json:"rack_name" validate:"required,min=1,max=120"`
	RackLevels int    `json:"rack_levels" validate:"required,gte=1,lte=50"`
}

type UpdateRackRequest struct {
	RackRoomID string `json:"rack_room_id" validate:"required,uuid4"`
	RackName   string `json:"rack_name" validate:"required,min=1,max=120"`
	RackLevels int    `json:"rack_levels" validate:"required,gte=1,lte=50"`
}

func (r *CreateRackRequest) Validate(v *validator.Validate) error { return v.Struct(r) }
func (r *UpdateRackRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateRackRequest) ApplyToModel(dst *m.RackModel) error {
	roomID, err := uuid.Parse(r.RackRoomID)
	if err != nil {
		return err
	}
	dst.RackRoomID = roomID
	dst.RackName = strings.TrimSpace(r.RackName)
	dst.RackLevels = r.RackLevels
	return nil
}

func (r *UpdateRackRequest) ApplyToModel(dst *m.RackModel) error {
	roomID, err := uuid.Parse(r.RackRoomID)
	if err != nil {
		return err
	}
	dst.RackRoomID = roomID
	dst.RackName = strings.TrimSpace(r.RackName)
	dst.RackLevels = r.RackLevels
	return nil
}

type RackResponse struct {
	RackID        uuid.UUID `json:"rack_id"`
	RackRoomID    uuid.UUID `json:"rack_room_id"`
	RackName      string    `json:"rack_name"`
	RackLevels    int       `json:"rack_levels"`
	RackCreatedAt time.Time `json:"rack_created_at"`
	RackUpdatedAt time.Time `json:"rack_updated_at"`
}

func NewRackResponse(src *m.RackModel) RackResponse {
	return RackResponse{
		RackID:        src.RackID,
		RackRoomID:    src.RackRoomID,
		RackName:      src.RackName,
		RackLevels:    src.RackLevels,
		RackCreatedAt: src.RackCreatedAt,
		RackUpdatedAt: src.RackUpdatedAt,
	}
}
