package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "clutchly_backend/internals/features/husbandry/housing/model"
)

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateRoomRequest struct {
	RoomName  string  `json:"room_name" validate:"required,min=1,max=120"`
	RoomNotes *string `json:"room_notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateRoomRequest struct {
	RoomName  string  `json:"room_name" validate:"required,min=1,max=120"`
	RoomNotes *string `json:"room_notes,omitempty" validate:"omitempty,max=2000"`
}

func (r *CreateRoomRequest) Validate(v *validator.Validate) error { return v.Struct(r) }
func (r *UpdateRoomRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateRoomRequest) ApplyToModel(dst *m.RoomModel) {
	dst.RoomName = strings.TrimSpace(r.RoomName)
	dst.RoomNotes = strPtrOrNil(r.RoomNotes)
}

func (r *UpdateRoomRequest) ApplyToModel(dst *m.RoomModel) {
	dst.RoomName = strings.TrimSpace(r.RoomName)
	dst.RoomNotes = strPtrOrNil(r.RoomNotes)
}

/* =======================================================
   Response DTO
   ======================================================= */

type RoomResponse struct {
	RoomID        uuid.UUID `json:"room_id"`
	RoomName      string    `json:"room_name"`
	RoomNotes     *string   `json:"room_notes,omitempty"`
	RoomCreatedAt time.Time `json:"room_created_at"`
	RoomUpdatedAt time.Time `json:"room_updated_at"`
}

func NewRoomResponse(src *m.RoomModel) RoomResponse {
	return RoomResponse{
		RoomID:        src.RoomID,
		RoomName:      src.RoomName,
		RoomNotes:     src.RoomNotes,
		RoomCreatedAt: src.RoomCreatedAt,
		RoomUpdatedAt: src.RoomUpdatedAt,
	}
}
