package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "clutchly_backend/internals/features/husbandry/housing/model"
)

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*s)
	if ss == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ss)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateLocationRequest struct {
	LocationRoomID     string  `json:"location_room_id" validate:"required,uuid4"`
	LocationRackID     *string `json:"location_rack_id,omitempty" validate:"omitempty,uuid4"`
	LocationShelfLevel *int    `json:"location_shelf_level,omitempty" validate:"omitempty,gte=1,lte=50"`
	LocationPosition   *int    `json:"location_position,omitempty" validate:"omitempty,gte=1,lte=200"`
	LocationLabel      string  `json:"location_label" validate:"required,min=1,max=120"`
}

type PatchLocationRequest struct {
	LocationRoomID     *string `json:"location_room_id,omitempty" validate:"omitempty,uuid4"`
	LocationRackID     *string `json:"location_rack_id,omitempty" validate:"omitempty,uuid4"`
	LocationShelfLevel *int    `json:"location_shelf_level,omitempty" validate:"omitempty,gte=1,lte=50"`
	LocationPosition   *int    `json:"location_position,omitempty" validate:"omitempty,gte=1,lte=200"`
	LocationLabel      *string `json:"location_label,omitempty" validate:"omitempty,min=1,max=120"`
}

func (r *CreateLocationRequest) Validate(v *validator.Validate) error { return v.Struct(r) }
func (r *PatchLocationRequest) Validate(v *validator.Validate) error  { return v.Struct(r) }

func (r *CreateLocationRequest) ApplyToModel(dst *m.LocationModel) error {
	roomID, err := uuid.Parse(r.LocationRoomID)
	if err != nil {
		return err
	}
	rackID, err := uuidPtrFromString(r.LocationRackID)
	if err != nil {
		return err
	}
	// Shelf level only makes sense inside a rack.
	if rackID == nil && r.LocationShelfLevel != nil {
		return errors.New("location_shelf_level requires location_rack_id")
	}

	dst.LocationRoomID = roomID
	dst.LocationRackID = rackID
	dst.LocationShelfLevel = r.LocationShelfLevel
	dst.LocationPosition = r.LocationPosition
	dst.LocationLabel = strings.TrimSpace(r.LocationLabel)
	return nil
}

func (p *PatchLocationRequest) ApplyPatch(dst *m.LocationModel) error {
	if p.LocationRoomID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*p.LocationRoomID))
		if err != nil {
			return fmt.Errorf("location_room_id: %w", err)
		}
		dst.LocationRoomID = id
	}
	if p.LocationRackID != nil {
		idp, err := uuidPtrFromString(p.LocationRackID)
		if err != nil {
			return fmt.Errorf("location_rack_id: %w", err)
		}
		dst.LocationRackID = idp
	}
	if p.LocationShelfLevel != nil {
		dst.LocationShelfLevel = p.LocationShelfLevel
	}
	if p.LocationPosition != nil {
		dst.LocationPosition = p.LocationPosition
	}
	if p.LocationLabel != nil {
		dst.LocationLabel = strings.TrimSpace(*p.LocationLabel)
	}
	if dst.LocationRackID == nil && dst.LocationShelfLevel != nil {
		return errors.New("location_shelf_level requires location_rack_id")
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type LocationResponse struct {
	LocationID         uuid.UUID  `json:"location_id"`
	LocationRoomID     uuid.UUID  `json:"location_room_id"`
	LocationRackID     *uuid.UUID `json:"location_rack_id,omitempty"`
	LocationShelfLevel *int       `json:"location_shelf_level,omitempty"`
	LocationPosition   *int       `json:"location_position,omitempty"`
	LocationLabel      string     `json:"location_label"`
	LocationCreatedAt  time.Time  `json:"location_created_at"`
	LocationUpdatedAt  time.Time  `json:"location_updated_at"`
}

func NewLocationResponse(src *m.LocationModel) LocationResponse {
	return LocationResponse{
		LocationID:         src.LocationID,
		LocationRoomID:     src.LocationRoomID,
		LocationRackID:     src.LocationRackID,
		LocationShelfLevel: src.LocationShelfLevel,
		LocationPosition:   src.LocationPosition,
		LocationLabel:      src.LocationLabel,
		LocationCreatedAt:  src.LocationCreatedAt,
		LocationUpdatedAt:  src.LocationUpdatedAt,
	}
}
