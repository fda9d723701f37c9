package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

/* =======================================================
   PatchFeedingEventRequest: mark fed, annotate

   fed_at is owned by the server: it is stamped exactly when
   fed transitions false→true and cleared on true→false.
   ======================================================= */

type PatchFeedingEventRequest struct {
	FeedingEventFed          *bool   `json:"feeding_event_fed,omitempty"`
	FeedingEventNotes        *string `json:"feeding_event_notes,omitempty" validate:"omitempty,max=2000"`
	FeedingEventFeederSizeID *string `json:"feeding_event_feeder_size_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *PatchFeedingEventRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (p *PatchFeedingEventRequest) ApplyPatch(dst *m.FeedingEventModel, now time.Time) error {
	if p.FeedingEventFed != nil {
		switch {
		case *p.FeedingEventFed && !dst.FeedingEventFed:
			dst.FeedingEventFed = true
			dst.FeedingEventFedAt = &now
		case !*p.FeedingEventFed && dst.FeedingEventFed:
			dst.FeedingEventFed = false
			dst.FeedingEventFedAt = nil
		}
	}
	if p.FeedingEventNotes != nil {
		n := strings.TrimSpace(*p.FeedingEventNotes)
		if n == "" {
			dst.FeedingEventNotes = nil
		} else {
			dst.FeedingEventNotes = &n
		}
	}
	if p.FeedingEventFeederSizeID != nil {
		if strings.TrimSpace(*p.FeedingEventFeederSizeID) == "" {
			dst.FeedingEventFeederSizeID = nil
		} else {
			id, err := uuid.Parse(strings.TrimSpace(*p.FeedingEventFeederSizeID))
			if err != nil {
				return fmt.Errorf("feeding_event_feeder_size_id: %w", err)
			}
			dst.FeedingEventFeederSizeID = &id
		}
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type FeedingEventResponse struct {
	FeedingEventID            uuid.UUID  `json:"feeding_event_id"`
	FeedingEventScheduleID    uuid.UUID  `json:"feeding_event_schedule_id"`
	FeedingEventReptileID     uuid.UUID  `json:"feeding_event_reptile_id"`
	FeedingEventScheduledDate string     `json:"feeding_event_scheduled_date"`
	FeedingEventFed           bool       `json:"feeding_event_fed"`
	FeedingEventFedAt         *time.Time `json:"feeding_event_fed_at,omitempty"`
	FeedingEventNotes         *string    `json:"feeding_event_notes,omitempty"`
	FeedingEventFeederSizeID  *uuid.UUID `json:"feeding_event_feeder_size_id,omitempty"`
}

func NewFeedingEventResponse(src *m.FeedingEventModel) FeedingEventResponse {
	return FeedingEventResponse{
		FeedingEventID:            src.FeedingEventID,
		FeedingEventScheduleID:    src.FeedingEventScheduleID,
		FeedingEventReptileID:     src.FeedingEventReptileID,
		FeedingEventScheduledDate: src.ScheduledDate().Format(layoutDate),
		FeedingEventFed:           src.FeedingEventFed,
		FeedingEventFedAt:         src.FeedingEventFedAt,
		FeedingEventNotes:         src.FeedingEventNotes,
		FeedingEventFeederSizeID:  src.FeedingEventFeederSizeID,
	}
}
