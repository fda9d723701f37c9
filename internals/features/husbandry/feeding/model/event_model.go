package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   FeedingEventModel for table feeding_events

   One row per (schedule, reptile, scheduled_date). The unique
   index makes concurrent generation idempotent; inserts go
   through ON CONFLICT DO NOTHING.
   ======================================================= */

type FeedingEventModel struct {
	FeedingEventID    uuid.UUID `json:"feeding_event_id" gorm:"type:uuid;primaryKey;column:feeding_event_id;default:gen_random_uuid()"`
	FeedingEventOrgID uuid.UUID `json:"feeding_event_org_id" gorm:"type:uuid;not null;index;column:feeding_event_org_id"`

	FeedingEventScheduleID uuid.UUID `json:"feeding_event_schedule_id" gorm:"type:uuid;not null;column:feeding_event_schedule_id;uniqueIndex:uq_feeding_event_sched_reptile_date"`
	FeedingEventReptileID  uuid.UUID `json:"feeding_event_reptile_id" gorm:"type:uuid;not null;index;column:feeding_event_reptile_id;uniqueIndex:uq_feeding_event_sched_reptile_date"`

	FeedingEventScheduledDate datatypes.Date `json:"feeding_event_scheduled_date" gorm:"type:date;not null;column:feeding_event_scheduled_date;uniqueIndex:uq_feeding_event_sched_reptile_date"`

	FeedingEventFed   bool       `json:"feeding_event_fed" gorm:"type:boolean;not null;default:false;column:feeding_event_fed"`
	FeedingEventFedAt *time.Time `json:"feeding_event_fed_at,omitempty" gorm:"column:feeding_event_fed_at"`

	FeedingEventNotes        *string    `json:"feeding_event_notes,omitempty" gorm:"type:text;column:feeding_event_notes"`
	FeedingEventFeederSizeID *uuid.UUID `json:"feeding_event_feeder_size_id,omitempty" gorm:"type:uuid;column:feeding_event_feeder_size_id"`

	FeedingEventCreatedAt time.Time `json:"feeding_event_created_at" gorm:"column:feeding_event_created_at;not null;autoCreateTime"`
	FeedingEventUpdatedAt time.Time `json:"feeding_event_updated_at" gorm:"column:feeding_event_updated_at;not null;autoUpdateTime"`
}

func (FeedingEventModel) TableName() string {
	return "feeding_events"
}

// ScheduledDate returns the scheduled date as a plain time.Time.
func (e *FeedingEventModel) ScheduledDate() time.Time {
	return time.Time(e.FeedingEventScheduledDate)
}
