package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Recurrence enum
   ======================================================= */

type Recurrence string

const (
	RecurrenceDaily    Recurrence = "daily"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceInterval Recurrence = "interval"
	// Day-of-week list variant, driven by feeding_schedule_custom_days.
	RecurrenceCustom Recurrence = "custom"
)

/* =======================================================
   FeedingScheduleModel for table feeding_schedules
   ======================================================= */

type FeedingScheduleModel struct {
	FeedingScheduleID    uuid.UUID `json:"feeding_schedule_id" gorm:"type:uuid;primaryKey;column:feeding_schedule_id;default:gen_random_uuid()"`
	FeedingScheduleOrgID uuid.UUID `json:"feeding_schedule_org_id" gorm:"type:uuid;not null;index;column:feeding_schedule_org_id"`

	FeedingScheduleName       string     `json:"feeding_schedule_name" gorm:"type:text;not null;column:feeding_schedule_name"`
	FeedingScheduleRecurrence Recurrence `json:"feeding_schedule_recurrence" gorm:"type:text;not null;column:feeding_schedule_recurrence"`

	// Required iff recurrence = interval
	FeedingScheduleIntervalDays *int `json:"feeding_schedule_interval_days,omitempty" gorm:"type:int;column:feeding_schedule_interval_days"`

	// Weekday ints (0=Sunday..6=Saturday), only for recurrence = custom
	FeedingScheduleCustomDays datatypes.JSON `json:"feeding_schedule_custom_days,omitempty" gorm:"type:jsonb;column:feeding_schedule_custom_days"`

	FeedingScheduleStartDate datatypes.Date  `json:"feeding_schedule_start_date" gorm:"type:date;not null;column:feeding_schedule_start_date"`
	FeedingScheduleEndDate   *datatypes.Date `json:"feeding_schedule_end_date,omitempty" gorm:"type:date;column:feeding_schedule_end_date"`

	FeedingScheduleIsActive bool `json:"feeding_schedule_is_active" gorm:"type:boolean;not null;default:true;column:feeding_schedule_is_active"`

	FeedingScheduleCreatedAt time.Time      `json:"feeding_schedule_created_at" gorm:"column:feeding_schedule_created_at;not null;autoCreateTime"`
	FeedingScheduleUpdatedAt time.Time      `json:"feeding_schedule_updated_at" gorm:"column:feeding_schedule_updated_at;not null;autoUpdateTime"`
	FeedingScheduleDeletedAt gorm.DeletedAt `json:"feeding_schedule_deleted_at" gorm:"column:feeding_schedule_deleted_at;index"`
}

func (FeedingScheduleModel) TableName() string {
	return "feeding_schedules"
}

// StartDate returns the schedule start as a plain time.Time.
func (s *FeedingScheduleModel) StartDate() time.Time {
	return time.Time(s.FeedingScheduleStartDate)
}

// EndDate returns the schedule end, nil when open-ended.
func (s *FeedingScheduleModel) EndDate() *time.Time {
	if s.FeedingScheduleEndDate == nil {
		return nil
	}
	t := time.Time(*s.FeedingScheduleEndDate)
	return &t
}

// CustomWeekdays decodes feeding_schedule_custom_days. Bad or absent JSON
// yields an empty set (a custom schedule with no days never fires).
func (s *FeedingScheduleModel) CustomWeekdays() []time.Weekday {
	if len(s.FeedingScheduleCustomDays) == 0 {
		return nil
	}
	var raw []int
	if err := json.Unmarshal(s.FeedingScheduleCustomDays, &raw); err != nil {
		return nil
	}
	out := make([]time.Weekday, 0, len(raw))
	for _, n := range raw {
		if n >= 0 && n <= 6 {
			out = append(out, time.Weekday(n))
		}
	}
	return out
}
