package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

var layoutDate = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}

func datePtr(s *string) (*datatypes.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}

/* =======================================================
   Target DTOs
   ======================================================= */

type CreateFeedingTargetRequest struct {
	FeedingTargetType  string `json:"feeding_target_type" validate:"required,oneof=reptile location room rack level"`
	FeedingTargetValue string `json:"feeding_target_value" validate:"required,min=1,max=120"`
}

func (r *CreateFeedingTargetRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateFeedingTargetRequest) ApplyToModel(dst *m.FeedingTargetModel) error {
	value := strings.TrimSpace(r.FeedingTargetValue)
	// Non-level values must be plain uuids; level values are checked by
	// the resolver on use so a stored target can at worst contribute a
	// warning, never break resolution.
	if m.TargetType(r.FeedingTargetType) != m.TargetLevel {
		if _, err := uuid.Parse(value); err != nil {
			return fmt.Errorf("feeding_target_value: %w", err)
		}
	}
	dst.FeedingTargetType = m.TargetType(r.FeedingTargetType)
	dst.FeedingTargetValue = value
	return nil
}

type FeedingTargetResponse struct {
	FeedingTargetID    uuid.UUID    `json:"feeding_target_id"`
	FeedingTargetType  m.TargetType `json:"feeding_target_type"`
	FeedingTargetValue string       `json:"feeding_target_value"`
}

func NewFeedingTargetResponse(src *m.FeedingTargetModel) FeedingTargetResponse {
	return FeedingTargetResponse{
		FeedingTargetID:    src.FeedingTargetID,
		FeedingTargetType:  src.FeedingTargetType,
		FeedingTargetValue: src.FeedingTargetValue,
	}
}

/* =======================================================
   Schedule DTOs
   ======================================================= */

type CreateFeedingScheduleRequest struct {
	FeedingScheduleName         string  `json:"feeding_schedule_name" validate:"required,min=1,max=120"`
	FeedingScheduleRecurrence   string  `json:"feeding_schedule_recurrence" validate:"required,oneof=daily weekly interval custom"`
	FeedingScheduleIntervalDays *int    `json:"feeding_schedule_interval_days,omitempty" validate:"omitempty,gte=1,lte=365"`
	FeedingScheduleCustomDays   []int   `json:"feeding_schedule_custom_days,omitempty" validate:"omitempty,dive,gte=0,lte=6"`
	FeedingScheduleStartDate    string  `json:"feeding_schedule_start_date" validate:"required"`
	FeedingScheduleEndDate      *string `json:"feeding_schedule_end_date,omitempty"`

	Targets []CreateFeedingTargetRequest `json:"targets,omitempty" validate:"omitempty,dive"`
}

func (r *CreateFeedingScheduleRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateFeedingScheduleRequest) ApplyToModel(dst *m.FeedingScheduleModel) error {
	rec := m.Recurrence(r.FeedingScheduleRecurrence)
	if rec == m.RecurrenceInterval && r.FeedingScheduleIntervalDays == nil {
		return errors.New("feeding_schedule_interval_days is required for interval recurrence")
	}
	if rec == m.RecurrenceCustom && len(r.FeedingScheduleCustomDays) == 0 {
		return errors.New("feeding_schedule_custom_days is required for custom recurrence")
	}

	start, err := parseDate(r.FeedingScheduleStartDate)
	if err != nil {
		return err
	}
	end, err := datePtr(r.FeedingScheduleEndDate)
	if err != nil {
		return err
	}
	if end != nil && time.Time(*end).Before(start) {
		return errors.New("feeding_schedule_end_date must be >= feeding_schedule_start_date")
	}

	dst.FeedingScheduleName = strings.TrimSpace(r.FeedingScheduleName)
	dst.FeedingScheduleRecurrence = rec
	dst.FeedingScheduleIntervalDays = r.FeedingScheduleIntervalDays
	dst.FeedingScheduleStartDate = datatypes.Date(start)
	dst.FeedingScheduleEndDate = end

	if len(r.FeedingScheduleCustomDays) > 0 {
		raw, _ := json.Marshal(r.FeedingScheduleCustomDays)
		dst.FeedingScheduleCustomDays = datatypes.JSON(raw)
	}
	return nil
}

type PatchFeedingScheduleRequest struct {
	FeedingScheduleName         *string `json:"feeding_schedule_name,omitempty" validate:"omitempty,min=1,max=120"`
	FeedingScheduleIntervalDays *int    `json:"feeding_schedule_interval_days,omitempty" validate:"omitempty,gte=1,lte=365"`
	FeedingScheduleCustomDays   []int   `json:"feeding_schedule_custom_days,omitempty" validate:"omitempty,dive,gte=0,lte=6"`
	FeedingScheduleEndDate      *string `json:"feeding_schedule_end_date,omitempty"`
	FeedingScheduleIsActive     *bool   `json:"feeding_schedule_is_active,omitempty"`
}

func (r *PatchFeedingScheduleRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (p *PatchFeedingScheduleRequest) ApplyPatch(dst *m.FeedingScheduleModel) error {
	if p.FeedingScheduleName != nil {
		dst.FeedingScheduleName = strings.TrimSpace(*p.FeedingScheduleName)
	}
	if p.FeedingScheduleIntervalDays != nil {
		dst.FeedingScheduleIntervalDays = p.FeedingScheduleIntervalDays
	}
	if len(p.FeedingScheduleCustomDays) > 0 {
		raw, _ := json.Marshal(p.FeedingScheduleCustomDays)
		dst.FeedingScheduleCustomDays = datatypes.JSON(raw)
	}
	if p.FeedingScheduleEndDate != nil {
		end, err := datePtr(p.FeedingScheduleEndDate)
		if err != nil {
			return err
		}
		if end != nil && time.Time(*end).Before(time.Time(dst.FeedingScheduleStartDate)) {
			return errors.New("feeding_schedule_end_date must be >= feeding_schedule_start_date")
		}
		dst.FeedingScheduleEndDate = end
	}
	if p.FeedingScheduleIsActive != nil {
		dst.FeedingScheduleIsActive = *p.FeedingScheduleIsActive
	}
	return nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type FeedingScheduleResponse struct {
	FeedingScheduleID           uuid.UUID    `json:"feeding_schedule_id"`
	FeedingScheduleName         string       `json:"feeding_schedule_name"`
	FeedingScheduleRecurrence   m.Recurrence `json:"feeding_schedule_recurrence"`
	FeedingScheduleIntervalDays *int         `json:"feeding_schedule_interval_days,omitempty"`
	FeedingScheduleCustomDays   []int        `json:"feeding_schedule_custom_days,omitempty"`
	FeedingScheduleStartDate    string       `json:"feeding_schedule_start_date"`
	FeedingScheduleEndDate      *string      `json:"feeding_schedule_end_date,omitempty"`
	FeedingScheduleIsActive     bool         `json:"feeding_schedule_is_active"`
	FeedingScheduleCreatedAt    time.Time    `json:"feeding_schedule_created_at"`
	FeedingScheduleUpdatedAt    time.Time    `json:"feeding_schedule_updated_at"`

	Targets []FeedingTargetResponse `json:"targets,omitempty"`
}

func NewFeedingScheduleResponse(src *m.FeedingScheduleModel, targets []m.FeedingTargetModel) FeedingScheduleResponse {
	resp := FeedingScheduleResponse{
		FeedingScheduleID:           src.FeedingScheduleID,
		FeedingScheduleName:         src.FeedingScheduleName,
		FeedingScheduleRecurrence:   src.FeedingScheduleRecurrence,
		FeedingScheduleIntervalDays: src.FeedingScheduleIntervalDays,
		FeedingScheduleStartDate:    time.Time(src.FeedingScheduleStartDate).Format(layoutDate),
		FeedingScheduleIsActive:     src.FeedingScheduleIsActive,
		FeedingScheduleCreatedAt:    src.FeedingScheduleCreatedAt,
		FeedingScheduleUpdatedAt:    src.FeedingScheduleUpdatedAt,
	}
	if src.FeedingScheduleEndDate != nil {
		s := time.Time(*src.FeedingScheduleEndDate).Format(layoutDate)
		resp.FeedingScheduleEndDate = &s
	}
	for _, wd := range src.CustomWeekdays() {
		resp.FeedingScheduleCustomDays = append(resp.FeedingScheduleCustomDays, int(wd))
	}
	for i := range targets {
		resp.Targets = append(resp.Targets, NewFeedingTargetResponse(&targets[i]))
	}
	return resp
}
