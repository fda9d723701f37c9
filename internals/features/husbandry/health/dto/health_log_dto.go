package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "clutchly_backend/internals/features/husbandry/health/model"
)

const layoutDate = "2006-01-02"

type CreateHealthLogRequest struct {
	HealthLogReptileID   string  `json:"health_log_reptile_id" validate:"required,uuid4"`
	HealthLogDate        string  `json:"health_log_date" validate:"required"`
	HealthLogCategory    string  `json:"health_log_category" validate:"required,oneof=shed weight vet medication observation"`
	HealthLogWeightGrams *int    `json:"health_log_weight_grams,omitempty" validate:"omitempty,gte=0"`
	HealthLogNotes       *string `json:"health_log_notes,omitempty" validate:"omitempty,max=4000"`
}

func (r *CreateHealthLogRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateHealthLogRequest) ApplyToModel(dst *m.HealthLogModel) error {
	reptileID, err := uuid.Parse(r.HealthLogReptileID)
	if err != nil {
		return fmt.Errorf("health_log_reptile_id: %w", err)
	}
	dst.HealthLogReptileID = reptileID

	t, err := time.ParseInLocation(layoutDate, strings.TrimSpace(r.HealthLogDate), time.Local)
	if err != nil {
		return fmt.Errorf("health_log_date: %w", err)
	}
	dst.HealthLogDate = datatypes.Date(t)

	dst.HealthLogCategory = r.HealthLogCategory
	dst.HealthLogWeightGrams = r.HealthLogWeightGrams
	if r.HealthLogNotes != nil {
		if n := strings.TrimSpace(*r.HealthLogNotes); n != "" {
			dst.HealthLogNotes = &n
		}
	}
	return nil
}

type PatchHealthLogRequest struct {
	HealthLogDate        *string `json:"health_log_date,omitempty"`
	HealthLogCategory    *string `json:"health_log_category,omitempty" validate:"omitempty,oneof=shed weight vet medication observation"`
	HealthLogWeightGrams *int    `json:"health_log_weight_grams,omitempty" validate:"omitempty,gte=0"`
	HealthLogNotes       *string `json:"health_log_notes,omitempty" validate:"omitempty,max=4000"`
}

func (r *PatchHealthLogRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (p *PatchHealthLogRequest) ApplyPatch(dst *m.HealthLogModel) error {
	if p.HealthLogDate != nil {
		t, err := time.ParseInLocation(layoutDate, strings.TrimSpace(*p.HealthLogDate), time.Local)
		if err != nil {
			return fmt.Errorf("health_log_date: %w", err)
		}
		dst.HealthLogDate = datatypes.Date(t)
	}
	if p.HealthLogCategory != nil {
		dst.HealthLogCategory = *p.HealthLogCategory
	}
	if p.HealthLogWeightGrams != nil {
		dst.HealthLogWeightGrams = p.HealthLogWeightGrams
	}
	if p.HealthLogNotes != nil {
		n := strings.TrimSpace(*p.HealthLogNotes)
		if n == "" {
			dst.HealthLogNotes = nil
		} else {
			dst.HealthLogNotes = &n
		}
	}
	return nil
}

type HealthLogResponse struct {
	HealthLogID          uuid.UUID `json:"health_log_id"`
	HealthLogReptileID   uuid.UUID `json:"health_log_reptile_id"`
	HealthLogDate        string    `json:"health_log_date"`
	HealthLogCategory    string    `json:"health_log_category"`
	HealthLogWeightGrams *int      `json:"health_log_weight_grams,omitempty"`
	HealthLogNotes       *string   `json:"health_log_notes,omitempty"`
	HealthLogCreatedAt   time.Time `json:"health_log_created_at"`
}

func NewHealthLogResponse(src *m.HealthLogModel) HealthLogResponse {
	return HealthLogResponse{
		HealthLogID:          src.HealthLogID,
		HealthLogReptileID:   src.HealthLogReptileID,
		HealthLogDate:        time.Time(src.HealthLogDate).Format(layoutDate),
		HealthLogCategory:    src.HealthLogCategory,
		HealthLogWeightGrams: src.HealthLogWeightGrams,
		HealthLogNotes:       src.HealthLogNotes,
		HealthLogCreatedAt:   src.HealthLogCreatedAt,
	}
}
