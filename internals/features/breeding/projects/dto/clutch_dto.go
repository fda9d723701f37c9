package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "clutchly_backend/internals/features/breeding/projects/model"
)

type CreateClutchRequest struct {
	ClutchLaidDate     string  `json:"clutch_laid_date" validate:"required"`
	ClutchEggCount     int     `json:"clutch_egg_count" validate:"required,gt=0"`
	ClutchFertileCount *int    `json:"clutch_fertile_count,omitempty" validate:"omitempty,gte=0"`
	ClutchHatchDate    *string `json:"clutch_hatch_date,omitempty"`
}

func (r *CreateClutchRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if r.ClutchFertileCount != nil && *r.ClutchFertileCount > r.ClutchEggCount {
		return fmt.Errorf("clutch_fertile_count cannot exceed clutch_egg_count")
	}
	return nil
}

func (r *CreateClutchRequest) ApplyToModel(dst *m.ClutchModel) error {
	t, err := time.ParseInLocation(layoutDate, strings.TrimSpace(r.ClutchLaidDate), time.Local)
	if err != nil {
		return fmt.Errorf("clutch_laid_date: %w", err)
	}
	dst.ClutchLaidDate = datatypes.Date(t)
	dst.ClutchEggCount = r.ClutchEggCount
	dst.ClutchFertileCount = r.ClutchFertileCount

	if r.ClutchHatchDate != nil && strings.TrimSpace(*r.ClutchHatchDate) != "" {
		h, err := time.ParseInLocation(layoutDate, strings.TrimSpace(*r.ClutchHatchDate), time.Local)
		if err != nil {
			return fmt.Errorf("clutch_hatch_date: %w", err)
		}
		hd := datatypes.Date(h)
		dst.ClutchHatchDate = &hd
	}
	return nil
}

type PatchClutchRequest struct {
	ClutchLaidDate     *string `json:"clutch_laid_date,omitempty"`
	ClutchEggCount     *int    `json:"clutch_egg_count,omitempty" validate:"omitempty,gt=0"`
	ClutchFertileCount *int    `json:"clutch_fertile_count,omitempty" validate:"omitempty,gte=0"`
	ClutchHatchDate    *string `json:"clutch_hatch_date,omitempty"`
}

func (r *PatchClutchRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (p *PatchClutchRequest) ApplyPatch(dst *m.ClutchModel) error {
	if p.ClutchLaidDate != nil {
		t, err := time.ParseInLocation(layoutDate, strings.TrimSpace(*p.ClutchLaidDate), time.Local)
		if err != nil {
			return fmt.Errorf("clutch_laid_date: %w", err)
		}
		dst.ClutchLaidDate = datatypes.Date(t)
	}
	if p.ClutchEggCount != nil {
		dst.ClutchEggCount = *p.ClutchEggCount
	}
	if p.ClutchFertileCount != nil {
		dst.ClutchFertileCount = p.ClutchFertileCount
	}
	if p.ClutchHatchDate != nil {
		raw := strings.TrimSpace(*p.ClutchHatchDate)
		if raw == "" {
			dst.ClutchHatchDate = nil
		} else {
			h, err := time.ParseInLocation(layoutDate, raw, time.Local)
			if err != nil {
				return fmt.Errorf("clutch_hatch_date: %w", err)
			}
			hd := datatypes.Date(h)
			dst.ClutchHatchDate = &hd
		}
	}
	if dst.ClutchFertileCount != nil && *dst.ClutchFertileCount > dst.ClutchEggCount {
		return fmt.Errorf("clutch_fertile_count cannot exceed clutch_egg_count")
	}
	return nil
}

type ClutchResponse struct {
	ClutchID           uuid.UUID `json:"clutch_id"`
	ClutchProjectID    uuid.UUID `json:"clutch_project_id"`
	ClutchLaidDate     string    `json:"clutch_laid_date"`
	ClutchEggCount     int       `json:"clutch_egg_count"`
	ClutchFertileCount *int      `json:"clutch_fertile_count,omitempty"`
	ClutchHatchDate    *string   `json:"clutch_hatch_date,omitempty"`
	ClutchCreatedAt    time.Time `json:"clutch_created_at"`
}

func NewClutchResponse(src *m.ClutchModel) ClutchResponse {
	resp := ClutchResponse{
		ClutchID:           src.ClutchID,
		ClutchProjectID:    src.ClutchProjectID,
		ClutchLaidDate:     time.Time(src.ClutchLaidDate).Format(layoutDate),
		ClutchEggCount:     src.ClutchEggCount,
		ClutchFertileCount: src.ClutchFertileCount,
		ClutchCreatedAt:    src.ClutchCreatedAt,
	}
	if src.ClutchHatchDate != nil {
		s := time.Time(*src.ClutchHatchDate).Format(layoutDate)
		resp.ClutchHatchDate = &s
	}
	return resp
}
