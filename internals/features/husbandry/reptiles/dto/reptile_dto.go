package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "clutchly_backend/internals/features/husbandry/reptiles/model"
)

const layoutDate = "2006-01-02"

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

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func datePtrFromString(s *string) (*datatypes.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutDate, strings.TrimSpace(*s), time.Local)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}

func morphsJSON(morphs []string) (datatypes.JSON, error) {
	cleaned := make([]string, 0, len(morphs))
	for _, mo := range morphs {
		if t := strings.TrimSpace(mo); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	raw, err := json.Marshal(cleaned)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

/* =======================================================
   Create
   ======================================================= */

type CreateReptileRequest struct {
	ReptileName        string   `json:"reptile_name" validate:"required,min=1,max=120"`
	ReptileSpecies     string   `json:"reptile_species" validate:"required,min=1,max=120"`
	ReptileSex         *string  `json:"reptile_sex,omitempty" validate:"omitempty,oneof=male female unknown"`
	ReptileMorphs      []string `json:"reptile_morphs,omitempty" validate:"omitempty,dive,min=1,max=80"`
	ReptileHatchDate   *string  `json:"reptile_hatch_date,omitempty"`
	ReptileWeightGrams *int     `json:"reptile_weight_grams,omitempty" validate:"omitempty,gte=0"`
	ReptileLocationID  *string  `json:"reptile_location_id,omitempty" validate:"omitempty,uuid4"`
	ReptileDamID       *string  `json:"reptile_dam_id,omitempty" validate:"omitempty,uuid4"`
	ReptileSireID      *string  `json:"reptile_sire_id,omitempty" validate:"omitempty,uuid4"`
	ReptileNotes       *string  `json:"reptile_notes,omitempty" validate:"omitempty,max=4000"`
	ReptileStatus      *string  `json:"reptile_status,omitempty" validate:"omitempty,oneof=active sold deceased"`
}

func (r *CreateReptileRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateReptileRequest) ApplyToModel(dst *m.ReptileModel) error {
	dst.ReptileName = strings.TrimSpace(r.ReptileName)
	dst.ReptileSpecies = strings.TrimSpace(r.ReptileSpecies)
	dst.ReptileSex = strPtrOrNil(r.ReptileSex)
	dst.ReptileWeightGrams = r.ReptileWeightGrams
	dst.ReptileNotes = strPtrOrNil(r.ReptileNotes)

	if len(r.ReptileMorphs) > 0 {
		raw, err := morphsJSON(r.ReptileMorphs)
		if err != nil {
			return fmt.Errorf("reptile_morphs: %w", err)
		}
		dst.ReptileMorphs = raw
	}

	hatch, err := datePtrFromString(r.ReptileHatchDate)
	if err != nil {
		return fmt.Errorf("reptile_hatch_date: %w", err)
	}
	dst.ReptileHatchDate = hatch

	if dst.ReptileLocationID, err = uuidPtrFromString(r.ReptileLocationID); err != nil {
		return fmt.Errorf("reptile_location_id: %w", err)
	}
	if dst.ReptileDamID, err = uuidPtrFromString(r.ReptileDamID); err != nil {
		return fmt.Errorf("reptile_dam_id: %w", err)
	}
	if dst.ReptileSireID, err = uuidPtrFromString(r.ReptileSireID); err != nil {
		return fmt.Errorf("reptile_sire_id: %w", err)
	}

	dst.ReptileStatus = m.ReptileStatusActive
	if r.ReptileStatus != nil && strings.TrimSpace(*r.ReptileStatus) != "" {
		dst.ReptileStatus = strings.TrimSpace(*r.ReptileStatus)
	}
	return nil
}

/* =======================================================
   Patch: pointer fields, only set keys are applied.

   LocationChanged reports whether the patch moved the
   reptile to a (new) location; the controller uses it to
   trigger reactive feeding materialization.
   ======================================================= */

type PatchReptileRequest struct {
	ReptileName        *string   `json:"reptile_name,omitempty" validate:"omitempty,min=1,max=120"`
	ReptileSpecies     *string   `json:"reptile_species,omitempty" validate:"omitempty,min=1,max=120"`
	ReptileSex         *string   `json:"reptile_sex,omitempty" validate:"omitempty,oneof=male female unknown"`
	ReptileMorphs      *[]string `json:"reptile_morphs,omitempty"`
	ReptileHatchDate   *string   `json:"reptile_hatch_date,omitempty"`
	ReptileWeightGrams *int      `json:"reptile_weight_grams,omitempty" validate:"omitempty,gte=0"`
	ReptileLocationID  *string   `json:"reptile_location_id,omitempty"`
	ReptileDamID       *string   `json:"reptile_dam_id,omitempty"`
	ReptileSireID      *string   `json:"reptile_sire_id,omitempty"`
	ReptileNotes       *string   `json:"reptile_notes,omitempty" validate:"omitempty,max=4000"`
	ReptileStatus      *string   `json:"reptile_status,omitempty" validate:"omitempty,oneof=active sold deceased"`
}

func (r *PatchReptileRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (p *PatchReptileRequest) ApplyPatch(dst *m.ReptileModel) (locationChanged bool, err error) {
	if p.ReptileName != nil {
		dst.ReptileName = strings.TrimSpace(*p.ReptileName)
	}
	if p.ReptileSpecies != nil {
		dst.ReptileSpecies = strings.TrimSpace(*p.ReptileSpecies)
	}
	if p.ReptileSex != nil {
		dst.ReptileSex = strPtrOrNil(p.ReptileSex)
	}
	if p.ReptileMorphs != nil {
		raw, err := morphsJSON(*p.ReptileMorphs)
		if err != nil {
			return false, fmt.Errorf("reptile_morphs: %w", err)
		}
		dst.ReptileMorphs = raw
	}
	if p.ReptileHatchDate != nil {
		hatch, err := datePtrFromString(p.ReptileHatchDate)
		if err != nil {
			return false, fmt.Errorf("reptile_hatch_date: %w", err)
		}
		dst.ReptileHatchDate = hatch
	}
	if p.ReptileWeightGrams != nil {
		dst.ReptileWeightGrams = p.ReptileWeightGrams
	}
	if p.ReptileLocationID != nil {
		next, err := uuidPtrFromString(p.ReptileLocationID)
		if err != nil {
			return false, fmt.Errorf("reptile_location_id: %w", err)
		}
		prev := dst.ReptileLocationID
		dst.ReptileLocationID = next
		if next != nil && (prev == nil || *prev != *next) {
			locationChanged = true
		}
	}
	if p.ReptileDamID != nil {
		if dst.ReptileDamID, err = uuidPtrFromString(p.ReptileDamID); err != nil {
			return false, fmt.Errorf("reptile_dam_id: %w", err)
		}
	}
	if p.ReptileSireID != nil {
		if dst.ReptileSireID, err = uuidPtrFromString(p.ReptileSireID); err != nil {
			return false, fmt.Errorf("reptile_sire_id: %w", err)
		}
	}
	if p.ReptileNotes != nil {
		dst.ReptileNotes = strPtrOrNil(p.ReptileNotes)
	}
	if p.ReptileStatus != nil && strings.TrimSpace(*p.ReptileStatus) != "" {
		dst.ReptileStatus = strings.TrimSpace(*p.ReptileStatus)
	}
	return locationChanged, nil
}

/* =======================================================
   Response
   ======================================================= */

type ReptileResponse struct {
	ReptileID          uuid.UUID  `json:"reptile_id"`
	ReptileName        string     `json:"reptile_name"`
	ReptileSpecies     string     `json:"reptile_species"`
	ReptileSex         *string    `json:"reptile_sex,omitempty"`
	ReptileMorphs      []string   `json:"reptile_morphs,omitempty"`
	ReptileHatchDate   *string    `json:"reptile_hatch_date,omitempty"`
	ReptileWeightGrams *int       `json:"reptile_weight_grams,omitempty"`
	ReptileLocationID  *uuid.UUID `json:"reptile_location_id,omitempty"`
	ReptileDamID       *uuid.UUID `json:"reptile_dam_id,omitempty"`
	ReptileSireID      *uuid.UUID `json:"reptile_sire_id,omitempty"`
	ReptilePhotoURL    *string    `json:"reptile_photo_url,omitempty"`
	ReptileNotes       *string    `json:"reptile_notes,omitempty"`
	ReptileStatus      string     `json:"reptile_status"`
	ReptileCreatedAt   time.Time  `json:"reptile_created_at"`
}

func NewReptileResponse(src *m.ReptileModel) ReptileResponse {
	resp := ReptileResponse{
		ReptileID:          src.ReptileID,
		ReptileName:        src.ReptileName,
		ReptileSpecies:     src.ReptileSpecies,
		ReptileSex:         src.ReptileSex,
		ReptileWeightGrams: src.ReptileWeightGrams,
		ReptileLocationID:  src.ReptileLocationID,
		ReptileDamID:       src.ReptileDamID,
		ReptileSireID:      src.ReptileSireID,
		ReptilePhotoURL:    src.ReptilePhotoURL,
		ReptileNotes:       src.ReptileNotes,
		ReptileStatus:      src.ReptileStatus,
		ReptileCreatedAt:   src.ReptileCreatedAt,
	}
	if len(src.ReptileMorphs) > 0 {
		_ = json.Unmarshal(src.ReptileMorphs, &resp.ReptileMorphs)
	}
	if src.ReptileHatchDate != nil {
		s := time.Time(*src.ReptileHatchDate).Format(layoutDate)
		resp.ReptileHatchDate = &s
	}
	return resp
}
