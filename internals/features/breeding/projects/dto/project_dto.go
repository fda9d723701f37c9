package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "clutchly_backend/internals/features/breeding/projects/model"
)

const layoutDate = "2006-01-02"

/* =======================================================
   Pairing log entry
   ======================================================= */

type PairingEntry struct {
	Date         string  `json:"date" validate:"required"`
	ObservedLock bool    `json:"observed_lock"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

/* =======================================================
   Create / Patch
   ======================================================= */

type CreateBreedingProjectRequest struct {
	BreedingProjectName   string  `json:"breeding_project_name" validate:"required,min=1,max=120"`
	BreedingProjectSeason string  `json:"breeding_project_season" validate:"required,min=4,max=20"`
	BreedingProjectSireID string  `json:"breeding_project_sire_id" validate:"required,uuid4"`
	BreedingProjectDamID  string  `json:"breeding_project_dam_id" validate:"required,uuid4"`
	BreedingProjectStatus *string `json:"breeding_project_status,omitempty" validate:"omitempty,oneof=planned paired gravid laid hatched complete"`
	BreedingProjectNotes  *string `json:"breeding_project_notes,omitempty" validate:"omitempty,max=4000"`
}

func (r *CreateBreedingProjectRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateBreedingProjectRequest) ApplyToModel(dst *m.BreedingProjectModel) error {
	dst.BreedingProjectName = strings.TrimSpace(r.BreedingProjectName)
	dst.BreedingProjectSeason = strings.TrimSpace(r.BreedingProjectSeason)

	sireID, err := uuid.Parse(r.BreedingProjectSireID)
	if err != nil {
		return fmt.Errorf("breeding_project_sire_id: %w", err)
	}
	damID, err := uuid.Parse(r.BreedingProjectDamID)
	if err != nil {
		return fmt.Errorf("breeding_project_dam_id: %w", err)
	}
	if sireID == damID {
		return fmt.Errorf("sire and dam must be different reptiles")
	}
	dst.BreedingProjectSireID = sireID
	dst.BreedingProjectDamID = damID

	dst.BreedingProjectStatus = m.BreedingProjectStatusPlanned
	if r.BreedingProjectStatus != nil && *r.BreedingProjectStatus != "" {
		dst.BreedingProjectStatus = *r.BreedingProjectStatus
	}
	if r.BreedingProjectNotes != nil {
		if n := strings.TrimSpace(*r.BreedingProjectNotes); n != "" {
			dst.BreedingProjectNotes = &n
		}
	}
	return nil
}

type PatchBreedingProjectRequest struct {
	BreedingProjectName   *string `json:"breeding_project_name,omitempty" validate:"omitempty,min=1,max=120"`
	BreedingProjectSeason *string `json:"breeding_project_season,omitempty" validate:"omitempty,min=4,max=20"`
	BreedingProjectStatus *string `json:"breeding_project_status,omitempty" validate:"omitempty,oneof=planned paired gravid laid hatched complete"`
	BreedingProjectNotes  *string `json:"breeding_project_notes,omitempty" validate:"omitempty,max=4000"`
}

func (r *PatchBreedingProjectRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (p *PatchBreedingProjectRequest) ApplyPatch(dst *m.BreedingProjectModel) {
	if p.BreedingProjectName != nil {
		dst.BreedingProjectName = strings.TrimSpace(*p.BreedingProjectName)
	}
	if p.BreedingProjectSeason != nil {
		dst.BreedingProjectSeason = strings.TrimSpace(*p.BreedingProjectSeason)
	}
	if p.BreedingProjectStatus != nil && *p.BreedingProjectStatus != "" {
		dst.BreedingProjectStatus = *p.BreedingProjectStatus
	}
	if p.BreedingProjectNotes != nil {
		n := strings.TrimSpace(*p.BreedingProjectNotes)
		if n == "" {
			dst.BreedingProjectNotes = nil
		} else {
			dst.BreedingProjectNotes = &n
		}
	}
}

/* =======================================================
   AddPairingRequest appends one entry to the pairing log
   ======================================================= */

type AddPairingRequest struct {
	Pairing PairingEntry `json:"pairing" validate:"required"`
}

func (r *AddPairingRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *AddPairingRequest) AppendTo(dst *m.BreedingProjectModel) error {
	if _, err := time.ParseInLocation(layoutDate, r.Pairing.Date, time.Local); err != nil {
		return fmt.Errorf("pairing.date: %w", err)
	}

	var log []PairingEntry
	if len(dst.BreedingProjectPairings) > 0 {
		if err := json.Unmarshal(dst.BreedingProjectPairings, &log); err != nil {
			return fmt.Errorf("existing pairing log: %w", err)
		}
	}
	log = append(log, r.Pairing)

	raw, err := json.Marshal(log)
	if err != nil {
		return err
	}
	dst.BreedingProjectPairings = datatypes.JSON(raw)
	return nil
}

/* =======================================================
   Response
   ======================================================= */

type BreedingProjectResponse struct {
	BreedingProjectID       uuid.UUID      `json:"breeding_project_id"`
	BreedingProjectName     string         `json:"breeding_project_name"`
	BreedingProjectSeason   string         `json:"breeding_project_season"`
	BreedingProjectSireID   uuid.UUID      `json:"breeding_project_sire_id"`
	BreedingProjectDamID    uuid.UUID      `json:"breeding_project_dam_id"`
	BreedingProjectStatus   string         `json:"breeding_project_status"`
	BreedingProjectPairings []PairingEntry `json:"breeding_project_pairings,omitempty"`
	BreedingProjectNotes    *string        `json:"breeding_project_notes,omitempty"`
	BreedingProjectCreated  time.Time      `json:"breeding_project_created_at"`
}

func NewBreedingProjectResponse(src *m.BreedingProjectModel) BreedingProjectResponse {
	resp := BreedingProjectResponse{
		BreedingProjectID:      src.BreedingProjectID,
		BreedingProjectName:    src.BreedingProjectName,
		BreedingProjectSeason:  src.BreedingProjectSeason,
		BreedingProjectSireID:  src.BreedingProjectSireID,
		BreedingProjectDamID:   src.BreedingProjectDamID,
		BreedingProjectStatus:  src.BreedingProjectStatus,
		BreedingProjectNotes:   src.BreedingProjectNotes,
		BreedingProjectCreated: src.BreedingProjectCreatedAt,
	}
	if len(src.BreedingProjectPairings) > 0 {
		_ = json.Unmarshal(src.BreedingProjectPairings, &resp.BreedingProjectPairings)
	}
	return resp
}
