package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	m "clutchly_backend/internals/features/husbandry/reptiles/model"
)

/* =======================================================
   CSV import

   Expected header:
     name,species,sex,morphs,hatch_date,weight_grams,dam_name,sire_name

   morphs is a ";"-separated list, hatch_date is YYYY-MM-DD.

   The pipeline never aborts on a bad row: creation runs
   concurrently, failures are collected per row, and a second
   concurrent pass links dam/sire by name against the animals
   created in this batch plus the org's existing collection.
   ======================================================= */

const importConcurrency = 8

type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	Created int              `json:"created"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}

type importRow struct {
	line        int
	name        string
	species     string
	sex         string
	morphs      []string
	hatchDate   *time.Time
	weightGrams *int
	damName     string
	sireName    string
}

type ImportService struct {
	DB *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{DB: db}
}

func parseImportRows(r io.Reader) ([]importRow, []ImportRowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "species"} {
		if _, ok := col[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []importRow
	var rowErrs []ImportRowError
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrs = append(rowErrs, ImportRowError{Row: line, Message: err.Error()})
			continue
		}

		row := importRow{
			line:     line,
			name:     field(rec, "name"),
			species:  field(rec, "species"),
			sex:      strings.ToLower(field(rec, "sex")),
			damName:  field(rec, "dam_name"),
			sireName: field(rec, "sire_name"),
		}
		if row.name == "" || row.species == "" {
			rowErrs = append(rowErrs, ImportRowError{Row: line, Message: "name and species are required"})
			continue
		}
		if row.sex != "" && row.sex != "male" && row.sex != "female" && row.sex != "unknown" {
			rowErrs = append(rowErrs, ImportRowError{Row: line, Message: "sex must be male, female or unknown"})
			continue
		}
		if raw := field(rec, "morphs"); raw != "" {
			for _, mo := range strings.Split(raw, ";") {
				if t := strings.TrimSpace(mo); t != "" {
					row.morphs = append(row.morphs, t)
				}
			}
		}
		if raw := field(rec, "hatch_date"); raw != "" {
			t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
			if err != nil {
				rowErrs = append(rowErrs, ImportRowError{Row: line, Message: "hatch_date must be YYYY-MM-DD"})
				continue
			}
			row.hatchDate = &t
		}
		if raw := field(rec, "weight_grams"); raw != "" {
			w, err := strconv.Atoi(raw)
			if err != nil || w < 0 {
				rowErrs = append(rowErrs, ImportRowError{Row: line, Message: "weight_grams must be a non-negative integer"})
				continue
			}
			row.weightGrams = &w
		}
		rows = append(rows, row)
	}
	return rows, rowErrs, nil
}

func (s *ImportService) ImportCSV(ctx context.Context, orgID uuid.UUID, r io.Reader) (*ImportResult, error) {
	rows, rowErrs, err := parseImportRows(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: rowErrs}

	var mu sync.Mutex
	createdByName := make(map[string]uuid.UUID, len(rows))
	createdRows := make([]importRow, 0, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(importConcurrency)
	for _, row := range rows {
		row := row
		g.Go(func() error {
			rep := m.ReptileModel{
				ReptileOrgID:       orgID,
				ReptileName:        row.name,
				ReptileSpecies:     row.species,
				ReptileWeightGrams: row.weightGrams,
				ReptileStatus:      m.ReptileStatusActive,
			}
			if row.sex != "" {
				sex := row.sex
				rep.ReptileSex = &sex
			}
			if len(row.morphs) > 0 {
				raw, _ := json.Marshal(row.morphs)
				rep.ReptileMorphs = datatypes.JSON(raw)
			}
			if row.hatchDate != nil {
				d := datatypes.Date(*row.hatchDate)
				rep.ReptileHatchDate = &d
			}

			if err := s.DB.WithContext(gctx).Create(&rep).Error; err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, ImportRowError{Row: row.line, Message: err.Error()})
				mu.Unlock()
				return nil
			}

			mu.Lock()
			createdByName[strings.ToLower(row.name)] = rep.ReptileID
			row.name = rep.ReptileName
			createdRows = append(createdRows, row)
			result.Created++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Second pass: dam/sire linkage by name. Parents may come from this
	// batch or from animals already in the collection.
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(importConcurrency)
	for _, row := range createdRows {
		if row.damName == "" && row.sireName == "" {
			continue
		}
		row := row
		g.Go(func() error {
			updates := map[string]any{}
			if row.damName != "" {
				id, err := s.resolveParent(gctx, orgID, row.damName, createdByName, &mu)
				if err != nil {
					mu.Lock()
					result.Errors = append(result.Errors, ImportRowError{Row: row.line, Message: fmt.Sprintf("dam %q: %v", row.damName, err)})
					mu.Unlock()
				} else {
					updates["reptile_dam_id"] = id
				}
			}
			if row.sireName != "" {
				id, err := s.resolveParent(gctx, orgID, row.sireName, createdByName, &mu)
				if err != nil {
					mu.Lock()
					result.Errors = append(result.Errors, ImportRowError{Row: row.line, Message: fmt.Sprintf("sire %q: %v", row.sireName, err)})
					mu.Unlock()
				} else {
					updates["reptile_sire_id"] = id
				}
			}
			if len(updates) == 0 {
				return nil
			}

			mu.Lock()
			childID, ok := createdByName[strings.ToLower(row.name)]
			mu.Unlock()
			if !ok {
				return nil
			}
			if err := s.DB.WithContext(gctx).
				Model(&m.ReptileModel{}).
				Where("reptile_id = ? AND reptile_org_id = ?", childID, orgID).
				Updates(updates).Error; err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, ImportRowError{Row: row.line, Message: fmt.Sprintf("link parents: %v", err)})
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Failed = len(result.Errors)
	return result, nil
}

func (s *ImportService) resolveParent(ctx context.Context, orgID uuid.UUID, name string, createdByName map[string]uuid.UUID, mu *sync.Mutex) (uuid.UUID, error) {
	mu.Lock()
	id, ok := createdByName[strings.ToLower(name)]
	mu.Unlock()
	if ok {
		return id, nil
	}

	var existing m.ReptileModel
	err := s.DB.WithContext(ctx).
		Where("reptile_org_id = ? AND LOWER(reptile_name) = LOWER(?)", orgID, name).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, fmt.Errorf("no reptile with that name")
	}
	if err != nil {
		return uuid.Nil, err
	}
	return existing.ReptileID, nil
}
