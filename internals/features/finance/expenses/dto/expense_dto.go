package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "clutchly_backend/internals/features/finance/expenses/model"
)

const layoutDate = "2006-01-02"

type CreateExpenseRequest struct {
	ExpenseDate        string  `json:"expense_date" validate:"required"`
	ExpenseCategory    string  `json:"expense_category" validate:"required,min=1,max=60"`
	ExpenseAmountCents int64   `json:"expense_amount_cents" validate:"required,gt=0"`
	ExpenseCurrency    *string `json:"expense_currency,omitempty" validate:"omitempty,len=3"`
	ExpenseMemo        *string `json:"expense_memo,omitempty" validate:"omitempty,max=2000"`
	ExpenseReptileID   *string `json:"expense_reptile_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *CreateExpenseRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateExpenseRequest) ApplyToModel(dst *m.ExpenseModel) error {
	t, err := time.ParseInLocation(layoutDate, strings.TrimSpace(r.ExpenseDate), time.Local)
	if err != nil {
		return fmt.Errorf("expense_date: %w", err)
	}
	dst.ExpenseDate = datatypes.Date(t)
	dst.ExpenseCategory = strings.ToLower(strings.TrimSpace(r.ExpenseCategory))
	dst.ExpenseAmountCents = r.ExpenseAmountCents

	dst.ExpenseCurrency = "USD"
	if r.ExpenseCurrency != nil && strings.TrimSpace(*r.ExpenseCurrency) != "" {
		dst.ExpenseCurrency = strings.ToUpper(strings.TrimSpace(*r.ExpenseCurrency))
	}
	if r.ExpenseMemo != nil {
		if memo := strings.TrimSpace(*r.ExpenseMemo); memo != "" {
			dst.ExpenseMemo = &memo
		}
	}
	if r.ExpenseReptileID != nil && strings.TrimSpace(*r.ExpenseReptileID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*r.ExpenseReptileID))
		if err != nil {
			return fmt.Errorf("expense_reptile_id: %w", err)
		}
		dst.ExpenseReptileID = &id
	}
	return nil
}

type PatchExpenseRequest struct {
	ExpenseDate        *string `json:"expense_date,omitempty"`
	ExpenseCategory    *string `json:"expense_category,omitempty" validate:"omitempty,min=1,max=60"`
	ExpenseAmountCents *int64  `json:"expense_amount_cents,omitempty" validate:"omitempty,gt=0"`
	ExpenseCurrency    *string `json:"expense_currency,omitempty" validate:"omitempty,len=3"`
	ExpenseMemo        *string `json:"expense_memo,omitempty" validate:"omitempty,max=2000"`
	ExpenseReptileID   *string `json:"expense_reptile_id,omitempty"`
}

func (r *PatchExpenseRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (p *PatchExpenseRequest) ApplyPatch(dst *m.ExpenseModel) error {
	if p.ExpenseDate != nil {
		t, err := time.ParseInLocation(layoutDate, strings.TrimSpace(*p.ExpenseDate), time.Local)
		if err != nil {
			return fmt.Errorf("expense_date: %w", err)
		}
		dst.ExpenseDate = datatypes.Date(t)
	}
	if p.ExpenseCategory != nil {
		dst.ExpenseCategory = strings.ToLower(strings.TrimSpace(*p.ExpenseCategory))
	}
	if p.ExpenseAmountCents != nil {
		dst.ExpenseAmountCents = *p.ExpenseAmountCents
	}
	if p.ExpenseCurrency != nil {
		dst.ExpenseCurrency = strings.ToUpper(strings.TrimSpace(*p.ExpenseCurrency))
	}
	if p.ExpenseMemo != nil {
		memo := strings.TrimSpace(*p.ExpenseMemo)
		if memo == "" {
			dst.ExpenseMemo = nil
		} else {
			dst.ExpenseMemo = &memo
		}
	}
	if p.ExpenseReptileID != nil {
		raw := strings.TrimSpace(*p.ExpenseReptileID)
		if raw == "" {
			dst.ExpenseReptileID = nil
		} else {
			id, err := uuid.Parse(raw)
			if err != nil {
				return fmt.Errorf("expense_reptile_id: %w", err)
			}
			dst.ExpenseReptileID = &id
		}
	}
	return nil
}

type ExpenseResponse struct {
	ExpenseID          uuid.UUID  `json:"expense_id"`
	ExpenseDate        string     `json:"expense_date"`
	ExpenseCategory    string     `json:"expense_category"`
	ExpenseAmountCents int64      `json:"expense_amount_cents"`
	ExpenseCurrency    string     `json:"expense_currency"`
	ExpenseMemo        *string    `json:"expense_memo,omitempty"`
	ExpenseReptileID   *uuid.UUID `json:"expense_reptile_id,omitempty"`
	ExpenseCreatedAt   time.Time  `json:"expense_created_at"`
}

func NewExpenseResponse(src *m.ExpenseModel) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:          src.ExpenseID,
		ExpenseDate:        time.Time(src.ExpenseDate).Format(layoutDate),
		ExpenseCategory:    src.ExpenseCategory,
		ExpenseAmountCents: src.ExpenseAmountCents,
		ExpenseCurrency:    src.ExpenseCurrency,
		ExpenseMemo:        src.ExpenseMemo,
		ExpenseReptileID:   src.ExpenseReptileID,
		ExpenseCreatedAt:   src.ExpenseCreatedAt,
	}
}

/* =======================================================
   Monthly summary
   ======================================================= */

type ExpenseCategorySum struct {
	Category   string `json:"category"`
	TotalCents int64  `json:"total_cents"`
	Count      int64  `json:"count"`
}

type ExpenseMonthlySummary struct {
	Month      string               `json:"month"` // YYYY-MM
	TotalCents int64                `json:"total_cents"`
	Categories []ExpenseCategorySum `json:"categories"`
}
