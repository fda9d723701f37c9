package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExpenseModel struct {
	ExpenseID    uuid.UUID `json:"expense_id" gorm:"type:uuid;primaryKey;column:expense_id;default:gen_random_uuid()"`
	ExpenseOrgID uuid.UUID `json:"expense_org_id" gorm:"type:uuid;not null;index;column:expense_org_id"`

	ExpenseDate     datatypes.Date `json:"expense_date" gorm:"type:date;not null;column:expense_date"`
	ExpenseCategory string         `json:"expense_category" gorm:"type:text;not null;column:expense_category"` // feeders, substrate, vet, equipment, other

	// Stored in minor units to keep sums exact.
	ExpenseAmountCents int64  `json:"expense_amount_cents" gorm:"type:bigint;not null;column:expense_amount_cents"`
	ExpenseCurrency    string `json:"expense_currency" gorm:"type:text;not null;default:'USD';column:expense_currency"`

	ExpenseMemo      *string    `json:"expense_memo,omitempty" gorm:"type:text;column:expense_memo"`
	ExpenseReptileID *uuid.UUID `json:"expense_reptile_id,omitempty" gorm:"type:uuid;index;column:expense_reptile_id"`

	ExpenseCreatedAt time.Time      `json:"expense_created_at" gorm:"column:expense_created_at;not null;autoCreateTime"`
	ExpenseDeletedAt gorm.DeletedAt `json:"expense_deleted_at" gorm:"column:expense_deleted_at;index"`
}

func (ExpenseModel) TableName() string {
	return "expenses"
}
