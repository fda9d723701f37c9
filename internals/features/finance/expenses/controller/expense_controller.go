package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "clutchly_backend/internals/features/finance/expenses/dto"
	m "clutchly_backend/internals/features/finance/expenses/model"
	helper "clutchly_backend/internals/helpers"
)

type ExpenseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db, Validate: validator.New()}
}

func (ctl *ExpenseController) expenseOr404(c *fiber.Ctx, orgID uuid.UUID) (*m.ExpenseModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "invalid expense id")
	}
	var exp m.ExpenseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("expense_id = ? AND expense_org_id = ?", id, orgID).
		First(&exp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "expense not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "failed to fetch expense")
	}
	return &exp, nil
}

type listExpensesQuery struct {
	Category  string `query:"category"`
	ReptileID string `query:"reptile_id"`
	From      string `query:"from"`
	To        string `query:"to"`
}

func (ctl *ExpenseController) List(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q listExpensesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ExpenseModel{}).
		Where("expense_org_id = ?", orgID)

	if q.Category != "" {
		db = db.Where("expense_category = ?", q.Category)
	}
	if q.ReptileID != "" {
		if _, err := uuid.Parse(q.ReptileID); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "reptile_id invalid")
		}
		db = db.Where("expense_reptile_id = ?", q.ReptileID)
	}
	if q.From != "" {
		t, err := time.ParseInLocation("2006-01-02", q.From, time.Local)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "from invalid (YYYY-MM-DD)")
		}
		db = db.Where("expense_date >= ?", t)
	}
	if q.To != "" {
		t, err := time.ParseInLocation("2006-01-02", q.To, time.Local)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "to invalid (YYYY-MM-DD)")
		}
		db = db.Where("expense_date <= ?", t)
	}

	p := helper.ParsePage(c, "expense_date", "desc")
	order, err := p.SafeOrderClause(map[string]string{
		"expense_date": "expense_date",
		"amount":       "expense_amount_cents",
		"created_at":   "expense_created_at",
	}, "expense_date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to count expenses")
	}

	var expenses []m.ExpenseModel
	if err := db.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&expenses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list expenses")
	}

	resp := make([]d.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, d.NewExpenseResponse(&expenses[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": resp,
		"meta":  helper.BuildPageMeta(total, p),
	})
}

func (ctl *ExpenseController) GetByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	exp, err := ctl.expenseOr404(c, orgID)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", d.NewExpenseResponse(exp))
}

func (ctl *ExpenseController) Create(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	exp := m.ExpenseModel{ExpenseOrgID: orgID}
	if err := req.ApplyToModel(&exp); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&exp).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to create expense")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Expense created", d.NewExpenseResponse(&exp))
}

func (ctl *ExpenseController) Patch(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	exp, err := ctl.expenseOr404(c, orgID)
	if err != nil {
		return err
	}

	var req d.PatchExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyPatch(exp); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(exp).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update expense")
	}
	return helper.Success(c, "Expense updated", d.NewExpenseResponse(exp))
}

func (ctl *ExpenseController) Delete(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	exp, err := ctl.expenseOr404(c, orgID)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(exp).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete expense")
	}
	return helper.Success(c, "Expense deleted", nil)
}

/* =======================================================
   Monthly summary
   ======================================================= */

// MonthlySummary sums expenses per category for one calendar month.
// ?month=YYYY-MM, defaults to the current month.
func (ctl *ExpenseController) MonthlySummary(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	month := c.Query("month")
	var monthStart time.Time
	if month == "" {
		now := time.Now()
		monthStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	} else {
		monthStart, err = time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "month invalid (YYYY-MM)")
		}
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	var sums []d.ExpenseCategorySum
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ExpenseModel{}).
		Select("expense_category AS category, SUM(expense_amount_cents) AS total_cents, COUNT(*) AS count").
		Where("expense_org_id = ? AND expense_date >= ? AND expense_date < ?", orgID, monthStart, monthEnd).
		Group("expense_category").
		Order("total_cents DESC").
		Scan(&sums).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to summarize expenses")
	}

	summary := d.ExpenseMonthlySummary{
		Month:      monthStart.Format("2006-01"),
		Categories: sums,
	}
	for _, s := range sums {
		summary.TotalCents += s.TotalCents
	}
	return helper.Success(c, "OK", summary)
}
