package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expensectl "clutchly_backend/internals/features/finance/expenses/controller"
)

func FinanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := expensectl.NewExpenseController(db)

	grp := api.Group("/expenses")
	grp.Get("/", ctl.List)
	grp.Get("/summary/monthly", ctl.MonthlySummary)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
}
