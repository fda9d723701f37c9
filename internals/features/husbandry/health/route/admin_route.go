package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	healthctl "clutchly_backend/internals/features/husbandry/health/controller"
)

func HealthAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := healthctl.NewHealthLogController(db)

	grp := api.Group("/health-logs")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
}
