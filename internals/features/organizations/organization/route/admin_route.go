package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orgctl "clutchly_backend/internals/features/organizations/organization/controller"
)

func OrganizationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := orgctl.NewOrganizationController(db)

	grp := api.Group("/organization")
	grp.Get("/profile", ctl.Profile)
}
