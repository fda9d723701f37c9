package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reptilectl "clutchly_backend/internals/features/husbandry/reptiles/controller"
	"clutchly_backend/internals/middlewares"
)

func ReptileAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := reptilectl.NewReptileController(db)

	grp := api.Group("/reptiles")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/photo", ctl.UploadPhoto)

	imp := reptilectl.NewReptileImportController(db)
	grp.Post("/import", middlewares.BulkWriteRateLimiter(), imp.ImportCSV)
}
