package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	breedingctl "clutchly_backend/internals/features/breeding/projects/controller"
)

func BreedingAdminRoutes(api fiber.Router, db *gorm.DB) {
	projects := breedingctl.NewBreedingProjectController(db)

	grp := api.Group("/breeding-projects")
	grp.Get("/", projects.List)
	grp.Get("/:id", projects.GetByID)
	grp.Post("/", projects.Create)
	grp.Patch("/:id", projects.Patch)
	grp.Delete("/:id", projects.Delete)
	grp.Post("/:id/pairings", projects.AddPairing)

	clutches := breedingctl.NewClutchController(db)
	grpClutch := api.Group("/breeding-projects/:project_id/clutches")
	grpClutch.Get("/", clutches.List)
	grpClutch.Post("/", clutches.Create)
	grpClutch.Patch("/:clutch_id", clutches.Patch)
	grpClutch.Delete("/:clutch_id", clutches.Delete)
}
