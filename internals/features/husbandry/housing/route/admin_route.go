package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	housingctl "clutchly_backend/internals/features/husbandry/housing/controller"
)

// HousingAdminRoutes registers the housing hierarchy CRUD
func HousingAdminRoutes(api fiber.Router, db *gorm.DB) {
	rooms := housingctl.NewRoomController(db)
	grpRooms := api.Group("/rooms")
	grpRooms.Get("/", rooms.List)
	grpRooms.Get("/:id", rooms.GetByID)
	grpRooms.Post("/", rooms.Create)
	grpRooms.Put("/:id", rooms.Update)
	grpRooms.Delete("/:id", rooms.Delete)

	racks := housingctl.NewRackController(db)
	grpRacks := api.Group("/racks")
	grpRacks.Get("/", racks.List)
	grpRacks.Get("/:id", racks.GetByID)
	grpRacks.Post("/", racks.Create)
	grpRacks.Put("/:id", racks.Update)
	grpRacks.Delete("/:id", racks.Delete)

	locations := housingctl.NewLocationController(db)
	grpLoc := api.Group("/locations")
	grpLoc.Get("/", locations.List)
	grpLoc.Get("/:id", locations.GetByID)
	grpLoc.Post("/", locations.Create)
	grpLoc.Patch("/:id", locations.Patch)
	grpLoc.Delete("/:id", locations.Delete)
}
