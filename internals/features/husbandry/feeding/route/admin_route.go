package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feedingctl "clutchly_backend/internals/features/husbandry/feeding/controller"
	"clutchly_backend/internals/middlewares"
)

// FeedingAdminRoutes registers feeding schedules, events and feeder sizes
func FeedingAdminRoutes(api fiber.Router, db *gorm.DB) {
	sched := feedingctl.NewFeedingScheduleController(db)

	grpSched := api.Group("/feeding-schedules")
	grpSched.Get("/", sched.List)
	grpSched.Get("/:id", sched.GetByID)
	grpSched.Post("/", sched.Create)
	grpSched.Patch("/:id", sched.Patch)
	grpSched.Delete("/:id", sched.Delete)
	grpSched.Post("/:id/targets", sched.AddTarget)
	grpSched.Delete("/:id/targets/:target_id", sched.RemoveTarget)
	grpSched.Post("/:id/generate", middlewares.BulkWriteRateLimiter(), sched.Generate)
	grpSched.Get("/:id/status", sched.Status)

	events := feedingctl.NewFeedingEventController(db)
	grpEvents := api.Group("/feeding-events")
	grpEvents.Get("/", events.List)
	grpEvents.Patch("/:id", events.Patch)

	sizes := feedingctl.NewFeederSizeController(db)
	grpSizes := api.Group("/feeder-sizes")
	grpSizes.Get("/", sizes.List)
	grpSizes.Post("/", sizes.Create)
	grpSizes.Delete("/:id", sizes.Delete)
}
