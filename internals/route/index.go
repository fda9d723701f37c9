package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clutchly_backend/internals/configs"
	breedingroutes "clutchly_backend/internals/features/breeding/projects/route"
	financeroutes "clutchly_backend/internals/features/finance/expenses/route"
	feedingroutes "clutchly_backend/internals/features/husbandry/feeding/route"
	healthroutes "clutchly_backend/internals/features/husbandry/health/route"
	housingroutes "clutchly_backend/internals/features/husbandry/housing/route"
	reptileroutes "clutchly_backend/internals/features/husbandry/reptiles/route"
	orgroutes "clutchly_backend/internals/features/organizations/organization/route"
	"clutchly_backend/internals/middlewares"
	"clutchly_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		middlewares.DBMiddleware(db),
	)

	orgroutes.OrganizationAdminRoutes(api, db)
	housingroutes.HousingAdminRoutes(api, db)
	reptileroutes.ReptileAdminRoutes(api, db)
	feedingroutes.FeedingAdminRoutes(api, db)
	healthroutes.HealthAdminRoutes(api, db)
	financeroutes.FinanceAdminRoutes(api, db)
	breedingroutes.BreedingAdminRoutes(api, db)
}
