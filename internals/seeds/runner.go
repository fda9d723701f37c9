package seeds

import (
	"gorm.io/gorm"

	"clutchly_backend/internals/seeds/feeder_sizes"
	"clutchly_backend/internals/seeds/organizations"
)

// RunAllSeeds is called on startup when SEED_ON_BOOT=true. Safe to run
// repeatedly; every seeder checks before inserting.
func RunAllSeeds(db *gorm.DB) {
	org := organizations.SeedDemoOrganization(db)
	if org == nil {
		return
	}
	feeder_sizes.SeedFeederSizes(db, org.OrganizationID)
}
