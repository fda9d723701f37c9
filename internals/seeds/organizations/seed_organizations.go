package organizations

import (
	"errors"
	"log"

	"gorm.io/gorm"

	m "clutchly_backend/internals/features/organizations/organization/model"
)

// SeedDemoOrganization creates the demo org used by local development
// if none exists, and returns it.
func SeedDemoOrganization(db *gorm.DB) *m.OrganizationModel {
	var org m.OrganizationModel
	err := db.Where("organization_name = ?", "Demo Collection").First(&org).Error
	if err == nil {
		return &org
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED] organization lookup: %v", err)
		return nil
	}

	org = m.OrganizationModel{OrganizationName: "Demo Collection"}
	if err := db.Create(&org).Error; err != nil {
		log.Printf("[SEED] organization: %v", err)
		return nil
	}
	log.Printf("[SEED] demo organization created: %s", org.OrganizationID)
	return &org
}
