package feeder_sizes

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

var defaultSizes = []string{
	"pinky", "fuzzy", "hopper", "weaned", "adult", "jumbo",
	"small rat", "medium rat", "large rat",
}

// SeedFeederSizes inserts the default prey-size ladder for an org
// if that org has no sizes yet.
func SeedFeederSizes(db *gorm.DB, orgID uuid.UUID) {
	var count int64
	if err := db.Model(&m.FeederSizeModel{}).
		Where("feeder_size_org_id = ?", orgID).
		Count(&count).Error; err != nil {
		log.Printf("[SEED] feeder sizes count: %v", err)
		return
	}
	if count > 0 {
		return
	}

	for i, name := range defaultSizes {
		size := m.FeederSizeModel{
			FeederSizeOrgID:     orgID,
			FeederSizeName:      name,
			FeederSizeSortOrder: i,
		}
		if err := db.Create(&size).Error; err != nil {
			log.Printf("[SEED] feeder size %q: %v", name, err)
		}
	}
	log.Printf("[SEED] feeder sizes seeded for org %s", orgID)
}
