package seeds

import (
	"log"

	"gorm.io/gorm"
)

// RunAllSeeds loads the baseline reference data. Every seeder is
// idempotent: existing rows (matched by natural key) are skipped, and each
// row runs in its own transaction so one failure never aborts the rest.
func RunAllSeeds(db *gorm.DB) {
	SeedStates(db)
	SeedConfigs(db)
	SeedActivityStatuses(db)
	SeedServices(db)
	log.Println("[INFO] seeding finished")
}
