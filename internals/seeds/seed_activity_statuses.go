package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	caseModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
)

var activityStatusSeeds = []caseModel.ActivityStatus{
	{Name: "Case Registered", Code: "REG"},
	{Name: "ASP Assigned", Code: "ASSIGNED"},
	{Name: "Mechanic Dispatched", Code: "DISPATCHED"},
	{Name: "Reached Location", Code: "REACHED"},
	{Name: "Work In Progress", Code: "WIP"},
	{Name: "Resolved On Site", Code: "RESOLVED"},
	{Name: "Towed To Dealer", Code: "TOWED"},
	{Name: "Closed", Code: "CLOSED"},
	{Name: "Cancelled", Code: "CANCELLED"},
}

func SeedActivityStatuses(db *gorm.DB) {
	for _, seed := range activityStatusSeeds {
		seed := seed
		err := db.Transaction(func(tx *gorm.DB) error {
			var existing caseModel.ActivityStatus
			err := tx.Unscoped().Where("name = ?", seed.Name).First(&existing).Error
			if err == nil {
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&seed).Error
		})
		if err != nil {
			log.Printf("[WARN] seed activity status %q: %v", seed.Name, err)
		}
	}
}
