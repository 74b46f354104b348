package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	geoModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/model"
)

var stateNames = []string{
	"Andhra Pradesh", "Assam", "Bihar", "Chhattisgarh", "Delhi", "Goa",
	"Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Odisha", "Punjab",
	"Rajasthan", "Tamil Nadu", "Telangana", "Uttar Pradesh",
	"Uttarakhand", "West Bengal",
}

func SeedStates(db *gorm.DB) {
	for _, name := range stateNames {
		err := db.Transaction(func(tx *gorm.DB) error {
			var existing geoModel.State
			err := tx.Unscoped().Where("name = ?", name).First(&existing).Error
			if err == nil {
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&geoModel.State{Name: name}).Error
		})
		if err != nil {
			log.Printf("[WARN] seed state %q: %v", name, err)
		}
	}
}
