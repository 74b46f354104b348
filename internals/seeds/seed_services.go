package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	serviceModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/model"
)

var serviceSeeds = map[string][]string{
	"Roadside Assistance": {
		"Battery Jumpstart", "Flat Tyre", "Fuel Delivery", "Key Lockout",
		"Minor Repair On Site",
	},
	"Towing": {"Flatbed Towing", "Wheel Lift Towing", "Accident Towing"},
	"Taxi Support": {"Onward Journey", "Return Journey"},
}

func SeedServices(db *gorm.DB) {
	for serviceName, subServices := range serviceSeeds {
		var serviceID uint
		err := db.Transaction(func(tx *gorm.DB) error {
			var existing serviceModel.Service
			err := tx.Unscoped().Where("name = ?", serviceName).First(&existing).Error
			if err == nil {
				serviceID = existing.ID
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			svc := serviceModel.Service{Name: serviceName}
			if err := tx.Create(&svc).Error; err != nil {
				return err
			}
			serviceID = svc.ID
			return nil
		})
		if err != nil {
			log.Printf("[WARN] seed service %q: %v", serviceName, err)
			continue
		}

		for _, subName := range subServices {
			err := db.Transaction(func(tx *gorm.DB) error {
				var existing serviceModel.SubService
				err := tx.Unscoped().Where("name = ?", subName).First(&existing).Error
				if err == nil {
					return nil
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				return tx.Create(&serviceModel.SubService{Name: subName, ServiceID: serviceID}).Error
			})
			if err != nil {
				log.Printf("[WARN] seed sub service %q: %v", subName, err)
			}
		}
	}
}
