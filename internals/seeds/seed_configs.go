package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	configModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/model"
)

var configSeeds = map[uint][]string{
	constants.ConfigTypeDispositionType: {"Service Related", "Sales Related", "Complaint", "Enquiry"},
	constants.ConfigTypeCaseType:        {"Breakdown", "Accident", "Towing", "Repair On Site"},
	constants.ConfigTypeVehicleType:     {"Two Wheeler", "Four Wheeler", "Commercial Vehicle"},
	constants.ConfigTypeMembershipType:  {"Retail", "OEM", "Corporate"},
	constants.ConfigTypeCaseSubjectType: {"Mechanical", "Electrical", "Documentation"},
	constants.ConfigTypeFuelType:        {"Petrol", "Diesel", "CNG", "Electric"},
	constants.ConfigTypeServiceRegion:   {"North", "South", "East", "West"},
}

func SeedConfigs(db *gorm.DB) {
	for typeID, names := range configSeeds {
		for _, name := range names {
			err := db.Transaction(func(tx *gorm.DB) error {
				var existing configModel.Config
				err := tx.Unscoped().
					Where("config_type_id = ? AND name = ?", typeID, name).
					First(&existing).Error
				if err == nil {
					return nil
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				return tx.Create(&configModel.Config{TypeID: typeID, Name: name}).Error
			})
			if err != nil {
				log.Printf("[WARN] seed config %s/%q: %v", constants.ConfigTypeNames[typeID], name, err)
			}
		}
	}
}
