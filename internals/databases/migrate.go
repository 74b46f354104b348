package database

import (
	"log"

	caseModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
	clientModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/model"
	configModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/model"
	geoModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/model"
	partnerModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/model"
	serviceModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/model"
)

// Migrate applies the additive schema for every master table. Order
// matters only for readability; GORM resolves references lazily.
func Migrate() {
	err := DB.AutoMigrate(
		&geoModel.State{},
		&geoModel.City{},
		&clientModel.Client{},
		&serviceModel.Service{},
		&serviceModel.SubService{},
		&serviceModel.SubServiceEntitlement{},
		&partnerModel.Dealer{},
		&partnerModel.DropDealer{},
		&partnerModel.Asp{},
		&partnerModel.AspMechanic{},
		&partnerModel.AspMechanicSubService{},
		&caseModel.Disposition{},
		&caseModel.ActivityStatus{},
		&caseModel.CaseSubject{},
		&configModel.Config{},
	)
	if err != nil {
		log.Fatalf("[FATAL] migration failed: %v", err)
	}
	log.Println("[INFO] migrations applied.")
}
