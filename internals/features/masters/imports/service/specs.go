package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	caseDto "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/dto"
	caseModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
	caseService "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/service"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/imports/driver"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/lookup"
	partnerDto "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/dto"
	partnerModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/model"
	partnerService "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/service"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// Import specs: one per spreadsheet type. Each Upsert resolves the
// name-valued columns to foreign keys, finds any existing row by the
// natural key so a re-upload updates instead of duplicating, and hands off
// to the same save service the admin form uses.

func DealerSpec(partners *partnerService.PartnerService) driver.Spec {
	return driver.Spec{
		Entity: "Dealer",
		Sheet:  "Dealers",
		Columns: []string{
			"Name", "Code", "GSTIN", "Email", "Phone", "Address",
			"Client", "State", "City", "Drop Dealer Codes", "Status",
		},
		Rename: map[string]string{"GSTIN": "gstin"},
		Upsert: func(ctx context.Context, db *gorm.DB, f map[string]string, actorID uint) (bool, error) {
			clientID := lookup.IDByName(db, "clients", f["client"])
			if clientID == 0 {
				return false, helper.Business("Client not found")
			}
			stateID := lookup.IDByName(db, "states", f["state"])
			if stateID == 0 {
				return false, helper.Business("State not found")
			}
			cityID := lookup.CityIDByName(db, f["city"], stateID)
			if cityID == 0 {
				return false, helper.Business("City not found")
			}
			status, err := driver.ParseStatus(f["status"])
			if err != nil {
				return false, err
			}

			var dropIDs []uint
			for _, code := range driver.SplitList(f["dropDealerCodes"]) {
				id := lookup.IDByCode(db, "dealers", code)
				if id == 0 {
					return false, helper.Business("Drop dealer %s not found", code)
				}
				dropIDs = append(dropIDs, id)
			}

			req := partnerDto.SaveDealerRequest{
				Name:          f["name"],
				Code:          f["code"],
				Email:         f["email"],
				Phone:         f["phone"],
				ClientID:      &clientID,
				StateID:       &stateID,
				CityID:        &cityID,
				DropDealerIDs: dropIDs,
				Status:        status,
			}
			if v := f["gstin"]; v != "" {
				req.GSTIN = &v
			}
			if v := f["address"]; v != "" {
				req.Address = &v
			}

			var existing partnerModel.Dealer
			err = db.Unscoped().Where("code = ?", f["code"]).First(&existing).Error
			if err == nil {
				req.ID = &existing.ID
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return false, err
			}

			_, created, err := partners.SaveDealer(ctx, db, req, actorID)
			return created, err
		},
	}
}

func AspSpec(partners *partnerService.PartnerService) driver.Spec {
	return driver.Spec{
		Entity:  "ASP",
		Sheet:   "ASPs",
		Columns: []string{"Name", "Code", "Email", "Phone", "City", "Status"},
		Upsert: func(ctx context.Context, db *gorm.DB, f map[string]string, actorID uint) (bool, error) {
			cityID := lookup.CityIDByName(db, f["city"], 0)
			if cityID == 0 {
				return false, helper.Business("City not found")
			}
			status, err := driver.ParseStatus(f["status"])
			if err != nil {
				return false, err
			}

			req := partnerDto.SaveAspRequest{
				Name:   f["name"],
				Code:   f["code"],
				Email:  f["email"],
				Phone:  f["phone"],
				CityID: &cityID,
				Status: status,
			}

			var existing partnerModel.Asp
			err = db.Unscoped().Where("code = ?", f["code"]).First(&existing).Error
			if err == nil {
				req.ID = &existing.ID
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return false, err
			}

			_, created, err := partners.SaveAsp(ctx, db, req, actorID)
			return created, err
		},
	}
}

func AspMechanicSpec(partners *partnerService.PartnerService) driver.Spec {
	return driver.Spec{
		Entity:  "ASP mechanic",
		Sheet:   "ASP Mechanics",
		Columns: []string{"Name", "Phone", "ASP Code", "City", "Sub Services", "Status"},
		Rename:  map[string]string{"ASP Code": "aspCode"},
		Upsert: func(ctx context.Context, db *gorm.DB, f map[string]string, actorID uint) (bool, error) {
			aspID := lookup.IDByCode(db, "asps", f["aspCode"])
			if aspID == 0 {
				return false, helper.Business("ASP not found")
			}
			cityID := lookup.CityIDByName(db, f["city"], 0)
			if cityID == 0 {
				return false, helper.Business("City not found")
			}
			status, err := driver.ParseStatus(f["status"])
			if err != nil {
				return false, err
			}

			var subServiceIDs []uint
			for _, name := range driver.SplitList(f["subServices"]) {
				id := lookup.IDByName(db, "sub_services", name)
				if id == 0 {
					return false, helper.Business("Sub service %s not found", name)
				}
				subServiceIDs = append(subServiceIDs, id)
			}

			req := partnerDto.SaveAspMechanicRequest{
				Name:          f["name"],
				Phone:         f["phone"],
				AspID:         &aspID,
				CityID:        &cityID,
				SubServiceIDs: subServiceIDs,
				Status:        status,
			}

			var existing partnerModel.AspMechanic
			err = db.Unscoped().Where("phone = ?", f["phone"]).First(&existing).Error
			if err == nil {
				req.ID = &existing.ID
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return false, err
			}

			_, created, err := partners.SaveAspMechanic(ctx, db, req, actorID)
			return created, err
		},
	}
}

func DispositionSpec() driver.Spec {
	return driver.Spec{
		Entity:  "Disposition",
		Sheet:   "Dispositions",
		Columns: []string{"Name", "Type", "Status"},
		Upsert: func(ctx context.Context, db *gorm.DB, f map[string]string, actorID uint) (bool, error) {
			typeID := lookup.ConfigIDByName(db, constants.ConfigTypeDispositionType, f["type"])
			if typeID == 0 {
				return false, helper.Business("Disposition type not found")
			}
			status, err := driver.ParseStatus(f["status"])
			if err != nil {
				return false, err
			}

			req := caseDto.SaveDispositionRequest{
				Name:   f["name"],
				TypeID: &typeID,
				Status: status,
			}

			var existing caseModel.Disposition
			err = db.Unscoped().Where("name = ? AND type_id = ?", f["name"], typeID).First(&existing).Error
			if err == nil {
				req.ID = &existing.ID
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return false, err
			}

			_, created, err := caseService.SaveDisposition(db, req, actorID)
			return created, err
		},
	}
}

func CaseSubjectSpec() driver.Spec {
	return driver.Spec{
		Entity:  "Case subject",
		Sheet:   "Case Subjects",
		Columns: []string{"Name", "Disposition", "Status"},
		Upsert: func(ctx context.Context, db *gorm.DB, f map[string]string, actorID uint) (bool, error) {
			req := caseDto.SaveCaseSubjectRequest{Name: f["name"]}

			// Subject sheets arrive with en/em dashes and doubled spaces
			// in disposition names, hence the normalized fallback.
			if f["disposition"] != "" {
				dispID := lookup.IDByNameNormalized(db, "dispositions", f["disposition"])
				if dispID == 0 {
					return false, helper.Business("Disposition not found")
				}
				req.DispositionID = &dispID
			}
			status, err := driver.ParseStatus(f["status"])
			if err != nil {
				return false, err
			}
			req.Status = status

			var existing caseModel.CaseSubject
			err = db.Unscoped().Where("name = ?", f["name"]).First(&existing).Error
			if err == nil {
				req.ID = &existing.ID
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return false, err
			}

			_, created, err := caseService.SaveCaseSubject(db, req, actorID)
			return created, err
		},
	}
}
