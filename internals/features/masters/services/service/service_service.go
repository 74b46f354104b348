package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	clientModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/model"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

func SaveService(db *gorm.DB, req dto.SaveServiceRequest, actorID uint) (*model.Service, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveServiceRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)

	var out *model.Service
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.Service{}).Where("name = ?", name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("Service name already taken")
			}
			m := &model.Service{Name: name}
			m.CreatedByID = common.ActorPtr(actorID)
			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "Service name")
			}
			out, created = m, true
			return nil
		}

		var m model.Service
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Service not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.Service{}).Where("name = ? AND id <> ?", name, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("Service name already taken")
		}
		m.Name = name
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)
		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "Service name")
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

// SaveSubService creates or updates a sub-service and replaces its client
// entitlements wholesale (destroy-then-recreate, no diffing).
func SaveSubService(db *gorm.DB, req dto.SaveSubServiceRequest, actorID uint) (*model.SubService, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveSubServiceRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)

	var out *model.SubService
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var svc model.Service
		if err := tx.First(&svc, *req.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Service not found")
			}
			return err
		}
		if len(req.ClientIDs) > 0 {
			var count int64
			if err := tx.Model(&clientModel.Client{}).Where("id IN ?", req.ClientIDs).Count(&count).Error; err != nil {
				return err
			}
			if count != int64(len(req.ClientIDs)) {
				return helper.Business("Client not found")
			}
		}

		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.SubService{}).
				Where("name = ? AND service_id = ?", name, svc.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("Sub service name already taken")
			}
			m := &model.SubService{Name: name, ServiceID: svc.ID}
			m.CreatedByID = common.ActorPtr(actorID)
			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "Sub service name")
			}
			if err := replaceEntitlements(tx, m.ID, req.ClientIDs); err != nil {
				return err
			}
			out, created = m, true
			return nil
		}

		var m model.SubService
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Sub service not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.SubService{}).
			Where("name = ? AND service_id = ? AND id <> ?", name, svc.ID, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("Sub service name already taken")
		}
		m.Name = name
		m.ServiceID = svc.ID
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)
		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "Sub service name")
		}
		if err := replaceEntitlements(tx, m.ID, req.ClientIDs); err != nil {
			return err
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func replaceEntitlements(tx *gorm.DB, subServiceID uint, clientIDs []uint) error {
	if err := tx.Where("sub_service_id = ?", subServiceID).Delete(&model.SubServiceEntitlement{}).Error; err != nil {
		return err
	}
	for _, cid := range clientIDs {
		if err := tx.Create(&model.SubServiceEntitlement{SubServiceID: subServiceID, ClientID: cid}).Error; err != nil {
			return err
		}
	}
	return nil
}
