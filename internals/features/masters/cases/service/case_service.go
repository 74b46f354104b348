package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	configModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/model"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// SaveDisposition creates or updates a disposition. Name is unique within
// its disposition type; typeId must be a config of the disposition-type
// category.
func SaveDisposition(db *gorm.DB, req dto.SaveDispositionRequest, actorID uint) (*model.Disposition, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveDispositionRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)

	var out *model.Disposition
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var cfg configModel.Config
		err := tx.Where("id = ? AND config_type_id = ?", *req.TypeID, constants.ConfigTypeDispositionType).
			First(&cfg).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Disposition type not found")
			}
			return err
		}

		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.Disposition{}).
				Where("name = ? AND type_id = ?", name, cfg.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("Disposition name already taken")
			}
			m := &model.Disposition{Name: name, TypeID: cfg.ID}
			m.CreatedByID = common.ActorPtr(actorID)
			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "Disposition name")
			}
			out, created = m, true
			return nil
		}

		var m model.Disposition
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Disposition not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.Disposition{}).
			Where("name = ? AND type_id = ? AND id <> ?", name, cfg.ID, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("Disposition name already taken")
		}
		m.Name = name
		m.TypeID = cfg.ID
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)
		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "Disposition name")
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func SaveActivityStatus(db *gorm.DB, req dto.SaveActivityStatusRequest, actorID uint) (*model.ActivityStatus, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveActivityStatusRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)

	var out *model.ActivityStatus
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.ActivityStatus{}).Where("name = ?", name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("Activity status name already taken")
			}
			m := &model.ActivityStatus{Name: name, Code: code}
			m.CreatedByID = common.ActorPtr(actorID)
			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "Activity status name")
			}
			out, created = m, true
			return nil
		}

		var m model.ActivityStatus
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Activity status not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.ActivityStatus{}).Where("name = ? AND id <> ?", name, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("Activity status name already taken")
		}
		m.Name = name
		m.Code = code
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)
		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "Activity status name")
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func SaveCaseSubject(db *gorm.DB, req dto.SaveCaseSubjectRequest, actorID uint) (*model.CaseSubject, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveCaseSubjectRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)

	var out *model.CaseSubject
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if req.DispositionID != nil {
			var d model.Disposition
			if err := tx.First(&d, *req.DispositionID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.Business("Disposition not found")
				}
				return err
			}
		}

		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.CaseSubject{}).Where("name = ?", name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("Case subject name already taken")
			}
			m := &model.CaseSubject{Name: name, DispositionID: req.DispositionID}
			m.CreatedByID = common.ActorPtr(actorID)
			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "Case subject name")
			}
			out, created = m, true
			return nil
		}

		var m model.CaseSubject
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Case subject not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.CaseSubject{}).Where("name = ? AND id <> ?", name, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("Case subject name already taken")
		}
		m.Name = name
		m.DispositionID = req.DispositionID
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)
		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "Case subject name")
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}
