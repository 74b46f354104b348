package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// SaveClient creates or updates a client. Code is the natural key and is
// checked unscoped so soft-deleted rows still block reuse.
func SaveClient(db *gorm.DB, req dto.SaveClientRequest, actorID uint) (*model.Client, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveClientRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)

	var out *model.Client
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.Client{}).Where("code = ?", code).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("Client code already taken")
			}
			m := &model.Client{Name: name, Code: code}
			m.CreatedByID = common.ActorPtr(actorID)
			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "Client code")
			}
			out, created = m, true
			return nil
		}

		var m model.Client
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Client not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.Client{}).Where("code = ? AND id <> ?", code, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("Client code already taken")
		}
		m.Name = name
		m.Code = code
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)
		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "Client code")
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}
