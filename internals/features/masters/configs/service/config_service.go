package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/model"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

/* ===================== TYPED ACCESSORS ===================== */

// The configs table holds many unrelated enumerations behind one schema.
// Callers never query it directly; they go through these category-scoped
// accessors so an id from one category cannot leak into another.

// CategoryOptions lists the active entries of one category as dropdown
// options.
func CategoryOptions(db *gorm.DB, typeID uint) ([]common.Option, error) {
	opts := []common.Option{}
	err := db.Table("configs").Select("id, name").
		Where("config_type_id = ? AND deleted_at IS NULL", typeID).
		Order("name asc").
		Scan(&opts).Error
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// CategoryIDByName resolves a name inside one category; 0 when unmatched.
func CategoryIDByName(db *gorm.DB, typeID uint, name string) uint {
	n := strings.TrimSpace(name)
	if n == "" {
		return 0
	}
	var row struct{ ID uint }
	err := db.Table("configs").Select("id").
		Where("config_type_id = ? AND name = ? AND deleted_at IS NULL", typeID, n).
		Take(&row).Error
	if err != nil {
		return 0
	}
	return row.ID
}

// CategoryNameByID resolves an id back to its display name, guarding the
// category so a cross-category id yields "" instead of a wrong label.
func CategoryNameByID(db *gorm.DB, typeID, id uint) string {
	if id == 0 {
		return ""
	}
	var row struct{ Name string }
	err := db.Table("configs").Select("name").
		Where("config_type_id = ? AND id = ?", typeID, id).
		Take(&row).Error
	if err != nil {
		return ""
	}
	return row.Name
}

/* ===================== SAVE ===================== */

// SaveConfig creates or updates a config entry. Name is unique within its
// category; the category id must be a known one.
func SaveConfig(db *gorm.DB, req dto.SaveConfigRequest, actorID uint) (*model.Config, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveConfigRules); errs != nil {
		return nil, false, errs
	}
	if _, ok := constants.ConfigTypeNames[*req.TypeID]; !ok {
		return nil, false, helper.Business("Config type not found")
	}
	name := strings.TrimSpace(req.Name)

	var out *model.Config
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.Config{}).
				Where("name = ? AND config_type_id = ?", name, *req.TypeID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("Config name already taken")
			}
			m := &model.Config{TypeID: *req.TypeID, Name: name, Value: req.Value}
			m.CreatedByID = common.ActorPtr(actorID)
			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "Config name")
			}
			out, created = m, true
			return nil
		}

		var m model.Config
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Config not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.Config{}).
			Where("name = ? AND config_type_id = ? AND id <> ?", name, *req.TypeID, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("Config name already taken")
		}
		m.TypeID = *req.TypeID
		m.Name = name
		if req.Value != nil {
			m.Value = req.Value
		}
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)
		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "Config name")
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}
