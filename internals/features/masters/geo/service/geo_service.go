package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/model"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// SaveState creates or updates a state depending on the presence of id.
// Duplicate checks run unscoped so soft-deleted rows block name reuse.
func SaveState(db *gorm.DB, req dto.SaveStateRequest, actorID uint) (*model.State, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveStateRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)

	var out *model.State
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.State{}).Where("name = ?", name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("State name already taken")
			}
			m := &model.State{Name: name}
			m.CreatedByID = common.ActorPtr(actorID)
			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "State name")
			}
			out, created = m, true
			return nil
		}

		var m model.State
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("State not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.State{}).Where("name = ? AND id <> ?", name, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("State name already taken")
		}
		m.Name = name
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)
		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "State name")
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

// SaveCity creates or updates a city. The state reference must resolve to
// an active row before anything is written.
func SaveCity(db *gorm.DB, req dto.SaveCityRequest, actorID uint) (*model.City, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveCityRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)

	var out *model.City
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var state model.State
		if err := tx.First(&state, *req.StateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("State not found")
			}
			return err
		}

		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.City{}).
				Where("name = ? AND state_id = ?", name, state.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("City name already taken")
			}
			m := &model.City{Name: name, StateID: state.ID}
			m.CreatedByID = common.ActorPtr(actorID)
			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "City name")
			}
			out, created = m, true
			return nil
		}

		var m model.City
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("City not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.City{}).
			Where("name = ? AND state_id = ? AND id <> ?", name, state.ID, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("City name already taken")
		}
		m.Name = name
		m.StateID = state.ID
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)
		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "City name")
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}
