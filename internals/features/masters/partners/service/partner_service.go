package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/clients/userservice"
	clientModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	geoModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/model"
	svcModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/model"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// PartnerService saves dealers, ASPs and mechanics. Each of them owns a
// login identity in the external user service; the downstream call runs
// inside the database transaction so a failed call rolls everything back.
type PartnerService struct {
	Users userservice.Client
}

func NewPartnerService(users userservice.Client) *PartnerService {
	return &PartnerService{Users: users}
}

/* ===================== DEALER ===================== */

func (s *PartnerService) SaveDealer(ctx context.Context, db *gorm.DB, req dto.SaveDealerRequest, actorID uint) (*model.Dealer, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveDealerRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)

	var out *model.Dealer
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkDealerRefs(tx, req); err != nil {
			return err
		}

		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.Dealer{}).Where("code = ?", code).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("Dealer code already taken")
			}
			m := &model.Dealer{
				Name:     name,
				Code:     code,
				GSTIN:    req.GSTIN,
				Email:    strings.TrimSpace(req.Email),
				Phone:    strings.TrimSpace(req.Phone),
				Address:  req.Address,
				ClientID: *req.ClientID,
				StateID:  *req.StateID,
				CityID:   *req.CityID,
			}
			m.CreatedByID = common.ActorPtr(actorID)

			user, err := s.Users.CreateUser(ctx, userservice.CreateUserInput{
				Name: name, Email: m.Email, Phone: m.Phone, Role: "dealer",
			})
			if err != nil {
				return err
			}
			m.UserID = &user.ID

			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "Dealer code")
			}
			if err := replaceDropDealers(tx, m.ID, req.DropDealerIDs); err != nil {
				return err
			}
			out, created = m, true
			return nil
		}

		var m model.Dealer
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Dealer not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.Dealer{}).Where("code = ? AND id <> ?", code, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("Dealer code already taken")
		}
		m.Name = name
		m.Code = code
		m.GSTIN = req.GSTIN
		m.Email = strings.TrimSpace(req.Email)
		m.Phone = strings.TrimSpace(req.Phone)
		m.Address = req.Address
		m.ClientID = *req.ClientID
		m.StateID = *req.StateID
		m.CityID = *req.CityID
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)

		if m.UserID != nil {
			if _, err := s.Users.UpdateUser(ctx, *m.UserID, userservice.UpdateUserInput{
				Name: name, Email: m.Email, Phone: m.Phone,
			}); err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "Dealer code")
		}
		if err := replaceDropDealers(tx, m.ID, req.DropDealerIDs); err != nil {
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

func (s *PartnerService) checkDealerRefs(tx *gorm.DB, req dto.SaveDealerRequest) error {
	var client clientModel.Client
	if err := tx.First(&client, *req.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Business("Client not found")
		}
		return err
	}
	var state geoModel.State
	if err := tx.First(&state, *req.StateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Business("State not found")
		}
		return err
	}
	var city geoModel.City
	if err := tx.Where("id = ? AND state_id = ?", *req.CityID, *req.StateID).First(&city).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Business("City not found")
		}
		return err
	}
	if len(req.DropDealerIDs) > 0 {
		var count int64
		if err := tx.Model(&model.Dealer{}).Where("id IN ?", req.DropDealerIDs).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(req.DropDealerIDs)) {
			return helper.Business("Drop dealer not found")
		}
	}
	return nil
}

func replaceDropDealers(tx *gorm.DB, dealerID uint, dropIDs []uint) error {
	if err := tx.Where("dealer_id = ?", dealerID).Delete(&model.DropDealer{}).Error; err != nil {
		return err
	}
	for _, id := range dropIDs {
		if id == dealerID {
			continue // a dealer is never its own drop location
		}
		if err := tx.Create(&model.DropDealer{DealerID: dealerID, DropDealerID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}

/* ===================== ASP ===================== */

func (s *PartnerService) SaveAsp(ctx context.Context, db *gorm.DB, req dto.SaveAspRequest, actorID uint) (*model.Asp, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveAspRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)

	var out *model.Asp
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var city geoModel.City
		if err := tx.First(&city, *req.CityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("City not found")
			}
			return err
		}

		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.Asp{}).Where("code = ?", code).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("ASP code already taken")
			}
			m := &model.Asp{
				Name:   name,
				Code:   code,
				Email:  strings.TrimSpace(req.Email),
				Phone:  strings.TrimSpace(req.Phone),
				CityID: city.ID,
			}
			m.CreatedByID = common.ActorPtr(actorID)

			user, err := s.Users.CreateUser(ctx, userservice.CreateUserInput{
				Name: name, Email: m.Email, Phone: m.Phone, Role: "asp",
			})
			if err != nil {
				return err
			}
			m.UserID = &user.ID

			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "ASP code")
			}
			out, created = m, true
			return nil
		}

		var m model.Asp
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("ASP not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.Asp{}).Where("code = ? AND id <> ?", code, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("ASP code already taken")
		}
		m.Name = name
		m.Code = code
		m.Email = strings.TrimSpace(req.Email)
		m.Phone = strings.TrimSpace(req.Phone)
		m.CityID = city.ID
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)

		if m.UserID != nil {
			if _, err := s.Users.UpdateUser(ctx, *m.UserID, userservice.UpdateUserInput{
				Name: name, Email: m.Email, Phone: m.Phone,
			}); err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "ASP code")
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

/* ===================== ASP MECHANIC ===================== */

func (s *PartnerService) SaveAspMechanic(ctx context.Context, db *gorm.DB, req dto.SaveAspMechanicRequest, actorID uint) (*model.AspMechanic, bool, error) {
	if errs := helper.ValidateStruct(req, dto.SaveAspMechanicRules); errs != nil {
		return nil, false, errs
	}
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)

	var out *model.AspMechanic
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var asp model.Asp
		if err := tx.First(&asp, *req.AspID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("ASP not found")
			}
			return err
		}
		var city geoModel.City
		if err := tx.First(&city, *req.CityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("City not found")
			}
			return err
		}
		if len(req.SubServiceIDs) > 0 {
			var count int64
			if err := tx.Model(&svcModel.SubService{}).Where("id IN ?", req.SubServiceIDs).Count(&count).Error; err != nil {
				return err
			}
			if count != int64(len(req.SubServiceIDs)) {
				return helper.Business("Sub service not found")
			}
		}

		if req.ID == nil {
			var count int64
			if err := tx.Unscoped().Model(&model.AspMechanic{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return helper.Business("Mechanic phone already taken")
			}
			m := &model.AspMechanic{
				Name:   name,
				Phone:  phone,
				AspID:  asp.ID,
				CityID: city.ID,
			}
			m.CreatedByID = common.ActorPtr(actorID)

			user, err := s.Users.CreateUser(ctx, userservice.CreateUserInput{
				Name: name, Phone: phone, Role: "mechanic",
			})
			if err != nil {
				return err
			}
			m.UserID = &user.ID

			if err := tx.Create(m).Error; err != nil {
				return common.TranslateDBError(err, "Mechanic phone")
			}
			if err := replaceMechanicSubServices(tx, m.ID, req.SubServiceIDs); err != nil {
				return err
			}
			out, created = m, true
			return nil
		}

		var m model.AspMechanic
		if err := tx.Unscoped().First(&m, *req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Business("Mechanic not found")
			}
			return err
		}
		var count int64
		if err := tx.Unscoped().Model(&model.AspMechanic{}).Where("phone = ? AND id <> ?", phone, m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("Mechanic phone already taken")
		}
		m.Name = name
		m.Phone = phone
		m.AspID = asp.ID
		m.CityID = city.ID
		m.UpdatedByID = common.ActorPtr(actorID)
		common.ApplyStatus(&m.Audit, req.Status, actorID)

		if m.UserID != nil {
			if _, err := s.Users.UpdateUser(ctx, *m.UserID, userservice.UpdateUserInput{
				Name: name, Phone: phone,
			}); err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Save(&m).Error; err != nil {
			return common.TranslateDBError(err, "Mechanic phone")
		}
		if err := replaceMechanicSubServices(tx, m.ID, req.SubServiceIDs); err != nil {
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

func replaceMechanicSubServices(tx *gorm.DB, mechanicID uint, subServiceIDs []uint) error {
	if err := tx.Where("asp_mechanic_id = ?", mechanicID).Delete(&model.AspMechanicSubService{}).Error; err != nil {
		return err
	}
	for _, id := range subServiceIDs {
		if err := tx.Create(&model.AspMechanicSubService{AspMechanicID: mechanicID, SubServiceID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}
