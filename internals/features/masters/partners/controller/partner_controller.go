package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/service"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

/* ===================== DEALERS ===================== */

type DealerController struct {
	DB      *gorm.DB
	Service *service.PartnerService
}

func NewDealerController(db *gorm.DB, svc *service.PartnerService) *DealerController {
	return &DealerController{DB: db, Service: svc}
}

// GET /dealers
func (h *DealerController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "dealers", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.Dealer{}).Preload("DropDealers")
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ? OR code LIKE ?", "%"+s+"%", "%"+s+"%")
	}
	if v := c.Query("clientId"); v != "" {
		q = q.Where("client_id = ?", v)
	}
	if v := c.Query("cityId"); v != "" {
		q = q.Where("city_id = ?", v)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.Dealer
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// GET /dealers/getFormData
func (h *DealerController) GetFormData(c *fiber.Ctx) error {
	clients, err := common.DropdownOptions(h.DB, "clients", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	states, err := common.DropdownOptions(h.DB, "states", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	cities, err := common.DropdownOptions(h.DB, "cities", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	dealers, err := common.DropdownOptions(h.DB, "dealers", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, fiber.Map{
		"clients": clients,
		"states":  states,
		"cities":  cities,
		"dealers": dealers,
	})
}

// POST /dealers/save
func (h *DealerController) Save(c *fiber.Ctx) error {
	var req dto.SaveDealerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := h.Service.SaveDealer(c.UserContext(), h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "Dealer created successfully", m)
	}
	return helper.JsonMessageData(c, "Dealer updated successfully", m)
}

// PUT /dealers/updateStatus
func (h *DealerController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "dealers", "Dealer")
}

// PUT /dealers/delete
func (h *DealerController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "dealers", "Dealer", func(tx *gorm.DB, ids []uint) error {
		return tx.Exec("DELETE FROM drop_dealers WHERE dealer_id IN ? OR drop_dealer_id IN ?", ids, ids).Error
	})
}

/* ===================== ASPS ===================== */

type AspController struct {
	DB      *gorm.DB
	Service *service.PartnerService
}

func NewAspController(db *gorm.DB, svc *service.PartnerService) *AspController {
	return &AspController{DB: db, Service: svc}
}

// GET /asps
func (h *AspController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "asps", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.Asp{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ? OR code LIKE ?", "%"+s+"%", "%"+s+"%")
	}
	if v := c.Query("cityId"); v != "" {
		q = q.Where("city_id = ?", v)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.Asp
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// GET /asps/getFormData
func (h *AspController) GetFormData(c *fiber.Ctx) error {
	cities, err := common.DropdownOptions(h.DB, "cities", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, fiber.Map{"cities": cities})
}

// POST /asps/save
func (h *AspController) Save(c *fiber.Ctx) error {
	var req dto.SaveAspRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := h.Service.SaveAsp(c.UserContext(), h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "ASP created successfully", m)
	}
	return helper.JsonMessageData(c, "ASP updated successfully", m)
}

// PUT /asps/updateStatus
func (h *AspController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "asps", "ASP")
}

// PUT /asps/delete
func (h *AspController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "asps", "ASP", func(tx *gorm.DB, ids []uint) error {
		var count int64
		if err := tx.Model(&model.AspMechanic{}).Where("asp_id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.Business("ASP has mechanics assigned")
		}
		return nil
	})
}

/* ===================== ASP MECHANICS ===================== */

type AspMechanicController struct {
	DB      *gorm.DB
	Service *service.PartnerService
}

func NewAspMechanicController(db *gorm.DB, svc *service.PartnerService) *AspMechanicController {
	return &AspMechanicController{DB: db, Service: svc}
}

// GET /aspMechanics
func (h *AspMechanicController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "asp_mechanics", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.AspMechanic{}).Preload("SubServices")
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ? OR phone LIKE ?", "%"+s+"%", "%"+s+"%")
	}
	if v := c.Query("aspId"); v != "" {
		q = q.Where("asp_id = ?", v)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.AspMechanic
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// GET /aspMechanics/getFormData
func (h *AspMechanicController) GetFormData(c *fiber.Ctx) error {
	asps, err := common.DropdownOptions(h.DB, "asps", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	cities, err := common.DropdownOptions(h.DB, "cities", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	subServices, err := common.DropdownOptions(h.DB, "sub_services", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, fiber.Map{
		"asps":        asps,
		"cities":      cities,
		"subServices": subServices,
	})
}

// POST /aspMechanics/save
func (h *AspMechanicController) Save(c *fiber.Ctx) error {
	var req dto.SaveAspMechanicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := h.Service.SaveAspMechanic(c.UserContext(), h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "Mechanic created successfully", m)
	}
	return helper.JsonMessageData(c, "Mechanic updated successfully", m)
}

// PUT /aspMechanics/updateStatus
func (h *AspMechanicController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "asp_mechanics", "Mechanic")
}

// PUT /aspMechanics/delete
func (h *AspMechanicController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "asp_mechanics", "Mechanic", func(tx *gorm.DB, ids []uint) error {
		return tx.Exec("DELETE FROM asp_mechanic_sub_services WHERE asp_mechanic_id IN ?", ids).Error
	})
}
