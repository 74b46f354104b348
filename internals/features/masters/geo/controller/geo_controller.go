package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/service"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

/* ===================== STATES ===================== */

type StateController struct {
	DB *gorm.DB
}

func NewStateController(db *gorm.DB) *StateController {
	return &StateController{DB: db}
}

// GET /states
func (h *StateController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "states", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.State{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ?", "%"+s+"%")
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.State
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// POST /states/save
func (h *StateController) Save(c *fiber.Ctx) error {
	var req dto.SaveStateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := service.SaveState(h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "State created successfully", m)
	}
	return helper.JsonMessageData(c, "State updated successfully", m)
}

// PUT /states/updateStatus
func (h *StateController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "states", "State")
}

// PUT /states/delete
func (h *StateController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "states", "State", nil)
}

/* ===================== CITIES ===================== */

type CityController struct {
	DB *gorm.DB
}

func NewCityController(db *gorm.DB) *CityController {
	return &CityController{DB: db}
}

// GET /cities
func (h *CityController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "cities", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.City{}).Preload("State")
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ?", "%"+s+"%")
	}
	if v := c.Query("stateId"); v != "" {
		q = q.Where("state_id = ?", v)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.City
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// GET /cities/getFormData
func (h *CityController) GetFormData(c *fiber.Ctx) error {
	states, err := common.DropdownOptions(h.DB, "states", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, fiber.Map{"states": states})
}

// POST /cities/save
func (h *CityController) Save(c *fiber.Ctx) error {
	var req dto.SaveCityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := service.SaveCity(h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "City created successfully", m)
	}
	return helper.JsonMessageData(c, "City updated successfully", m)
}

// PUT /cities/updateStatus
func (h *CityController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "cities", "City")
}

// PUT /cities/delete
func (h *CityController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "cities", "City", nil)
}

