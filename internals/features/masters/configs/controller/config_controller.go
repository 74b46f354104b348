package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/service"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type ConfigController struct {
	DB *gorm.DB
}

func NewConfigController(db *gorm.DB) *ConfigController {
	return &ConfigController{DB: db}
}

// GET /configs?typeId=
func (h *ConfigController) List(c *fiber.Ctx) error {
	typeID, _ := strconv.Atoi(c.Query("typeId"))

	if helper.IsDropdown(c) {
		if typeID == 0 {
			return helper.JsonError(c, "typeId is required for dropdown")
		}
		opts, err := service.CategoryOptions(h.DB, uint(typeID))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.Config{})
	if typeID != 0 {
		q = q.Where("config_type_id = ?", typeID)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ?", "%"+s+"%")
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.Config
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// GET /configs/getFormData
func (h *ConfigController) GetFormData(c *fiber.Ctx) error {
	types := make([]fiber.Map, 0, len(constants.ConfigTypeNames))
	for id, name := range constants.ConfigTypeNames {
		types = append(types, fiber.Map{"id": id, "name": name})
	}
	return helper.JsonData(c, fiber.Map{"configTypes": types})
}

// POST /configs/save
func (h *ConfigController) Save(c *fiber.Ctx) error {
	var req dto.SaveConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := service.SaveConfig(h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "Config created successfully", m)
	}
	return helper.JsonMessageData(c, "Config updated successfully", m)
}

// PUT /configs/updateStatus
func (h *ConfigController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "configs", "Config")
}

// PUT /configs/delete
func (h *ConfigController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "configs", "Config", nil)
}
