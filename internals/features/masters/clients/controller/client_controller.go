package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/service"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// GET /clients
func (h *ClientController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "clients", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.Client{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ? OR code LIKE ?", "%"+s+"%", "%"+s+"%")
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.Client
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// POST /clients/save
func (h *ClientController) Save(c *fiber.Ctx) error {
	var req dto.SaveClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := service.SaveClient(h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "Client created successfully", m)
	}
	return helper.JsonMessageData(c, "Client updated successfully", m)
}

// PUT /clients/updateStatus
func (h *ClientController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "clients", "Client")
}

// PUT /clients/delete
func (h *ClientController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "clients", "Client", func(tx *gorm.DB, ids []uint) error {
		// entitlement rows referencing these clients go with them
		return tx.Exec("DELETE FROM sub_service_entitlements WHERE client_id IN ?", ids).Error
	})
}
