package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/service"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

/* ===================== SERVICES ===================== */

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// GET /services
func (h *ServiceController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "services", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.Service{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ?", "%"+s+"%")
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.Service
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// POST /services/save
func (h *ServiceController) Save(c *fiber.Ctx) error {
	var req dto.SaveServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := service.SaveService(h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "Service created successfully", m)
	}
	return helper.JsonMessageData(c, "Service updated successfully", m)
}

// PUT /services/updateStatus
func (h *ServiceController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "services", "Service")
}

// PUT /services/delete
func (h *ServiceController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "services", "Service", nil)
}

/* ===================== SUB SERVICES ===================== */

type SubServiceController struct {
	DB *gorm.DB
}

func NewSubServiceController(db *gorm.DB) *SubServiceController {
	return &SubServiceController{DB: db}
}

// GET /subServices
func (h *SubServiceController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "sub_services", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.SubService{}).Preload("Service").Preload("Entitlements")
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ?", "%"+s+"%")
	}
	if v := c.Query("serviceId"); v != "" {
		q = q.Where("service_id = ?", v)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.SubService
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// GET /subServices/getFormData
func (h *SubServiceController) GetFormData(c *fiber.Ctx) error {
	services, err := common.DropdownOptions(h.DB, "services", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	clients, err := common.DropdownOptions(h.DB, "clients", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, fiber.Map{"services": services, "clients": clients})
}

// POST /subServices/save
func (h *SubServiceController) Save(c *fiber.Ctx) error {
	var req dto.SaveSubServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := service.SaveSubService(h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "Sub service created successfully", m)
	}
	return helper.JsonMessageData(c, "Sub service updated successfully", m)
}

// PUT /subServices/updateStatus
func (h *SubServiceController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "sub_services", "Sub service")
}

// PUT /subServices/delete
func (h *SubServiceController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "sub_services", "Sub service", func(tx *gorm.DB, ids []uint) error {
		if err := tx.Exec("DELETE FROM sub_service_entitlements WHERE sub_service_id IN ?", ids).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM asp_mechanic_sub_services WHERE sub_service_id IN ?", ids).Error
	})
}
