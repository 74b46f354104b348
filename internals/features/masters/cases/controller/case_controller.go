package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/service"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/common"
	configService "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/service"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

/* ===================== DISPOSITIONS ===================== */

type DispositionController struct {
	DB *gorm.DB
}

func NewDispositionController(db *gorm.DB) *DispositionController {
	return &DispositionController{DB: db}
}

// GET /dispositions
func (h *DispositionController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "dispositions", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.Disposition{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ?", "%"+s+"%")
	}
	if v := c.Query("typeId"); v != "" {
		q = q.Where("type_id = ?", v)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.Disposition
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// GET /dispositions/getFormData
func (h *DispositionController) GetFormData(c *fiber.Ctx) error {
	types, err := configService.CategoryOptions(h.DB, constants.ConfigTypeDispositionType)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, fiber.Map{"dispositionTypes": types})
}

// POST /dispositions/save
func (h *DispositionController) Save(c *fiber.Ctx) error {
	var req dto.SaveDispositionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := service.SaveDisposition(h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "Disposition created successfully", m)
	}
	return helper.JsonMessageData(c, "Disposition updated successfully", m)
}

// PUT /dispositions/updateStatus
func (h *DispositionController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "dispositions", "Disposition")
}

// PUT /dispositions/delete
func (h *DispositionController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "dispositions", "Disposition", nil)
}

/* ===================== ACTIVITY STATUSES ===================== */

type ActivityStatusController struct {
	DB *gorm.DB
}

func NewActivityStatusController(db *gorm.DB) *ActivityStatusController {
	return &ActivityStatusController{DB: db}
}

// GET /activityStatuses
func (h *ActivityStatusController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "activity_statuses", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.ActivityStatus{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ?", "%"+s+"%")
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.ActivityStatus
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// POST /activityStatuses/save
func (h *ActivityStatusController) Save(c *fiber.Ctx) error {
	var req dto.SaveActivityStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := service.SaveActivityStatus(h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "Activity status created successfully", m)
	}
	return helper.JsonMessageData(c, "Activity status updated successfully", m)
}

// PUT /activityStatuses/updateStatus
func (h *ActivityStatusController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "activity_statuses", "Activity status")
}

// PUT /activityStatuses/delete
func (h *ActivityStatusController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "activity_statuses", "Activity status", nil)
}

/* ===================== CASE SUBJECTS ===================== */

type CaseSubjectController struct {
	DB *gorm.DB
}

func NewCaseSubjectController(db *gorm.DB) *CaseSubjectController {
	return &CaseSubjectController{DB: db}
}

// GET /caseSubjects
func (h *CaseSubjectController) List(c *fiber.Ctx) error {
	if helper.IsDropdown(c) {
		opts, err := common.DropdownOptions(h.DB, "case_subjects", c.Query("search"))
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonData(c, opts)
	}

	p := helper.ResolvePaging(c)
	q := h.DB.Model(&model.CaseSubject{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("name LIKE ?", "%"+s+"%")
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	var rows []model.CaseSubject
	if err := q.Order("id desc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, helper.ListResult{Count: count, Rows: rows})
}

// GET /caseSubjects/getFormData
func (h *CaseSubjectController) GetFormData(c *fiber.Ctx) error {
	dispositions, err := common.DropdownOptions(h.DB, "dispositions", "")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, fiber.Map{"dispositions": dispositions})
}

// POST /caseSubjects/save
func (h *CaseSubjectController) Save(c *fiber.Ctx) error {
	var req dto.SaveCaseSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	m, created, err := service.SaveCaseSubject(h.DB, req, helper.ActorID(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if created {
		return helper.JsonMessageData(c, "Case subject created successfully", m)
	}
	return helper.JsonMessageData(c, "Case subject updated successfully", m)
}

// PUT /caseSubjects/updateStatus
func (h *CaseSubjectController) UpdateStatus(c *fiber.Ctx) error {
	return common.HandleUpdateStatus(h.DB, c, "case_subjects", "Case subject")
}

// PUT /caseSubjects/delete
func (h *CaseSubjectController) Delete(c *fiber.Ctx) error {
	return common.HandleBulkDelete(h.DB, c, "case_subjects", "Case subject", nil)
}
