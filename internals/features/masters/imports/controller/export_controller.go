package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/imports/service"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

type tableBuilder func(db *gorm.DB, r service.DateRange) (*service.ExportTable, error)

// send renders one export as csv or xlsx (default) per the format query.
func (h *ExportController) send(c *fiber.Ctx, filename string, build tableBuilder) error {
	r, err := service.ParseDateRange(c.Query("fromDate"), c.Query("toDate"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	t, err := build(h.DB, r)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	if c.Query("format") == "csv" {
		buf, err := service.WriteCSV(t)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`.csv"`)
		return c.Send(buf.Bytes())
	}

	buf, err := service.WriteXLSX(t)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`.xlsx"`)
	return c.Send(buf.Bytes())
}

// GET /dealerExport
func (h *ExportController) Dealers(c *fiber.Ctx) error {
	return h.send(c, "dealers", service.DealerExport)
}

// GET /aspExport
func (h *ExportController) Asps(c *fiber.Ctx) error {
	return h.send(c, "asps", service.AspExport)
}

// GET /aspMechanicExport
func (h *ExportController) AspMechanics(c *fiber.Ctx) error {
	return h.send(c, "asp_mechanics", service.AspMechanicExport)
}

// GET /dispositionExport
func (h *ExportController) Dispositions(c *fiber.Ctx) error {
	return h.send(c, "dispositions", service.DispositionExport)
}

// GET /caseSubjectExport
func (h *ExportController) CaseSubjects(c *fiber.Ctx) error {
	return h.send(c, "case_subjects", service.CaseSubjectExport)
}
