package controller

import (
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/clients/userservice"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/imports/driver"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/imports/service"
	partnerService "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/service"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type ImportController struct {
	DB       *gorm.DB
	Partners *partnerService.PartnerService
}

func NewImportController(db *gorm.DB, users userservice.Client) *ImportController {
	return &ImportController{DB: db, Partners: partnerService.NewPartnerService(users)}
}

type importRequest struct {
	Rows []driver.Row `json:"rows"`
}

// run executes one import batch and answers the summary; when rows failed,
// the annotated error workbook rides along base64-encoded.
func (h *ImportController) run(c *fiber.Ctx, spec driver.Spec) error {
	var req importRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	if len(req.Rows) == 0 {
		return helper.JsonError(c, "No rows to import")
	}

	summary, failed := driver.Run(c.Context(), h.DB, spec, req.Rows, helper.ActorID(c))

	data := fiber.Map{
		"newRecordsCreated":      summary.NewRecordsCreated,
		"existingRecordsUpdated": summary.ExistingRecordsUpdated,
		"failedRecords":          summary.FailedRecords,
	}
	if len(failed) > 0 {
		buf, err := driver.ErrorWorkbook(spec, failed)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		data["errorReport"] = base64.StdEncoding.EncodeToString(buf.Bytes())
		return helper.JsonMessageData(c, "Import completed with errors", data)
	}
	return helper.JsonMessageData(c, "Import completed", data)
}

// POST /dealerImport
func (h *ImportController) Dealers(c *fiber.Ctx) error {
	return h.run(c, service.DealerSpec(h.Partners))
}

// POST /aspImport
func (h *ImportController) Asps(c *fiber.Ctx) error {
	return h.run(c, service.AspSpec(h.Partners))
}

// POST /aspMechanicImport
func (h *ImportController) AspMechanics(c *fiber.Ctx) error {
	return h.run(c, service.AspMechanicSpec(h.Partners))
}

// POST /dispositionImport
func (h *ImportController) Dispositions(c *fiber.Ctx) error {
	return h.run(c, service.DispositionSpec())
}

// POST /caseSubjectImport
func (h *ImportController) CaseSubjects(c *fiber.Ctx) error {
	return h.run(c, service.CaseSubjectSpec())
}
