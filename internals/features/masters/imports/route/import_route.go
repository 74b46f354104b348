package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/clients/userservice"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/imports/controller"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/middlewares"
)

func ImportExportRoutes(r fiber.Router, db *gorm.DB, users userservice.Client) {
	imp := controller.NewImportController(db, users)
	exp := controller.NewExportController(db)

	rate := middlewares.ImportRateLimiter()
	r.Post("/dealerImport", rate, imp.Dealers)
	r.Post("/aspImport", rate, imp.Asps)
	r.Post("/aspMechanicImport", rate, imp.AspMechanics)
	r.Post("/dispositionImport", rate, imp.Dispositions)
	r.Post("/caseSubjectImport", rate, imp.CaseSubjects)

	r.Get("/dealerExport", exp.Dealers)
	r.Get("/aspExport", exp.Asps)
	r.Get("/aspMechanicExport", exp.AspMechanics)
	r.Get("/dispositionExport", exp.Dispositions)
	r.Get("/caseSubjectExport", exp.CaseSubjects)
}
