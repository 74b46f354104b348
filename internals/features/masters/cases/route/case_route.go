package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/controller"
)

func CaseRoutes(r fiber.Router, db *gorm.DB) {
	dispCtl := controller.NewDispositionController(db)
	disps := r.Group("/dispositions")
	disps.Get("/", dispCtl.List)
	disps.Get("/getFormData", dispCtl.GetFormData)
	disps.Post("/save", dispCtl.Save)
	disps.Put("/updateStatus", dispCtl.UpdateStatus)
	disps.Put("/delete", dispCtl.Delete)

	actCtl := controller.NewActivityStatusController(db)
	acts := r.Group("/activityStatuses")
	acts.Get("/", actCtl.List)
	acts.Post("/save", actCtl.Save)
	acts.Put("/updateStatus", actCtl.UpdateStatus)
	acts.Put("/delete", actCtl.Delete)

	subjCtl := controller.NewCaseSubjectController(db)
	subjects := r.Group("/caseSubjects")
	subjects.Get("/", subjCtl.List)
	subjects.Get("/getFormData", subjCtl.GetFormData)
	subjects.Post("/save", subjCtl.Save)
	subjects.Put("/updateStatus", subjCtl.UpdateStatus)
	subjects.Put("/delete", subjCtl.Delete)
}
