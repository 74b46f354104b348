package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/controller"
)

func ServiceRoutes(r fiber.Router, db *gorm.DB) {
	svcCtl := controller.NewServiceController(db)
	services := r.Group("/services")
	services.Get("/", svcCtl.List)
	services.Post("/save", svcCtl.Save)
	services.Put("/updateStatus", svcCtl.UpdateStatus)
	services.Put("/delete", svcCtl.Delete)

	subCtl := controller.NewSubServiceController(db)
	subs := r.Group("/subServices")
	subs.Get("/", subCtl.List)
	subs.Get("/getFormData", subCtl.GetFormData)
	subs.Post("/save", subCtl.Save)
	subs.Put("/updateStatus", subCtl.UpdateStatus)
	subs.Put("/delete", subCtl.Delete)
}
