package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/controller"
)

func ConfigRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewConfigController(db)
	g := r.Group("/configs")
	g.Get("/", ctl.List)
	g.Get("/getFormData", ctl.GetFormData)
	g.Post("/save", ctl.Save)
	g.Put("/updateStatus", ctl.UpdateStatus)
	g.Put("/delete", ctl.Delete)
}
