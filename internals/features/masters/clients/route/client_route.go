package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/controller"
)

func ClientRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClientController(db)
	g := r.Group("/clients")
	g.Get("/", ctl.List)
	g.Post("/save", ctl.Save)
	g.Put("/updateStatus", ctl.UpdateStatus)
	g.Put("/delete", ctl.Delete)
}
