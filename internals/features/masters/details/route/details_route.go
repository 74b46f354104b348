package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/details/controller"
)

func DetailsRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDetailsController(db)
	r.Post("/masterDetails", ctl.MasterDetails)
}
