package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/controller"
)

func GeoRoutes(r fiber.Router, db *gorm.DB) {
	stateCtl := controller.NewStateController(db)
	states := r.Group("/states")
	states.Get("/", stateCtl.List)
	states.Post("/save", stateCtl.Save)
	states.Put("/updateStatus", stateCtl.UpdateStatus)
	states.Put("/delete", stateCtl.Delete)

	cityCtl := controller.NewCityController(db)
	cities := r.Group("/cities")
	cities.Get("/", cityCtl.List)
	cities.Get("/getFormData", cityCtl.GetFormData)
	cities.Post("/save", cityCtl.Save)
	cities.Put("/updateStatus", cityCtl.UpdateStatus)
	cities.Put("/delete", cityCtl.Delete)
}
