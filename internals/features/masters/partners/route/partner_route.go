package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/clients/userservice"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/controller"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/service"
)

func PartnerRoutes(r fiber.Router, db *gorm.DB, users userservice.Client) {
	svc := service.NewPartnerService(users)

	dealerCtl := controller.NewDealerController(db, svc)
	dealers := r.Group("/dealers")
	dealers.Get("/", dealerCtl.List)
	dealers.Get("/getFormData", dealerCtl.GetFormData)
	dealers.Post("/save", dealerCtl.Save)
	dealers.Put("/updateStatus", dealerCtl.UpdateStatus)
	dealers.Put("/delete", dealerCtl.Delete)

	aspCtl := controller.NewAspController(db, svc)
	asps := r.Group("/asps")
	asps.Get("/", aspCtl.List)
	asps.Get("/getFormData", aspCtl.GetFormData)
	asps.Post("/save", aspCtl.Save)
	asps.Put("/updateStatus", aspCtl.UpdateStatus)
	asps.Put("/delete", aspCtl.Delete)

	mechCtl := controller.NewAspMechanicController(db, svc)
	mechs := r.Group("/aspMechanics")
	mechs.Get("/", mechCtl.List)
	mechs.Get("/getFormData", mechCtl.GetFormData)
	mechs.Post("/save", mechCtl.Save)
	mechs.Put("/updateStatus", mechCtl.UpdateStatus)
	mechs.Put("/delete", mechCtl.Delete)
}
