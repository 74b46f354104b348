package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/details/dto"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/details/service"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

type DetailsController struct {
	DB *gorm.DB
}

func NewDetailsController(db *gorm.DB) *DetailsController {
	return &DetailsController{DB: db}
}

// POST /masterDetails
func (h *DetailsController) MasterDetails(c *fiber.Ctx) error {
	var req dto.MasterDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	out, err := service.MasterDetails(c.Context(), h.DB, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonData(c, out)
}
