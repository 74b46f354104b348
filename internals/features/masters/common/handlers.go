package common

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// HandleUpdateStatus runs the bulk status toggle endpoint for one master
// table: validate, toggle inside one transaction, uniform envelope.
func HandleUpdateStatus(db *gorm.DB, c *fiber.Ctx, table, entity string) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	if errs := helper.ValidateStruct(req, UpdateStatusRules); errs != nil {
		return helper.JsonValidationErrors(c, errs)
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return BulkUpdateStatus(tx, table, entity, req.IDs, *req.Status, helper.ActorID(c))
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonMessage(c, entity+" status updated successfully")
}

// HandleBulkDelete runs the bulk hard-delete endpoint. cleanup runs inside
// the same transaction before the owning rows go, for association tables.
func HandleBulkDelete(db *gorm.DB, c *fiber.Ctx, table, entity string, cleanup func(tx *gorm.DB, ids []uint) error) error {
	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, "Invalid payload")
	}
	if errs := helper.ValidateStruct(req, DeleteRules); errs != nil {
		return helper.JsonValidationErrors(c, errs)
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if cleanup != nil {
			if err := cleanup(tx, req.IDs); err != nil {
				return err
			}
		}
		return BulkHardDelete(tx, table, entity, req.IDs)
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonMessage(c, entity+" deleted successfully")
}
