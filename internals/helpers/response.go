package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Every business outcome (including "not found" and validation failures)
// answers HTTP 200 with a {success, data|message|error|errors} body.
// 500 is reserved for uncaught errors, which fall through to fiber's
// default error handler.

func JsonData(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

func JsonMessageData(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func JsonValidationErrors(c *fiber.Ctx, errs ValidationErrors) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": false,
		"errors":  errs,
	})
}

// JsonFromError routes a service-layer error to the matching envelope.
func JsonFromError(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case ValidationErrors:
		return JsonValidationErrors(c, e)
	case *BusinessError:
		return JsonError(c, e.Message)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
