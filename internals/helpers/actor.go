package helper

import "github.com/gofiber/fiber/v2"

// ActorID returns the acting admin's user id set by the auth middleware.
// Zero when the request is unauthenticated (seeders, tests).
func ActorID(c *fiber.Ctx) uint {
	if v, ok := c.Locals("user_id").(uint); ok {
		return v
	}
	return 0
}
