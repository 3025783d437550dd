package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/purchasing/store"
)

// OpDebugMiddleware injects recent store operation logs into each request
// context. Locals must be set before the handler runs, since templates are
// rendered inside the handler.
func OpDebugMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		recent := store.Ops.GetRecentOps(10)
		c.Locals("StoreOps", recent)
		c.Locals("TotalStoreOps", len(recent))

		return c.Next()
	}
}
