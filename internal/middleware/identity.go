package middleware

import (
	"log"

	"pinpost/internal/apperrors"
	"pinpost/internal/auth"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// Identity is the guard on every protected route: it resolves the request's
// identity claim and binds the resulting username to the request context.
// Absent or unknown claims are rejected with 401 before any handler runs.
func Identity(resolver auth.PrincipalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := resolver.Resolve(c)
		if err != nil {
			status := apperrors.StatusCode(err)
			if status == fiber.StatusInternalServerError {
				log.Printf("Principal resolution failed: %v", err)
				return c.Status(status).JSON(fiber.Map{"error": "Internal server error"})
			}
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(principalKey, name)
		return c.Next()
	}
}

// Principal returns the acting username bound by Identity.
func Principal(c *fiber.Ctx) string {
	name, _ := c.Locals(principalKey).(string)
	return name
}
