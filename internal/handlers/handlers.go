// Package handlers wires the HTTP surface. Handlers parse and validate
// request bodies, delegate to the services, and map errors to status codes
// in exactly one place.
package handlers

import (
	"errors"
	"log"

	"pinpost/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// respondError translates an error into the structured {"error": message}
// body. Domain errors carry their own status; anything else is an internal
// failure that is logged and reported generically.
func respondError(c *fiber.Ctx, err error) error {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return c.Status(apperrors.StatusCode(domainErr)).JSON(fiber.Map{
			"error": domainErr.Message,
		})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
