package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"eduvibe/backend/store"
)

// Success writes a JSON envelope with the success flag set. The payload's
// fields are merged into the envelope top level.
func Success(c *fiber.Ctx, status int, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// Fail writes an error envelope with the given status and user-facing message.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// FailStore maps a store error to its HTTP status, using message for the
// expected domain errors. Unknown errors become a generic 500 so internals
// never leak to the caller.
func FailStore(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrNotEnrolled):
		return Fail(c, fiber.StatusNotFound, message)
	case errors.Is(err, store.ErrConflict):
		return Fail(c, fiber.StatusConflict, message)
	default:
		return Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}
}
