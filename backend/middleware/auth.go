package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"eduvibe/backend/config"
	"eduvibe/backend/utils"
)

// AuthRequired guards a route behind a bearer credential. On success the
// resolved identity is stored in c.Locals("userId") and c.Locals("role") for
// downstream handlers.
func AuthRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.Fail(c, fiber.StatusUnauthorized,
				"Access denied. No token provided. Attach: Authorization: Bearer <token>")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, role, err := utils.ParseToken(tokenString, cfg)
		if err != nil {
			return utils.Fail(c, fiber.StatusUnauthorized,
				"Invalid or expired token. Please log in again.")
		}

		c.Locals("userId", userID)
		c.Locals("role", role)
		return c.Next()
	}
}
