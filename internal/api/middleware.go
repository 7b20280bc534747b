package api

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// AdminAuthMiddleware gates the admin mutation routes behind a shared
// secret carried in the X-Admin-Secret header. With no secret
// configured the check is disabled, which keeps local development and
// the public read endpoints working.
func AdminAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}

		provided := c.Get("X-Admin-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access denied"})
		}

		return c.Next()
	}
}
