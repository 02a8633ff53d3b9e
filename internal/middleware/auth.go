package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/innatural/internal/utils"
)

const adminContextKey = "adminSubject"

// AdminOnly validates a bearer JWT carrying the admin role.
func AdminOnly(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		subject, role, err := utils.ParseToken(secret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		if role != utils.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin role required")
		}

		c.Locals(adminContextKey, subject)
		return c.Next()
	}
}

// GetAdminSubject returns the subject of the authenticated admin token.
func GetAdminSubject(c *fiber.Ctx) (string, bool) {
	subject, ok := c.Locals(adminContextKey).(string)
	return subject, ok && subject != ""
}
