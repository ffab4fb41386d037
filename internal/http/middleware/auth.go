package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"licadmin/internal/auth"
	"licadmin/internal/model"
)

const (
	// UserIDLocalKey holds the authenticated user's id in context locals.
	UserIDLocalKey = "user_id"
	// UserRoleLocalKey holds the authenticated user's role in context locals.
	UserRoleLocalKey = "user_role"
)

// Protected validates the Authorization bearer token and stores the caller's
// identity in context locals for downstream handlers.
func Protected(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authorization header required",
			})
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid authorization header format",
			})
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}
		userID, err := claims.UserID()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid subject in token",
			})
		}

		c.Locals(UserIDLocalKey, userID)
		c.Locals(UserRoleLocalKey, claims.Role)
		return c.Next()
	}
}

// AdminOnly allows the request through only when Protected stored the admin
// role for the caller.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(UserRoleLocalKey).(string)
		if role != model.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "administrator role required",
			})
		}
		return c.Next()
	}
}
