package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"licadmin/internal/service"
)

// Login checks credentials and issues a bearer token for the admin API.
//
// @Summary Log in
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Account username"
// @Param password formData string true "Account password"
// @Success 200 {object} service.LoginResult
// @Failure 401 {object} handler.errorPayload
// @Router /auth/login [post]
func Login(userSvc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := param(c, "username")
		password := param(c, "password")

		res, err := userSvc.Authenticate(c.UserContext(), username, password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
