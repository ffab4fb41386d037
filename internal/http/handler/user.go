package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"licadmin/internal/service"
)

// CreateUser adds a new account. The password is bcrypt-hashed by the
// service and never echoed back.
//
// @Summary Create a user
// @Tags user
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param email formData string true "Email address"
// @Param role formData string false "Role (admin or user)"
// @Success 201 {object} model.User
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/user [post]
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := service.UserData{
			Username: param(c, "username"),
			Password: param(c, "password"),
			Email:    param(c, "email"),
			Role:     param(c, "role"),
		}
		user, err := svc.Create(c.UserContext(), data)
		if err != nil {
			return writeDomainError(c, "SAVE_FAILED", "failed to create user", err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// ListUsers returns every account. Password hashes never appear in the
// payload; the model hides them from JSON.
//
// @Summary List users
// @Tags user
// @Produce json
// @Success 200 {array} model.User
// @Security BearerAuth
// @Router /settings/user [get]
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.GetAll(c.UserContext())
		if err != nil {
			return writeDomainError(c, "LIST_FAILED", "failed to list users", err)
		}
		return c.JSON(users)
	}
}

// UpdateUser rewrites an account. An empty password keeps the stored hash.
//
// @Summary Update a user
// @Tags user
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData int true "User id"
// @Param username formData string true "Username"
// @Param email formData string true "Email address"
// @Param role formData string false "Role (admin or user)"
// @Param password formData string false "New password"
// @Success 200 {object} model.User
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/user [put]
func UpdateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramInt64(c, "id")
		if err != nil {
			return writeDomainError(c, "INVALID_ID", "failed to update user", err)
		}
		data := service.UserData{
			ID:       id,
			Username: param(c, "username"),
			Password: param(c, "password"),
			Email:    param(c, "email"),
			Role:     param(c, "role"),
		}
		user, err := svc.Update(c.UserContext(), data)
		if err != nil {
			return writeDomainError(c, "UPDATE_FAILED", "failed to update user", err)
		}
		return c.JSON(user)
	}
}

// DeleteUser removes an account by id.
//
// @Summary Delete a user
// @Tags user
// @Produce json
// @Param id query int true "User id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} handler.errorPayload
// @Security BearerAuth
// @Router /settings/user [delete]
func DeleteUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramInt64(c, "id")
		if err != nil {
			return writeDomainError(c, "INVALID_ID", "failed to delete user", err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeDomainError(c, "DELETE_FAILED", "failed to delete user", err)
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("user with id %d deleted", id)})
	}
}
