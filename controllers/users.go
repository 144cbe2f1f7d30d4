// path: controllers/users.go
package controllers

import (
	"github.com/gofiber/fiber/v2"

	"civicfix/middlewares"
	"civicfix/models"
)

// UserController exposes the admin-only user directory.
type UserController struct {
	Users UserStore
}

// List returns up to 100 users, optionally filtered by role. Password hashes
// never appear in the response.
func (uc *UserController) List(c *fiber.Ctx) error {
	actor, ok := middlewares.CurrentUser(c)
	if !ok || actor.Role != models.RoleAdmin {
		return forbidden(c, "Not authorized")
	}

	users, err := uc.Users.ListUsers(c.Context(), c.Query("role"), listCap)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(users)
}
