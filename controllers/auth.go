// path: controllers/auth.go
package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"civicfix/auth"
	"civicfix/middlewares"
	"civicfix/models"
	"civicfix/store"
)

// AuthController handles signup, login, and the current-user profile.
type AuthController struct {
	Users  UserStore
	Tokens *auth.TokenIssuer
}

// Signup creates an account and returns a bearer token for it.
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var p models.SignupPayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if p.Name == "" || p.Email == "" || p.Password == "" {
		return badReq(c, "name, email and password are required")
	}
	if p.Role == "" {
		p.Role = models.RoleCitizen
	}

	// Exact, case-sensitive match on the stored email.
	if _, _, err := ac.Users.UserByEmail(c.Context(), p.Email); err == nil {
		return conflict(c, "Email already registered")
	} else if err != store.ErrNotFound {
		return serverErr(c, err)
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return serverErr(c, err)
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Role:      p.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := ac.Users.CreateUser(c.Context(), user, hash); err != nil {
		if err == store.ErrDuplicateEmail {
			return conflict(c, "Email already registered")
		}
		return serverErr(c, err)
	}

	token, err := ac.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var p models.LoginPayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}

	user, hash, err := ac.Users.UserByEmail(c.Context(), strings.TrimSpace(p.Email))
	if err == store.ErrNotFound {
		return unauthorized(c, "Invalid email or password")
	}
	if err != nil {
		return serverErr(c, err)
	}
	if !auth.VerifyPassword(p.Password, hash) {
		return unauthorized(c, "Invalid email or password")
	}

	token, err := ac.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the profile of the authenticated caller.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return unauthorized(c, "could not validate credentials")
	}
	return c.JSON(user)
}
