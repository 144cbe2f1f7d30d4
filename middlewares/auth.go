// path: middlewares/auth.go
package middlewares

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"civicfix/models"
	"civicfix/store"
)

const localsUserKey = "currentUser"

// UserSource resolves a token subject to a stored account.
type UserSource interface {
	UserByID(ctx context.Context, id string) (models.User, error)
}

// TokenVerifier checks a bearer token and returns the embedded user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Required gates a route: 401 on a missing, malformed, or expired token and
// 404 when the token subject no longer maps to a user.
func Required(users UserSource, tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, status, msg := resolve(c, users, tokens)
		if status != 0 {
			return c.Status(status).JSON(fiber.Map{"ok": false, "error": msg})
		}
		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// Optional resolves a user when a valid token is present; any failure,
// including no token at all, simply leaves the request anonymous.
func Optional(users UserSource, tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, status, _ := resolve(c, users, tokens); status == 0 {
			c.Locals(localsUserKey, user)
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Required/Optional.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(localsUserKey).(models.User)
	return user, ok
}

func resolve(c *fiber.Ctx, users UserSource, tokens TokenVerifier) (models.User, int, string) {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return models.User{}, fiber.StatusUnauthorized, "missing or invalid token"
	}

	userID, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
	if err != nil {
		return models.User{}, fiber.StatusUnauthorized, "could not validate credentials"
	}

	user, err := users.UserByID(c.Context(), userID)
	if err == store.ErrNotFound {
		return models.User{}, fiber.StatusNotFound, "user not found"
	}
	if err != nil {
		return models.User{}, fiber.StatusInternalServerError, err.Error()
	}
	return user, 0, ""
}
