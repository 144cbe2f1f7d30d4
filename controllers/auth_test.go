// path: controllers/auth_test.go
package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"civicfix/auth"
	"civicfix/middlewares"
	"civicfix/models"
	"civicfix/store"
)

func jsonReq(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, into))
}

func authApp(users UserStore, tokens *auth.TokenIssuer) *fiber.App {
	ac := &AuthController{Users: users, Tokens: tokens}
	app := fiber.New()
	app.Post("/api/auth/signup", ac.Signup)
	app.Post("/api/auth/login", ac.Login)
	app.Get("/api/auth/me", middlewares.Required(users.(middlewares.UserSource), tokens), ac.Me)
	return app
}

func TestSignupIssuesUsableToken(t *testing.T) {
	users := new(MockUserStore)
	tokens := auth.NewTokenIssuer("test-secret")
	app := authApp(users, tokens)

	users.On("UserByEmail", mock.Anything, "jane@example.com").
		Return(models.User{}, "", store.ErrNotFound).Once()

	var created models.User
	users.On("CreateUser", mock.Anything, mock.AnythingOfType("models.User"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(models.User)
			hash := args.String(2)
			assert.True(t, auth.VerifyPassword("s3cret", hash), "stored hash verifies the password")
		}).
		Return(nil).Once()

	resp, err := app.Test(jsonReq(t, "POST", "/api/auth/signup", models.SignupPayload{
		Name: "Jane", Email: "jane@example.com", Password: "s3cret",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tok models.TokenResponse
	decodeJSON(t, resp, &tok)
	assert.Equal(t, "bearer", tok.TokenType)

	subject, err := tokens.Verify(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, subject, "token subject is the new user's id")
	assert.Equal(t, models.RoleCitizen, created.Role, "role defaults to citizen")
	users.AssertExpectations(t)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	users := new(MockUserStore)
	app := authApp(users, auth.NewTokenIssuer("test-secret"))

	users.On("UserByEmail", mock.Anything, "jane@example.com").
		Return(models.User{ID: "u1", Email: "jane@example.com"}, "hash", nil).Once()

	resp, err := app.Test(jsonReq(t, "POST", "/api/auth/signup", models.SignupPayload{
		Name: "Jane", Email: "jane@example.com", Password: "s3cret",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignupMissingFields(t *testing.T) {
	users := new(MockUserStore)
	app := authApp(users, auth.NewTokenIssuer("test-secret"))

	resp, err := app.Test(jsonReq(t, "POST", "/api/auth/signup", models.SignupPayload{
		Email: "jane@example.com",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	users := new(MockUserStore)
	app := authApp(users, auth.NewTokenIssuer("test-secret"))

	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)

	users.On("UserByEmail", mock.Anything, "nobody@example.com").
		Return(models.User{}, "", store.ErrNotFound).Once()
	users.On("UserByEmail", mock.Anything, "jane@example.com").
		Return(models.User{ID: "u1", Name: "Jane"}, hash, nil).Once()

	readBody := func(payload models.LoginPayload) (int, string) {
		resp, err := app.Test(jsonReq(t, "POST", "/api/auth/login", payload))
		require.NoError(t, err)
		var e ErrorResp
		decodeJSON(t, resp, &e)
		return resp.StatusCode, e.Error
	}

	unknownStatus, unknownMsg := readBody(models.LoginPayload{Email: "nobody@example.com", Password: "x"})
	wrongStatus, wrongMsg := readBody(models.LoginPayload{Email: "jane@example.com", Password: "wrong-password"})

	assert.Equal(t, fiber.StatusUnauthorized, unknownStatus)
	assert.Equal(t, fiber.StatusUnauthorized, wrongStatus)
	assert.Equal(t, unknownMsg, wrongMsg, "same generic message for both failures")
}

func TestLoginSuccess(t *testing.T) {
	users := new(MockUserStore)
	tokens := auth.NewTokenIssuer("test-secret")
	app := authApp(users, tokens)

	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)
	users.On("UserByEmail", mock.Anything, "jane@example.com").
		Return(models.User{ID: "u1", Email: "jane@example.com"}, hash, nil).Once()

	resp, err := app.Test(jsonReq(t, "POST", "/api/auth/login", models.LoginPayload{
		Email: "jane@example.com", Password: "right-password",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tok models.TokenResponse
	decodeJSON(t, resp, &tok)
	subject, err := tokens.Verify(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", subject)
}

func TestMeReturnsTokenOwner(t *testing.T) {
	users := new(MockUserStore)
	tokens := auth.NewTokenIssuer("test-secret")
	app := authApp(users, tokens)

	users.On("UserByID", mock.Anything, "u1").
		Return(models.User{ID: "u1", Name: "Jane", Email: "jane@example.com", Role: models.RoleCitizen}, nil).Once()

	token, err := tokens.Issue("u1", "jane@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me models.User
	decodeJSON(t, resp, &me)
	assert.Equal(t, "u1", me.ID)
}
