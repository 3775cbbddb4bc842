package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	resp, result := doRequest(t, app, "POST", "/api/auth/register", "", map[string]interface{}{
		"fullName": "Grace Hopper",
		"email":    "Grace.Hopper@Example.com",
		"age":      28,
		"password": "compiler1",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, result["success"])
	assert.NotEmpty(t, result["token"])

	user := result["user"].(map[string]interface{})
	assert.Equal(t, "grace.hopper@example.com", user["email"])
	assert.Equal(t, "student", user["role"])
	assert.Equal(t, "GH", user["avatarInitials"])

	// The password hash must never appear on any read path.
	_, hasHash := user["passwordHash"]
	assert.False(t, hasHash)
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing fields", map[string]interface{}{"email": "a@b.com"}},
		{"bad email", map[string]interface{}{
			"fullName": "A B", "email": "not-an-email", "age": 25, "password": "password1"}},
		{"age below range", map[string]interface{}{
			"fullName": "A B", "email": "a@b.com", "age": 17, "password": "password1"}},
		{"age above range", map[string]interface{}{
			"fullName": "A B", "email": "a@b.com", "age": 31, "password": "password1"}},
		{"weak password", map[string]interface{}{
			"fullName": "A B", "email": "a@b.com", "age": 25, "password": "lettersonly"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, result := doRequest(t, app, "POST", "/api/auth/register", "", tc.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, false, result["success"])
			assert.NotEmpty(t, result["error"])
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	registerUser(t, app, "dup@example.com")

	resp, result := doRequest(t, app, "POST", "/api/auth/register", "", map[string]interface{}{
		"fullName": "Second Try",
		"email":    "DUP@example.com",
		"age":      22,
		"password": "password1",
	})

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "An account with that email already exists.", result["error"])
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "login@example.com")

	resp, result := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "password1",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, result["token"])
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "login@example.com", user["email"])
}

func TestLoginErrorsAreIndistinguishable(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "known@example.com")

	wrongPassResp, wrongPass := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "known@example.com",
		"password": "wrongpass1",
	})
	unknownResp, unknown := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "password1",
	})

	assert.Equal(t, fiber.StatusUnauthorized, wrongPassResp.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, unknownResp.StatusCode)
	assert.Equal(t, wrongPass["error"], unknown["error"])
}

func TestLoginMissingFields(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": "known@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMe(t *testing.T) {
	app := newTestApp(t)
	token := registerUser(t, app, "me@example.com")

	resp, result := doRequest(t, app, "GET", "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	user := result["user"].(map[string]interface{})
	assert.Equal(t, "me@example.com", user["email"])
	_, hasHash := user["passwordHash"]
	assert.False(t, hasHash)
}

func TestMeRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp, result := doRequest(t, app, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, result["error"], "No token provided")

	resp, result = doRequest(t, app, "GET", "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, result["error"], "Invalid or expired token")
}
