package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"eduvibe/backend/config"
	"eduvibe/backend/routes"
	"eduvibe/backend/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		ServerPort:  "5000",
		DBPath:      ":memory:",
		JWTSecret:   "testsecret",
		JWTTTLHours: 168,
		BcryptCost:  bcrypt.MinCost,
		AgeMin:      18,
		AgeMax:      30,
	}

	st, err := store.Open(cfg.DBPath)
	require.NoError(t, err)

	app := fiber.New()
	routes.SetupRoutes(app, st, cfg)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp, result
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp, result := doRequest(t, app, "POST", "/api/auth/register", "", map[string]interface{}{
		"fullName": "Ada Lovelace",
		"email":    email,
		"age":      25,
		"password": "password1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, result["token"])
	return result["token"].(string)
}
