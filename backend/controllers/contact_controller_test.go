package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreate(t *testing.T) {
	app := newTestApp(t)

	resp, result := doRequest(t, app, "POST", "/api/contact", "", map[string]string{
		"name":    "Visitor",
		"email":   "Visitor@Example.com",
		"message": "I have a question about the AI course.",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, result["ticketId"])

	_, listing := doRequest(t, app, "GET", "/api/contact", "", nil)
	assert.Equal(t, float64(1), listing["total"])

	msg := listing["messages"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "visitor@example.com", msg["email"])
	assert.Equal(t, "General Inquiry", msg["subject"])
	assert.Equal(t, "new", msg["status"])
}

func TestContactCreateMissingFields(t *testing.T) {
	app := newTestApp(t)

	resp, result := doRequest(t, app, "POST", "/api/contact", "", map[string]string{
		"name":  "Visitor",
		"email": "visitor@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "name, email, and message are required.", result["error"])
}
