package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"eduvibe/backend/config"
	"eduvibe/backend/models"
	"eduvibe/backend/store"
	"eduvibe/backend/utils"
)

type ContactController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewContactController(st store.Store, cfg *config.Config) *ContactController {
	return &ContactController{Store: st, Cfg: cfg}
}

func (cc *ContactController) Create(c *fiber.Ctx) error {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON.")
	}

	if input.Name == "" || input.Email == "" || input.Message == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "name, email, and message are required.")
	}

	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = "General Inquiry"
	}

	entry := models.ContactMessage{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		Subject:    subject,
		Message:    strings.TrimSpace(input.Message),
		Status:     "new",
		ReceivedAt: time.Now().UTC(),
	}
	if err := cc.Store.CreateContactMessage(&entry); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	return utils.Success(c, fiber.StatusCreated, fiber.Map{
		"message":  "Thank you for reaching out! Our team will respond within 1 business day.",
		"ticketId": entry.ID,
	})
}

func (cc *ContactController) List(c *fiber.Ctx) error {
	messages, err := cc.Store.ContactMessages()
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"total":    len(messages),
		"messages": messages,
	})
}
