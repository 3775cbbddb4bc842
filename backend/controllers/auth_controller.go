package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"eduvibe/backend/config"
	"eduvibe/backend/models"
	"eduvibe/backend/store"
	"eduvibe/backend/utils"
	"eduvibe/backend/validation"
)

type AuthController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewAuthController(st store.Store, cfg *config.Config) *AuthController {
	return &AuthController{Store: st, Cfg: cfg}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Age      int    `json:"age"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Linkedin string `json:"linkedin"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON.")
	}

	if input.FullName == "" || input.Email == "" || input.Age == 0 || input.Password == "" {
		return utils.Fail(c, fiber.StatusBadRequest,
			"Missing required fields: fullName, email, age, password.")
	}

	if !validation.ValidEmail(input.Email) {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid email format.")
	}
	if !validation.ValidAge(input.Age, ac.Cfg.AgeMin, ac.Cfg.AgeMax) {
		return utils.Fail(c, fiber.StatusBadRequest, fmt.Sprintf(
			"EduVibe programs are for professionals aged %d–%d.", ac.Cfg.AgeMin, ac.Cfg.AgeMax))
	}
	if !validation.ValidPassword(input.Password) {
		return utils.Fail(c, fiber.StatusBadRequest,
			"Password must be at least 8 characters and include letters and numbers.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), ac.Cfg.BcryptCost)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Could not hash password.")
	}

	user := models.User{
		ID:             uuid.NewString(),
		FullName:       strings.TrimSpace(input.FullName),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Age:            input.Age,
		Phone:          input.Phone,
		Linkedin:       input.Linkedin,
		PasswordHash:   string(hashedPassword),
		Role:           "student",
		AvatarInitials: initials(input.FullName),
		JoinedAt:       time.Now().UTC(),
	}

	if err := ac.Store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return utils.Fail(c, fiber.StatusConflict, "An account with that email already exists.")
		}
		return utils.Fail(c, fiber.StatusInternalServerError, "Could not create user.")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, ac.Cfg)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Could not generate token.")
	}

	return utils.Success(c, fiber.StatusCreated, fiber.Map{
		"message": fmt.Sprintf("Welcome to EduVibe, %s! Your account is ready.", user.FullName),
		"token":   token,
		"user":    user,
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON.")
	}

	if input.Email == "" || input.Password == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Email and password are required.")
	}

	// The message is identical for an unknown email and a wrong password so
	// callers cannot enumerate accounts.
	user, err := ac.Store.UserByEmail(input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.Fail(c, fiber.StatusUnauthorized, "Invalid credentials.")
		}
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Invalid credentials.")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, ac.Cfg)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Could not generate token.")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("Welcome back, %s!", user.FullName),
		"token":   token,
		"user":    user,
	})
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	user, err := ac.Store.UserByID(userID)
	if err != nil {
		return utils.FailStore(c, err, "User not found.")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"user": user})
}

// initials derives the avatar initials from a full name, keeping at most two
// letters.
func initials(fullName string) string {
	var letters []rune
	for _, part := range strings.Fields(fullName) {
		letters = append(letters, []rune(part)[0])
	}
	if len(letters) > 2 {
		letters = letters[:2]
	}
	return strings.ToUpper(string(letters))
}
