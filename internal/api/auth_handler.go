package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"taskly.com/internal/domain"
)

// AuthHandler serves sign-up, login and the current-user endpoints.
type AuthHandler struct {
	authSvc domain.AuthService
}

func NewAuthHandler(authSvc domain.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// SignUp creates a user and returns the derived username.
// POST /api/auth/signup
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name, surname, email and password are required"})
	}

	username, err := h.authSvc.SignUp(c.Context(), domain.SignUpInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "User created successfully",
		"username": username,
	})
}

// Login authenticates by email or username and returns a session token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email or username and password are required"})
	}

	result, err := h.authSvc.Login(c.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(result)
}

// GetMe returns the authenticated user's public profile.
// GET /api/auth/me
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	user, err := h.authSvc.GetUser(c.Context(), uint(id))
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(user.Public())
}

// Logout acknowledges a client-side token discard. Tokens are stateless;
// expiry is the only invalidation mechanism.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
