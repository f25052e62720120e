package handlers

import (
	"pinpost/internal/auth"
	"pinpost/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration, login and the user listing.
type AuthHandler struct {
	authService *services.AuthService
	resolver    auth.PrincipalResolver
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler. The resolver is consulted at
// login: if it can issue tokens, the login response carries one.
func NewAuthHandler(authService *services.AuthService, resolver auth.PrincipalResolver) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		resolver:    resolver,
		validate:    validator.New(),
	}
}

// RegisterPublicRoutes registers the routes that need no identity claim.
func (h *AuthHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/users", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the routes behind the identity guard.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Get("/users", h.HandleListUsers)
}

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	user, err := h.authService.Register(req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin resolves an existing user by name.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	user, err := h.authService.Login(req.Name)
	if err != nil {
		return respondError(c, err)
	}

	response := fiber.Map{
		"message": "Login successful",
		"user":    user,
	}
	if issuer, ok := h.resolver.(auth.TokenIssuer); ok {
		token, issueErr := issuer.IssueToken(user)
		if issueErr != nil {
			return respondError(c, issueErr)
		}
		response["token"] = token
	}
	return c.JSON(response)
}

// HandleListUsers returns every registered user.
func (h *AuthHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.authService.ListUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
