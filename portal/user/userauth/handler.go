package userauth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/validatex"
	"github.com/portalhq/jobboard/portal/user"
)

// Handlers provides HTTP handlers for authentication and the profile view
type Handlers struct {
	service *Service
}

func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// Register creates a new account
// POST /api/auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req user.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return user.ErrValidationFailed().WithDetail("fields", validatex.Fields(err))
	}

	resp, err := h.service.Register(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login verifies credentials and returns a token
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req user.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return user.ErrValidationFailed().WithDetail("fields", validatex.Fields(err))
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Logout revokes the caller's session
// POST /api/auth/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	tokenID, ok := auth.GetTokenID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	if err := h.service.Logout(c.Context(), tokenID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetProfile returns the caller's account with its role profile
// GET /api/profile/me
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	resp, err := h.service.GetProfile(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RegisterRoutes registers authentication and profile routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/auth")

	api.Post("/register", handlers.Register)
	api.Post("/login", handlers.Login)
	api.Post("/logout", authMiddleware.Authenticate(), handlers.Logout)

	app.Get("/api/profile/me", authMiddleware.Authenticate(), handlers.GetProfile)
}
