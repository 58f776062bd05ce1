package candidateapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/pkg/validatex"
	"github.com/portalhq/jobboard/portal/candidate"
	"github.com/portalhq/jobboard/portal/candidate/candidatesrv"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.CandidateService
}

func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{service: service}
}

// GetMyProfile returns the caller's candidate profile
// GET /api/candidates/me
func (h *Handlers) GetMyProfile(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	profile, err := h.service.GetMyProfile(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// UpdateMyProfile updates the caller's candidate profile
// PUT /api/candidates/me
func (h *Handlers) UpdateMyProfile(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req candidate.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return candidate.ErrValidationFailed().WithDetail("fields", validatex.Fields(err))
	}

	profile, err := h.service.UpdateMyProfile(c.Context(), actor, req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// ListMySkills returns the caller's skills
// GET /api/candidates/me/skills
func (h *Handlers) ListMySkills(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	skills, err := h.service.ListMySkills(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(skills)
}

// AttachSkill adds a skill to the caller's profile
// POST /api/candidates/me/skills/:skillId
func (h *Handlers) AttachSkill(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	skillID := kernel.SkillID(c.Params("skillId"))
	if skillID.IsEmpty() {
		return candidate.ErrSkillNotAttached().WithDetail("skill_id", "missing or empty")
	}

	if err := h.service.AttachSkill(c.Context(), actor, skillID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DetachSkill removes a skill from the caller's profile
// DELETE /api/candidates/me/skills/:skillId
func (h *Handlers) DetachSkill(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	skillID := kernel.SkillID(c.Params("skillId"))
	if skillID.IsEmpty() {
		return candidate.ErrSkillNotAttached().WithDetail("skill_id", "missing or empty")
	}

	if err := h.service.DetachSkill(c.Context(), actor, skillID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/candidates",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(auth.RoleCandidate),
	)

	api.Get("/me", handlers.GetMyProfile)
	api.Put("/me", handlers.UpdateMyProfile)
	api.Get("/me/skills", handlers.ListMySkills)
	api.Post("/me/skills/:skillId", handlers.AttachSkill)
	api.Delete("/me/skills/:skillId", handlers.DetachSkill)
}
