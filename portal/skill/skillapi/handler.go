package skillapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/skill"
	"github.com/portalhq/jobboard/portal/skill/skillsrv"
)

// Handlers provides HTTP handlers for the skill directory
type Handlers struct {
	service *skillsrv.SkillService
}

func NewHandlers(service *skillsrv.SkillService) *Handlers {
	return &Handlers{service: service}
}

type createSkillRequest struct {
	Name string `json:"name"`
}

// ListSkills returns the skill directory
// GET /api/skills
func (h *Handlers) ListSkills(c *fiber.Ctx) error {
	skills, err := h.service.ListSkills(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(skills)
}

// CreateSkill adds a skill to the directory
// POST /api/skills
func (h *Handlers) CreateSkill(c *fiber.Ctx) error {
	var req createSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return skill.ErrNameRequired().WithDetail("parse_error", err.Error())
	}

	newSkill, err := h.service.CreateSkill(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(newSkill)
}

// DeleteSkill removes a skill from the directory
// DELETE /api/skills/:id
func (h *Handlers) DeleteSkill(c *fiber.Ctx) error {
	skillID := kernel.SkillID(c.Params("id"))
	if skillID.IsEmpty() {
		return skill.ErrSkillNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteSkill(c.Context(), skillID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers all skill routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/skills")

	api.Get("/", handlers.ListSkills)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(auth.RoleAdmin),
		handlers.CreateSkill,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(auth.RoleAdmin),
		handlers.DeleteSkill,
	)
}
