package companyapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/pkg/validatex"
	"github.com/portalhq/jobboard/portal/company"
	"github.com/portalhq/jobboard/portal/company/companysrv"
)

// Handlers provides HTTP handlers for company operations
type Handlers struct {
	service *companysrv.CompanyService
}

func NewHandlers(service *companysrv.CompanyService) *Handlers {
	return &Handlers{service: service}
}

// ListCompanies returns the public company directory
// GET /api/companies
func (h *Handlers) ListCompanies(c *fiber.Ctx) error {
	items, err := h.service.ListCompanies(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// GetCompanyDetails returns a public company page with its jobs
// GET /api/companies/:id
func (h *Handlers) GetCompanyDetails(c *fiber.Ctx) error {
	companyID := kernel.CompanyID(c.Params("id"))
	if companyID.IsEmpty() {
		return company.ErrCompanyNotFound().WithDetail("id", "missing or empty")
	}

	details, err := h.service.GetCompanyDetails(c.Context(), companyID)
	if err != nil {
		return err
	}
	return c.JSON(details)
}

// GetMyCompany returns the caller's company profile
// GET /api/companies/me
func (h *Handlers) GetMyCompany(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	profile, err := h.service.GetMyCompany(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// UpdateMyCompany updates the caller's company profile
// PUT /api/companies/me
func (h *Handlers) UpdateMyCompany(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req company.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return company.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return company.ErrValidationFailed().WithDetail("fields", validatex.Fields(err))
	}

	profile, err := h.service.UpdateMyCompany(c.Context(), actor, req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// RegisterRoutes registers all company routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/companies")

	api.Get("/", handlers.ListCompanies)

	api.Get("/me",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(auth.RoleEmployer, auth.RoleAdmin),
		handlers.GetMyCompany,
	)

	api.Put("/me",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(auth.RoleEmployer, auth.RoleAdmin),
		handlers.UpdateMyCompany,
	)

	api.Get("/:id", handlers.GetCompanyDetails)
}
