package applicationapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/pkg/validatex"
	"github.com/portalhq/jobboard/portal/application"
	"github.com/portalhq/jobboard/portal/application/applicationsrv"
	"github.com/portalhq/jobboard/portal/job"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{service: service}
}

// Apply submits the caller's application to a job
// POST /api/applications/apply/:jobId
func (h *Handlers) Apply(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("job_id", "missing or empty")
	}

	var req application.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return application.ErrValidationFailed().WithDetail("fields", validatex.Fields(err))
	}

	created, err := h.service.Apply(c.Context(), actor, jobID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetMyApplications returns the caller's application history
// GET /api/applications/my-applications
func (h *Handlers) GetMyApplications(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	result, err := h.service.GetMyApplications(c.Context(), actor, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// GetApplicationsForJob returns one job's applicants to its owner or an admin
// GET /api/applications/job/:jobId
func (h *Handlers) GetApplicationsForJob(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("job_id", "missing or empty")
	}

	result, err := h.service.GetApplicationsForJob(c.Context(), actor, jobID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// UpdateApplicationStatus moves an application to a new status
// PATCH /api/applications/:id/status
func (h *Handlers) UpdateApplicationStatus(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return application.ErrValidationFailed().WithDetail("fields", validatex.Fields(err))
	}

	if err := h.service.UpdateApplicationStatus(c.Context(), actor, applicationID, req); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parsePaginationOptions extracts pagination from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", strconv.Itoa(kernel.DefaultPageSize)))

	return kernel.PaginationOptions{Page: page, PageSize: pageSize}.Normalize()
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/applications", authMiddleware.Authenticate())

	// Candidate routes
	api.Post("/apply/:jobId",
		authMiddleware.RequireRoles(auth.RoleCandidate),
		handlers.Apply,
	)

	api.Get("/my-applications",
		authMiddleware.RequireRoles(auth.RoleCandidate),
		handlers.GetMyApplications,
	)

	// Employer/Admin routes
	api.Get("/job/:jobId",
		authMiddleware.RequireRoles(auth.RoleEmployer, auth.RoleAdmin),
		handlers.GetApplicationsForJob,
	)

	api.Patch("/:id/status",
		authMiddleware.RequireRoles(auth.RoleEmployer, auth.RoleAdmin),
		handlers.UpdateApplicationStatus,
	)
}
