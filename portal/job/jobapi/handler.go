package jobapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/pkg/validatex"
	"github.com/portalhq/jobboard/portal/job"
	"github.com/portalhq/jobboard/portal/job/jobsrv"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{service: service}
}

// SearchJobs runs the public job search
// GET /api/jobs
func (h *Handlers) SearchJobs(c *fiber.Ctx) error {
	req := job.SearchJobsRequest{
		City:       c.Query("city"),
		Type:       c.Query("type"),
		Keyword:    c.Query("keyword"),
		SortBy:     c.Query("sortBy", "createdAt"),
		SortDir:    c.Query("sortDir", "desc"),
		Pagination: parsePaginationOptions(c),
	}

	if raw := c.Query("remote"); raw != "" {
		remote, err := strconv.ParseBool(raw)
		if err != nil {
			return job.ErrValidationFailed().WithDetail("remote", "must be true or false")
		}
		req.Remote = &remote
	}

	result, err := h.service.SearchJobs(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// GetJobDetails returns a posting with its company card
// GET /api/jobs/:id
func (h *Handlers) GetJobDetails(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	details, err := h.service.GetJobDetails(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(details)
}

// CreateJob creates a new posting under the caller's company
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return job.ErrValidationFailed().WithDetail("fields", validatex.Fields(err))
	}

	created, err := h.service.CreateJob(c.Context(), actor, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// DeleteJob removes a posting
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	actor, ok := auth.GetActor(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteJob(c.Context(), actor, jobID); err != nil {
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

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/jobs")

	// Public routes
	api.Get("/", handlers.SearchJobs)
	api.Get("/:id", handlers.GetJobDetails)

	// Employer routes
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(auth.RoleEmployer, auth.RoleAdmin),
		handlers.CreateJob,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(auth.RoleEmployer, auth.RoleAdmin),
		handlers.DeleteJob,
	)
}
