package jobspecapi

import (
	"context"

	"github.com/Abraxas-365/sift/pkg/iam/auth"
	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/jobspec"
	"github.com/Abraxas-365/sift/screening/jobspec/jobspecsrv"
	"github.com/gofiber/fiber/v2"
)

type JobSpecHandlers struct {
	service *jobspecsrv.Service
}

func NewJobSpecHandlers(service *jobspecsrv.Service) *JobSpecHandlers {
	return &JobSpecHandlers{service: service}
}

func (h *JobSpecHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.TokenMiddleware) {
	specs := app.Group("/api/v1/jobspecs", authMiddleware.Authenticate())

	specs.Post("/", authMiddleware.RequireScope(auth.ScopeJobSpecsWrite), h.CreateSpec)
	specs.Get("/published", authMiddleware.RequireScope(auth.ScopeJobSpecsRead), h.ListPublished)
	specs.Get("/:id", authMiddleware.RequireScope(auth.ScopeJobSpecsRead), h.GetSpec)
	specs.Put("/:id", authMiddleware.RequireScope(auth.ScopeJobSpecsWrite), h.UpdateSpec)
	specs.Delete("/:id", authMiddleware.RequireScope(auth.ScopeJobSpecsDelete), h.DeleteSpec)
	specs.Get("/", authMiddleware.RequireScope(auth.ScopeJobSpecsRead), h.ListSpecs)

	specs.Post("/:id/publish", authMiddleware.RequireScope(auth.ScopeJobSpecsPublish), h.PublishSpec)
	specs.Post("/:id/unpublish", authMiddleware.RequireScope(auth.ScopeJobSpecsPublish), h.UnpublishSpec)
	specs.Post("/:id/archive", authMiddleware.RequireScope(auth.ScopeJobSpecsWrite), h.ArchiveSpec)
	specs.Post("/:id/unarchive", authMiddleware.RequireScope(auth.ScopeJobSpecsWrite), h.UnarchiveSpec)
}

// CreateSpec creates a draft job spec
// POST /api/v1/jobspecs
func (h *JobSpecHandlers) CreateSpec(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	var req jobspec.CreateSpecRequest
	if err := c.BodyParser(&req); err != nil {
		return jobspec.ErrInvalidSpecData().
			WithDetail("reason", "malformed request body")
	}

	spec, err := h.service.CreateSpec(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(spec)
}

// GetSpec fetches a spec
// GET /api/v1/jobspecs/:id
func (h *JobSpecHandlers) GetSpec(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	id := kernel.NewJobSpecID(c.Params("id"))
	spec, err := h.service.GetSpec(c.Context(), id, authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(spec)
}

// UpdateSpec applies a partial update
// PUT /api/v1/jobspecs/:id
func (h *JobSpecHandlers) UpdateSpec(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	var req jobspec.UpdateSpecRequest
	if err := c.BodyParser(&req); err != nil {
		return jobspec.ErrInvalidSpecData().
			WithDetail("reason", "malformed request body")
	}

	id := kernel.NewJobSpecID(c.Params("id"))
	spec, err := h.service.UpdateSpec(c.Context(), id, authCtx.UserID, req)
	if err != nil {
		return err
	}
	return c.JSON(spec)
}

// DeleteSpec removes a spec
// DELETE /api/v1/jobspecs/:id
func (h *JobSpecHandlers) DeleteSpec(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	id := kernel.NewJobSpecID(c.Params("id"))
	if err := h.service.DeleteSpec(c.Context(), id, authCtx.UserID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSpecs pages the requester's specs
// GET /api/v1/jobspecs?page=1&page_size=20
func (h *JobSpecHandlers) ListSpecs(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	page, err := h.service.ListSpecs(c.Context(), authCtx.UserID, pagination)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// ListPublished pages published specs
// GET /api/v1/jobspecs/published
func (h *JobSpecHandlers) ListPublished(c *fiber.Ctx) error {
	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	page, err := h.service.ListPublishedSpecs(c.Context(), pagination)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// PublishSpec transitions a draft to published
// POST /api/v1/jobspecs/:id/publish
func (h *JobSpecHandlers) PublishSpec(c *fiber.Ctx) error {
	return h.lifecycle(c, h.service.PublishSpec)
}

// UnpublishSpec reverts a published spec to draft
// POST /api/v1/jobspecs/:id/unpublish
func (h *JobSpecHandlers) UnpublishSpec(c *fiber.Ctx) error {
	return h.lifecycle(c, h.service.UnpublishSpec)
}

// ArchiveSpec retires a spec
// POST /api/v1/jobspecs/:id/archive
func (h *JobSpecHandlers) ArchiveSpec(c *fiber.Ctx) error {
	return h.lifecycle(c, h.service.ArchiveSpec)
}

// UnarchiveSpec returns an archived spec to draft
// POST /api/v1/jobspecs/:id/unarchive
func (h *JobSpecHandlers) UnarchiveSpec(c *fiber.Ctx) error {
	return h.lifecycle(c, h.service.UnarchiveSpec)
}

func (h *JobSpecHandlers) lifecycle(c *fiber.Ctx, op func(ctx context.Context, id kernel.JobSpecID, ownerID kernel.UserID) (*jobspec.JobSpec, error)) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	id := kernel.NewJobSpecID(c.Params("id"))
	spec, err := op(c.Context(), id, authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(spec)
}
