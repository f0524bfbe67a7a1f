package profileapi

import (
	"github.com/Abraxas-365/sift/pkg/iam/auth"
	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/profile"
	"github.com/Abraxas-365/sift/screening/profile/profilesrv"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandlers struct {
	service *profilesrv.Service
}

func NewProfileHandlers(service *profilesrv.Service) *ProfileHandlers {
	return &ProfileHandlers{service: service}
}

func (h *ProfileHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.TokenMiddleware) {
	profiles := app.Group("/api/v1/profiles", authMiddleware.Authenticate())

	profiles.Post("/", authMiddleware.RequireScope(auth.ScopeProfilesWrite), h.CreateProfile)
	profiles.Get("/me", authMiddleware.RequireScope(auth.ScopeProfilesRead), h.GetOwnProfile)
	profiles.Get("/:id", authMiddleware.RequireScope(auth.ScopeProfilesRead), h.GetProfile)
	profiles.Put("/:id", authMiddleware.RequireScope(auth.ScopeProfilesWrite), h.UpdateProfile)
	profiles.Delete("/:id", authMiddleware.RequireScope(auth.ScopeProfilesDelete), h.DeleteProfile)
	profiles.Post("/:id/objective", authMiddleware.RequireScope(auth.ScopeProfilesWrite), h.GenerateObjective)

	// Trend lookups are read-only and not tied to a profile
	trending := app.Group("/api/v1/trending-skills", authMiddleware.Authenticate())
	trending.Get("/", h.ListTrendingSkills)
	trending.Get("/:field", h.TrendingSkillsForField)
}

// CreateProfile creates the requester's profile
// POST /api/v1/profiles
func (h *ProfileHandlers) CreateProfile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	var req profile.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidProfileData().
			WithDetail("reason", "malformed request body")
	}

	p, err := h.service.CreateProfile(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GetOwnProfile fetches the requester's profile
// GET /api/v1/profiles/me
func (h *ProfileHandlers) GetOwnProfile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	p, err := h.service.GetOwnProfile(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// GetProfile fetches a profile by ID
// GET /api/v1/profiles/:id
func (h *ProfileHandlers) GetProfile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	id := kernel.NewProfileID(c.Params("id"))
	p, err := h.service.GetProfile(c.Context(), id, authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// UpdateProfile applies a partial update
// PUT /api/v1/profiles/:id
func (h *ProfileHandlers) UpdateProfile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	var req profile.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidProfileData().
			WithDetail("reason", "malformed request body")
	}

	id := kernel.NewProfileID(c.Params("id"))
	p, err := h.service.UpdateProfile(c.Context(), id, authCtx.UserID, req)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// DeleteProfile removes a profile
// DELETE /api/v1/profiles/:id
func (h *ProfileHandlers) DeleteProfile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	id := kernel.NewProfileID(c.Params("id"))
	if err := h.service.DeleteProfile(c.Context(), id, authCtx.UserID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GenerateObjective runs the career objective generator
// POST /api/v1/profiles/:id/objective
func (h *ProfileHandlers) GenerateObjective(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	var req profile.GenerateObjectiveRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidProfileData().
			WithDetail("reason", "malformed request body")
	}

	id := kernel.NewProfileID(c.Params("id"))
	resp, err := h.service.GenerateObjective(c.Context(), id, authCtx.UserID, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListTrendingSkills returns the whole trend table
// GET /api/v1/trending-skills
func (h *ProfileHandlers) ListTrendingSkills(c *fiber.Ctx) error {
	skills, err := h.service.TrendingSkills(c.Context(), "")
	if err != nil {
		return err
	}
	return c.JSON(skills)
}

// TrendingSkillsForField returns the trend table for one field
// GET /api/v1/trending-skills/:field
func (h *ProfileHandlers) TrendingSkillsForField(c *fiber.Ctx) error {
	skills, err := h.service.TrendingSkills(c.Context(), c.Params("field"))
	if err != nil {
		return err
	}
	return c.JSON(skills)
}
