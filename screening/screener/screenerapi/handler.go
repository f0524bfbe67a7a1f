package screenerapi

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/Abraxas-365/sift/pkg/fsx"
	"github.com/Abraxas-365/sift/pkg/iam/auth"
	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/screener"
	"github.com/Abraxas-365/sift/screening/screener/screenersrv"
	"github.com/Abraxas-365/sift/screening/scoring"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// maxUploadSize bounds resume document uploads (10MB)
const maxUploadSize = int64(10 * 1024 * 1024)

type ScreeningHandlers struct {
	service    *screenersrv.Service
	fileSystem fsx.FileSystem
}

func NewScreeningHandlers(service *screenersrv.Service, fileSystem fsx.FileSystem) *ScreeningHandlers {
	return &ScreeningHandlers{
		service:    service,
		fileSystem: fileSystem,
	}
}

func (h *ScreeningHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.TokenMiddleware) {
	// Machine callers may present an API key here instead of a token
	app.Get("/api/v1/screenings/queue/stats",
		authMiddleware.AuthenticateService(),
		authMiddleware.RequireScope(auth.ScopeScreeningsRead),
		h.QueueStats)

	screenings := app.Group("/api/v1/screenings", authMiddleware.Authenticate())

	// Synchronous text operations
	screenings.Post("/parse", authMiddleware.RequireScope(auth.ScopeScreeningsWrite), h.ParseText)
	screenings.Post("/analyze", authMiddleware.RequireScope(auth.ScopeScreeningsWrite), h.AnalyzeText)
	screenings.Post("/batch", authMiddleware.RequireScope(auth.ScopeScreeningsWrite), h.BatchScreen)
	screenings.Get("/batch/:batchId", authMiddleware.RequireScope(auth.ScopeScreeningsRead), h.GetBatch)

	// Async file screening
	screenings.Post("/", authMiddleware.RequireScope(auth.ScopeScreeningsWrite), h.ScreenFile)
	screenings.Get("/:id/status", authMiddleware.RequireScope(auth.ScopeScreeningsRead), h.GetStatus)
	screenings.Get("/:id", authMiddleware.RequireScope(auth.ScopeScreeningsRead), h.GetScreening)
	screenings.Get("/", authMiddleware.RequireScope(auth.ScopeScreeningsRead), h.ListScreenings)
	screenings.Delete("/:id", authMiddleware.RequireScope(auth.ScopeScreeningsDelete), h.DeleteScreening)
}

// ============================================================================
// Synchronous Handlers
// ============================================================================

// ParseText parses raw resume text
// POST /api/v1/screenings/parse
func (h *ScreeningHandlers) ParseText(c *fiber.Ctx) error {
	var req screener.ParseTextRequest
	if err := c.BodyParser(&req); err != nil {
		return screener.ErrInvalidScreeningData().
			WithDetail("reason", "malformed request body")
	}

	resp, err := h.service.ParseText(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AnalyzeText parses and scores resume text against requirements
// POST /api/v1/screenings/analyze
func (h *ScreeningHandlers) AnalyzeText(c *fiber.Ctx) error {
	var req screener.AnalyzeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return screener.ErrInvalidScreeningData().
			WithDetail("reason", "malformed request body")
	}

	resp, err := h.service.AnalyzeText(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// BatchScreen scores many resumes against one requirement set
// POST /api/v1/screenings/batch
func (h *ScreeningHandlers) BatchScreen(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	var req screener.BatchScreenRequest
	if err := c.BodyParser(&req); err != nil {
		return screener.ErrInvalidScreeningData().
			WithDetail("reason", "malformed request body")
	}

	resp, err := h.service.BatchScreen(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetBatch returns the stored screenings of one batch
// GET /api/v1/screenings/batch/:batchId
func (h *ScreeningHandlers) GetBatch(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	batchID := kernel.NewBatchID(c.Params("batchId"))
	items, err := h.service.ListBatch(c.Context(), batchID, authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// ============================================================================
// Async File Screening Handlers
// ============================================================================

// ScreenFile uploads a resume document and queues it for screening.
// Multipart form: "file" plus a "requirements" JSON field.
// POST /api/v1/screenings
func (h *ScreeningHandlers) ScreenFile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return screener.ErrInvalidScreeningData().
			WithDetail("reason", "file is required")
	}

	if file.Size > maxUploadSize {
		return screener.ErrFileTooLarge().
			WithDetail("size", file.Size).
			WithDetail("max_size", maxUploadSize)
	}

	contentType := detectContentType(file.Filename, file.Header.Get("Content-Type"))
	if contentType == "" {
		return screener.ErrInvalidFileFormat().
			WithDetail("supported_types", []string{"pdf", "txt"}).
			WithDetail("detected_type", file.Header.Get("Content-Type")).
			WithDetail("file_extension", filepath.Ext(file.Filename))
	}

	var requirements scoring.JobRequirements
	if raw := c.FormValue("requirements"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &requirements); err != nil {
			return screener.ErrInvalidScreeningData().
				WithDetail("field", "requirements").
				WithDetail("reason", "malformed JSON")
		}
	}

	uploaded, err := file.Open()
	if err != nil {
		return screener.ErrFileReadFailed().
			WithDetail("file_name", file.Filename)
	}
	defer uploaded.Close()

	data, err := io.ReadAll(uploaded)
	if err != nil {
		return screener.ErrFileReadFailed().
			WithDetail("file_name", file.Filename)
	}

	path := fmt.Sprintf("screenings/%s/%d_%s%s",
		authCtx.UserID, time.Now().Unix(), uuid.NewString()[:8], filepath.Ext(file.Filename))
	storedPath, err := h.fileSystem.WriteFile(c.Context(), path, data, contentType)
	if err != nil {
		return screener.ErrFileReadFailed().
			WithDetail("file_name", file.Filename).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	resp, err := h.service.ScreenFile(c.Context(), screener.ScreenFileRequest{
		RequesterID:  authCtx.UserID,
		FilePath:     storedPath,
		FileName:     file.Filename,
		ContentType:  contentType,
		Requirements: requirements,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// GetScreening returns the full screening record
// GET /api/v1/screenings/:id
func (h *ScreeningHandlers) GetScreening(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	id := kernel.NewScreeningID(c.Params("id"))
	screening, err := h.service.GetScreening(c.Context(), id, authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(screening)
}

// GetStatus returns the lifecycle view of a screening
// GET /api/v1/screenings/:id/status
func (h *ScreeningHandlers) GetStatus(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	id := kernel.NewScreeningID(c.Params("id"))
	resp, err := h.service.GetStatus(c.Context(), id, authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListScreenings pages the requester's screenings
// GET /api/v1/screenings?page=1&page_size=20
func (h *ScreeningHandlers) ListScreenings(c *fiber.Ctx) error {
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

	page, err := h.service.ListScreenings(c.Context(), authCtx.UserID, pagination)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// DeleteScreening removes a screening record
// DELETE /api/v1/screenings/:id
func (h *ScreeningHandlers) DeleteScreening(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	id := kernel.NewScreeningID(c.Params("id"))
	if err := h.service.DeleteScreening(c.Context(), id, authCtx.UserID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// QueueStats reports screening queue depth
// GET /api/v1/screenings/queue/stats
func (h *ScreeningHandlers) QueueStats(c *fiber.Ctx) error {
	stats, err := h.service.QueueStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// detectContentType maps an upload to a supported content type,
// empty string when unsupported
func detectContentType(filename, headerType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	}

	switch {
	case strings.Contains(headerType, "pdf"):
		return "application/pdf"
	case strings.HasPrefix(headerType, "text/"):
		return headerType
	}
	return ""
}
