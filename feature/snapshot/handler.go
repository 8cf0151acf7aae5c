package snapshot

import (
	"config-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the snapshot operations over HTTP for embedding hosts that
// prefer an API over the CLI. Paths refer to directories on the server's
// filesystem.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshot")
	group.Post("/export", h.HandleExport)
	group.Post("/import", h.HandleImport)
	group.Get("/validate", h.HandleValidate)
}

type exportRequest struct {
	Path string `json:"path"`
}

type importRequest struct {
	Path   string `json:"path"`
	DryRun bool   `json:"dry_run"`
}

// HandleExport runs a full export into the requested directory.
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req exportRequest
	if err := c.BodyParser(&req); err != nil || req.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}

	result, err := h.service.Export(c.Context(), req.Path)
	if err != nil {
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// HandleImport runs a full import, or only validation when dry_run is set.
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req importRequest
	if err := c.BodyParser(&req); err != nil || req.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}

	if req.DryRun {
		return c.JSON(h.service.Validate(req.Path))
	}

	result, err := h.service.ImportAll(c.Context(), req.Path)
	if err != nil {
		l.Error("Import failed", zap.Error(err))
		body := fiber.Map{"error": err.Error()}
		if result != nil {
			body["failed_type"] = result.FailedType
			body["imported_count"] = result.TotalRecords
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
	return c.JSON(result)
}

// HandleValidate checks importability of a snapshot directory.
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}
	return c.JSON(h.service.Validate(path))
}
