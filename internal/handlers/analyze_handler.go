package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

type AnalyzeHandler struct {
	catalog        services.RoleCatalog
	storageService services.StorageService
	worker         services.Worker
	validate       *validator.Validate
	maxFileSize    int64
	log            *zap.Logger
}

func NewAnalyzeHandler(
	catalog services.RoleCatalog,
	storageService services.StorageService,
	worker services.Worker,
	maxFileSize int64,
	log *zap.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		catalog:        catalog,
		storageService: storageService,
		worker:         worker,
		validate:       validator.New(),
		maxFileSize:    maxFileSize,
		log:            log,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no file uploaded",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": services.ErrRoleRequired.Error(),
		})
	}

	role, err := services.ResolveRole(h.catalog, req.RoleKey, req.RoleDescription)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "resume")
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidFileType) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := h.storageService.DeleteFile(filename); err != nil {
			h.log.Warn("⚠️  failed to remove upload", zap.String("file", filename), zap.Error(err))
		}
	}()

	report, err := h.worker.Submit(c.UserContext(), services.AnalysisJob{
		FilePath: filePath,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, services.ErrNoTextExtracted) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.AnalyzeResponse{
		Filename:    file.Filename,
		Role:        role.Title,
		Scores:      report,
		Suggestions: services.GenerateSuggestions(report),
	})
}
