package handlers

import (
	"context"
	"errors"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/models"
	"jobboard-bff/internal/repository"
	"jobboard-bff/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const msgConfigNotFound = "Scraping config not found"

type ScrapingConfigManager interface {
	List(ctx context.Context) ([]*models.ScrapingConfig, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ScrapingConfig, error)
	Create(ctx context.Context, req *dto.CreateScrapingConfigRequest) (*models.ScrapingConfig, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateScrapingConfigRequest) (*models.ScrapingConfig, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ScrapingConfigHandler serves the admin CRUD for scraper searches.
// Its errors use the bare {error} shape the admin dashboard expects.
type ScrapingConfigHandler struct {
	configs ScrapingConfigManager
	logger  *zap.Logger
}

func NewScrapingConfigHandler(configs ScrapingConfigManager, logger *zap.Logger) *ScrapingConfigHandler {
	return &ScrapingConfigHandler{
		configs: configs,
		logger:  logger,
	}
}

// List godoc
// @Summary List scraping configs
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {array} models.ScrapingConfig
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/admin/scraping-config [get]
func (h *ScrapingConfigHandler) List(c *fiber.Ctx) error {
	configs, err := h.configs.List(c.UserContext())
	if err != nil {
		return h.dbError(c, "Failed to list scraping configs", err)
	}
	return c.JSON(configs)
}

// Get godoc
// @Summary Get a scraping config
// @Tags admin
// @Produce json
// @Param id path string true "Config ID"
// @Security Bearer
// @Success 200 {object} models.ScrapingConfig
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/scraping-config/{id} [get]
func (h *ScrapingConfigHandler) Get(c *fiber.Ctx) error {
	id, ok := configID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgConfigNotFound})
	}

	cfg, err := h.configs.Get(c.UserContext(), id)
	if err != nil {
		return h.dbError(c, "Failed to get scraping config", err)
	}
	return c.JSON(cfg)
}

// Create godoc
// @Summary Create a scraping config
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateScrapingConfigRequest true "Config"
// @Security Bearer
// @Success 201 {object} models.ScrapingConfig
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/admin/scraping-config [post]
func (h *ScrapingConfigHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateScrapingConfigRequest
	if err := decodeJSON(c, &req); err != nil {
		requestLogger(c, h.logger).Warn("Invalid scraping config body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cfg, err := h.configs.Create(c.UserContext(), &req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			requestLogger(c, h.logger).Warn("Scraping config rejected", zap.String("field", validationErr.Field))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Message})
		}
		return h.dbError(c, "Failed to create scraping config", err)
	}
	return c.Status(fiber.StatusCreated).JSON(cfg)
}

// Update godoc
// @Summary Update a scraping config
// @Description Partial update. id and created_at are ignored.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Config ID"
// @Param request body dto.UpdateScrapingConfigRequest true "Changed fields"
// @Security Bearer
// @Success 200 {object} models.ScrapingConfig
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/scraping-config/{id} [put]
func (h *ScrapingConfigHandler) Update(c *fiber.Ctx) error {
	id, ok := configID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgConfigNotFound})
	}

	var req dto.UpdateScrapingConfigRequest
	if err := decodeJSON(c, &req); err != nil {
		requestLogger(c, h.logger).Warn("Invalid scraping config body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cfg, err := h.configs.Update(c.UserContext(), id, &req)
	if err != nil {
		return h.dbError(c, "Failed to update scraping config", err)
	}
	return c.JSON(cfg)
}

// Delete godoc
// @Summary Delete a scraping config
// @Tags admin
// @Produce json
// @Param id path string true "Config ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/admin/scraping-config/{id} [delete]
func (h *ScrapingConfigHandler) Delete(c *fiber.Ctx) error {
	id, ok := configID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgConfigNotFound})
	}

	if err := h.configs.Delete(c.UserContext(), id); err != nil {
		return h.dbError(c, "Failed to delete scraping config", err)
	}
	return c.JSON(fiber.Map{"message": "Scraping config deleted successfully"})
}

func configID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

func (h *ScrapingConfigHandler) dbError(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		requestLogger(c, h.logger).Warn(msg, zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgConfigNotFound})
	}
	requestLogger(c, h.logger).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
