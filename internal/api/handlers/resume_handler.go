package handlers

import (
	"context"
	"errors"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/service"
	"jobboard-bff/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResumeGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, req *dto.GenerateResumeRequest) (*dto.GenerateResumeResponse, error)
}

type ResumeHandler struct {
	resumes ResumeGenerator
	logger  *zap.Logger
}

func NewResumeHandler(resumes ResumeGenerator, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{
		resumes: resumes,
		logger:  logger,
	}
}

// GenerateResume godoc
// @Summary Generate a tailored resume
// @Description Writes an ATS-optimized resume for a job the candidate already scores highly on
// @Tags resumes
// @Accept json
// @Produce json
// @Param request body dto.GenerateResumeRequest true "Profile, job and ATS score"
// @Security Bearer
// @Success 200 {object} dto.GenerateResumeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/generate-resume [post]
func (h *ResumeHandler) GenerateResume(c *fiber.Ctx) error {
	log := requestLogger(c, h.logger)

	var req dto.GenerateResumeRequest
	if err := decodeJSON(c, &req); err != nil {
		log.Warn("Invalid request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("Request body must be valid JSON", ""))
	}

	userID, _ := middleware.UserID(c)

	resp, err := h.resumes.Generate(c.UserContext(), userID, &req)
	if err == nil {
		return c.JSON(resp)
	}

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Warn("Resume generation rejected", zap.String("field", validationErr.Field), zap.String("reason", validationErr.Message))
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError(validationErr.Message, ""))
	case errors.Is(err, service.ErrUnauthenticated):
		log.Warn("Resume generation without a user")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("User not authenticated", ""))
	case errors.Is(err, service.ErrResumeUpload):
		log.Error("Resume file upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("Failed to upload resume file", ""))
	case errors.Is(err, service.ErrResumeSave):
		log.Error("Resume save failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("Failed to save resume to database", ""))
	default:
		log.Error("Resume generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError(err.Error(), ""))
	}
}
