package handlers

import (
	"context"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ScoringProxy interface {
	ScoreATS(ctx context.Context, req *dto.ATSScoreRequest) (*service.ScoringResult, error)
	ScoreATSBatch(ctx context.Context, req *dto.BatchATSScoreRequest) (*service.ScoringResult, error)
	ParseResume(ctx context.Context, req *dto.ParseResumeRequest) (*service.ScoringResult, error)
}

type ScoringHandler struct {
	scoring ScoringProxy
	logger  *zap.Logger
}

func NewScoringHandler(scoring ScoringProxy, logger *zap.Logger) *ScoringHandler {
	return &ScoringHandler{
		scoring: scoring,
		logger:  logger,
	}
}

// ATSScore godoc
// @Summary Score a candidate against a job
// @Description Forwards user_id and job_description to the scoring service and relays its answer
// @Tags scoring
// @Accept json
// @Produce json
// @Param request body dto.ATSScoreRequest true "Scoring request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/ats-score [post]
func (h *ScoringHandler) ATSScore(c *fiber.Ctx) error {
	var req dto.ATSScoreRequest
	if err := decodeJSON(c, &req); err != nil {
		return h.invalidBody(c, err)
	}

	result, err := h.scoring.ScoreATS(c.UserContext(), &req)
	if err != nil {
		return respondServiceError(c, h.logger, err)
	}
	return relay(c, result)
}

// BatchATSScore godoc
// @Summary Score a candidate against several jobs
// @Tags scoring
// @Accept json
// @Produce json
// @Param request body dto.BatchATSScoreRequest true "Batch scoring request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/ats-score/batch [post]
func (h *ScoringHandler) BatchATSScore(c *fiber.Ctx) error {
	var req dto.BatchATSScoreRequest
	if err := decodeJSON(c, &req); err != nil {
		return h.invalidBody(c, err)
	}

	result, err := h.scoring.ScoreATSBatch(c.UserContext(), &req)
	if err != nil {
		return respondServiceError(c, h.logger, err)
	}
	return relay(c, result)
}

// ParseResume godoc
// @Summary Parse raw resume text into structured data
// @Tags scoring
// @Accept json
// @Produce json
// @Param request body dto.ParseResumeRequest true "Resume text"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/flask/parse-resume [post]
func (h *ScoringHandler) ParseResume(c *fiber.Ctx) error {
	var req dto.ParseResumeRequest
	if err := decodeJSON(c, &req); err != nil {
		return h.invalidBody(c, err)
	}

	result, err := h.scoring.ParseResume(c.UserContext(), &req)
	if err != nil {
		return respondServiceError(c, h.logger, err)
	}
	return relay(c, result)
}

func (h *ScoringHandler) invalidBody(c *fiber.Ctx, err error) error {
	requestLogger(c, h.logger).Warn("Invalid request body", zap.Error(err))
	return c.Status(fiber.StatusBadRequest).JSON(
		dto.NewError("Request body must be valid JSON", service.ErrorTypeInvalidRequestBody),
	)
}

// relay writes the upstream body and status unchanged.
func relay(c *fiber.Ctx, result *service.ScoringResult) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(result.StatusCode).Send(result.Body)
}
