package handlers

import (
	"encoding/json"
	"errors"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// requestLogger tags log lines with the request id set by the requestid middleware.
func requestLogger(c *fiber.Ctx, logger *zap.Logger) *zap.Logger {
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		return logger.With(zap.String("request_id", id), zap.String("path", c.Path()))
	}
	return logger.With(zap.String("path", c.Path()))
}

// decodeJSON reads the body as JSON whatever the declared content type.
func decodeJSON(c *fiber.Ctx, v interface{}) error {
	return json.Unmarshal(c.Body(), v)
}

// respondServiceError writes the {success:false, error, error_type} envelope
// for errors coming back from the scoring proxy.
func respondServiceError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	log := requestLogger(c, logger)

	var validationErr *service.ValidationError
	var upstreamErr *service.UpstreamError
	var transportErr *service.TransportError

	switch {
	case errors.As(err, &validationErr):
		log.Warn("Request rejected",
			zap.String("field", validationErr.Field),
			zap.String("error_type", validationErr.ErrorType),
		)
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError(validationErr.Message, validationErr.ErrorType))

	case errors.As(err, &upstreamErr):
		log.Warn("Upstream error relayed",
			zap.Int("status", upstreamErr.StatusCode),
			zap.String("error", upstreamErr.Message),
			zap.String("error_type", upstreamErr.ErrorType),
		)
		return c.Status(upstreamErr.StatusCode).JSON(dto.NewError(upstreamErr.Message, upstreamErr.ErrorType))

	case errors.As(err, &transportErr):
		log.Error("Scoring call failed", zap.String("op", transportErr.Op), zap.Error(transportErr.Err))
	default:
		log.Error("Unexpected proxy error", zap.Error(err))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("Internal server error", service.ErrorTypeServerError))
}
