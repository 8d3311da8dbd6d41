package handlers

import (
	"errors"
	"fmt"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/models"
	"jobboard-bff/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgNoFile           = "No file provided"
	msgUnsupportedType  = "File must be a DOCX or DOC file"
	msgExtractionFailed = "Failed to extract text from document"
	msgUnknownError     = "Unknown error occurred"
)

type TextExtractor interface {
	Extract(doc *models.UploadedDocument) (*dto.ExtractionResult, error)
}

type ExtractHandler struct {
	extractor TextExtractor
	maxSize   int64
	logger    *zap.Logger
}

func NewExtractHandler(extractor TextExtractor, maxSize int64, logger *zap.Logger) *ExtractHandler {
	return &ExtractHandler{
		extractor: extractor,
		maxSize:   maxSize,
		logger:    logger,
	}
}

// ExtractText godoc
// @Summary Extract text from a Word document
// @Description Upload a .docx (or .doc) file and get its plain text back, trimmed, with parser warnings
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Word document"
// @Success 200 {object} dto.ExtractTextResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/extract-docx-text [post]
func (h *ExtractHandler) ExtractText(c *fiber.Ctx) error {
	log := requestLogger(c, h.logger)

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("No file in upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError(msgNoFile, ""))
	}

	contentType := file.Header.Get(fiber.HeaderContentType)
	if !models.IsWordDocument(contentType, file.Filename) {
		log.Warn("Unsupported file type",
			zap.String("file", file.Filename),
			zap.String("content_type", contentType),
		)
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError(msgUnsupportedType, ""))
	}

	if file.Size > h.maxSize {
		log.Warn("File too large", zap.String("file", file.Filename), zap.Int64("size", file.Size))
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(
			dto.NewError(fmt.Sprintf("File exceeds maximum size of %d bytes", h.maxSize), ""),
		)
	}

	doc, err := service.ReadUpload(file)
	if err != nil {
		return h.extractionFailed(c, log, file.Filename, err)
	}

	result, err := h.extractor.Extract(doc)
	if err != nil {
		return h.extractionFailed(c, log, file.Filename, err)
	}

	return c.JSON(dto.ExtractTextResponse{
		Success:  true,
		Text:     result.Text,
		Warnings: result.Warnings,
	})
}

func (h *ExtractHandler) extractionFailed(c *fiber.Ctx, log *zap.Logger, fileName string, err error) error {
	message := err.Error()
	kind := service.ExtractionErrorKind("unknown")

	var extractionErr *service.ExtractionError
	if errors.As(err, &extractionErr) {
		kind = extractionErr.Kind
		if kind == service.ExtractionEmpty {
			message = msgExtractionFailed
		}
	}
	if message == "" {
		message = msgUnknownError
	}

	log.Error("Document extraction failed",
		zap.String("file", fileName),
		zap.String("kind", string(kind)),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError(message, ""))
}
