package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/models"
	"jobboard-bff/pkg/docx"

	"go.uber.org/zap"
)

// DocumentParser turns a Word file into raw text plus non-fatal messages.
type DocumentParser interface {
	ExtractRawText(data []byte) (*docx.Result, error)
}

type ExtractionService struct {
	parser DocumentParser
	logger *zap.Logger
}

func NewExtractionService(parser DocumentParser, logger *zap.Logger) *ExtractionService {
	return &ExtractionService{
		parser: parser,
		logger: logger,
	}
}

// ReadUpload buffers a multipart file fully in memory.
func ReadUpload(fh *multipart.FileHeader) (*models.UploadedDocument, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, &ExtractionError{Kind: ExtractionRead, Err: fmt.Errorf("failed to open upload: %w", err)}
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, &ExtractionError{Kind: ExtractionRead, Err: fmt.Errorf("failed to read upload: %w", err)}
	}

	return &models.UploadedDocument{
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
		FileName:    fh.Filename,
	}, nil
}

// Extract returns the trimmed text of doc. Only a parser result with no text
// at all is an ExtractionEmpty error; whitespace-only text trims to "".
func (s *ExtractionService) Extract(doc *models.UploadedDocument) (*dto.ExtractionResult, error) {
	res, err := s.parser.ExtractRawText(doc.Data)
	if err != nil {
		return nil, &ExtractionError{Kind: ExtractionParse, Err: err}
	}
	if res == nil {
		return nil, &ExtractionError{Kind: ExtractionParse, Err: errors.New("parser returned no result")}
	}

	if res.Value == "" {
		return nil, &ExtractionError{Kind: ExtractionEmpty, Err: ErrEmptyExtraction}
	}
	text := strings.TrimSpace(res.Value)

	warnings := make([]dto.ExtractionWarning, 0, len(res.Messages))
	for _, m := range res.Messages {
		warnings = append(warnings, dto.ExtractionWarning{Type: m.Type, Message: m.Message})
	}

	s.logger.Debug("Document text extracted",
		zap.String("file", doc.FileName),
		zap.Int("bytes", len(doc.Data)),
		zap.Int("text_length", len(text)),
		zap.Int("warnings", len(warnings)),
	)

	return &dto.ExtractionResult{Text: text, Warnings: warnings}, nil
}
