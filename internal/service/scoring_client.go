package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jobboard-bff/internal/dto"
	"jobboard-bff/pkg/config"

	"go.uber.org/zap"
)

const (
	atsScorePath      = "/api/ats-score"
	atsScoreBatchPath = "/api/ats-score/batch"
	parseResumePath   = "/api/parse-resume"

	// upper bound on an upstream body we are willing to buffer
	maxUpstreamBody = 16 << 20
)

// ScoringResult is a successful upstream reply, relayed to the client untouched.
type ScoringResult struct {
	StatusCode int
	Body       json.RawMessage
}

// upstreamDefaults fill in the error envelope when the upstream omits a field.
type upstreamDefaults struct {
	message   string
	errorType string
}

var (
	atsScoreDefaults    = upstreamDefaults{message: "Failed to calculate ATS score", errorType: "ats_scoring_error"}
	batchScoreDefaults  = upstreamDefaults{message: "Failed to calculate batch ATS scores", errorType: "batch_ats_scoring_error"}
	parseResumeDefaults = upstreamDefaults{message: "Failed to parse resume", errorType: "parsing_error"}
)

// Outbound bodies. Only these fields ever leave the service.
type atsScorePayload struct {
	UserID         any `json:"user_id"`
	JobDescription any `json:"job_description"`
}

type batchScorePayload struct {
	UserID          any    `json:"user_id"`
	JobDescriptions []any  `json:"job_descriptions"`
}

type parseResumePayload struct {
	ResumeText string `json:"resume_text"`
}

// ScoringClient forwards scoring requests to the external scoring service.
type ScoringClient struct {
	baseURL    string
	httpClient *http.Client
	maxBody    int64
	logger     *zap.Logger
}

func NewScoringClient(cfg *config.ScoringConfig, logger *zap.Logger) *ScoringClient {
	return &ScoringClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxBody:    maxUpstreamBody,
		logger:     logger,
	}
}

func ValidateATSScoreRequest(req *dto.ATSScoreRequest) error {
	if isFalsy(req.JobDescription) {
		return &ValidationError{Field: "job_description", ErrorType: ErrorTypeMissingRequiredFields, Message: "job_description is required"}
	}
	if isFalsy(req.UserID) {
		return &ValidationError{Field: "user_id", ErrorType: ErrorTypeMissingCandidateData, Message: "user_id is required"}
	}
	return nil
}

func ValidateBatchATSScoreRequest(req *dto.BatchATSScoreRequest) ([]any, error) {
	if isFalsy(req.JobDescriptions) {
		return nil, &ValidationError{Field: "job_descriptions", ErrorType: ErrorTypeMissingRequiredFields, Message: "job_descriptions is required"}
	}
	if isFalsy(req.UserID) {
		return nil, &ValidationError{Field: "user_id", ErrorType: ErrorTypeMissingCandidateData, Message: "user_id is required"}
	}
	jobs, ok := req.JobDescriptions.([]any)
	if !ok || len(jobs) == 0 {
		return nil, &ValidationError{Field: "job_descriptions", ErrorType: ErrorTypeInvalidJobDescs, Message: "job_descriptions must be a non-empty array"}
	}
	return jobs, nil
}

func ValidateParseResumeRequest(req *dto.ParseResumeRequest) error {
	if req.ResumeText == "" {
		return &ValidationError{Field: "resume_text", ErrorType: ErrorTypeMissingResumeText, Message: "resume_text is required"}
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return &ValidationError{Field: "resume_text", ErrorType: ErrorTypeEmptyResumeText, Message: "resume_text cannot be empty"}
	}
	return nil
}

// isFalsy reports whether a decoded JSON value counts as "not provided".
// An empty array is provided; it is rejected later as invalid.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	default:
		return false
	}
}

// ScoreATS validates req and forwards user_id and job_description upstream.
func (c *ScoringClient) ScoreATS(ctx context.Context, req *dto.ATSScoreRequest) (*ScoringResult, error) {
	if err := ValidateATSScoreRequest(req); err != nil {
		return nil, err
	}
	payload := atsScorePayload{UserID: req.UserID, JobDescription: req.JobDescription}
	return c.forward(ctx, atsScorePath, payload, atsScoreDefaults)
}

func (c *ScoringClient) ScoreATSBatch(ctx context.Context, req *dto.BatchATSScoreRequest) (*ScoringResult, error) {
	jobs, err := ValidateBatchATSScoreRequest(req)
	if err != nil {
		return nil, err
	}
	payload := batchScorePayload{UserID: req.UserID, JobDescriptions: jobs}
	return c.forward(ctx, atsScoreBatchPath, payload, batchScoreDefaults)
}

func (c *ScoringClient) ParseResume(ctx context.Context, req *dto.ParseResumeRequest) (*ScoringResult, error) {
	if err := ValidateParseResumeRequest(req); err != nil {
		return nil, err
	}
	payload := parseResumePayload{ResumeText: req.ResumeText}
	return c.forward(ctx, parseResumePath, payload, parseResumeDefaults)
}

func (c *ScoringClient) forward(ctx context.Context, path string, payload any, defaults upstreamDefaults) (*ScoringResult, error) {
	op := "POST " + path

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if int64(len(respBody)) > c.maxBody {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("%w: limit %d bytes (status %d)", ErrUpstreamBodyTooLarge, c.maxBody, resp.StatusCode)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstream struct {
			Error     string `json:"error"`
			ErrorType string `json:"error_type"`
		}
		if err := json.Unmarshal(respBody, &upstream); err != nil {
			return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to decode error response (status %d): %w", resp.StatusCode, err)}
		}

		upstreamErr := &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstream.Error,
			ErrorType:  upstream.ErrorType,
		}
		if upstreamErr.Message == "" {
			upstreamErr.Message = defaults.message
		}
		if upstreamErr.ErrorType == "" {
			upstreamErr.ErrorType = defaults.errorType
		}

		c.logger.Warn("Scoring service returned an error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("error", upstreamErr.Message),
			zap.String("error_type", upstreamErr.ErrorType),
		)
		return nil, upstreamErr
	}

	if !json.Valid(respBody) {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("invalid JSON in response (status %d)", resp.StatusCode)}
	}

	c.logger.Debug("Scoring service responded", zap.String("path", path), zap.Int("status", resp.StatusCode))
	return &ScoringResult{StatusCode: resp.StatusCode, Body: respBody}, nil
}
