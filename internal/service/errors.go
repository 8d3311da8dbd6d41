package service

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types reported to clients in the error_type field.
const (
	ErrorTypeMissingRequiredFields = "missing_required_fields"
	ErrorTypeMissingCandidateData  = "missing_candidate_data"
	ErrorTypeInvalidJobDescs       = "invalid_job_descriptions"
	ErrorTypeMissingResumeText     = "missing_resume_text"
	ErrorTypeEmptyResumeText       = "empty_resume_text"
	ErrorTypeInvalidRequestBody    = "invalid_request_body"
	ErrorTypeServerError           = "server_error"
)

// ValidationError is a rejected request field. Nothing is sent upstream.
type ValidationError struct {
	Field     string
	ErrorType string
	Message   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError is a non-2xx answer from the scoring service.
type UpstreamError struct {
	StatusCode int
	Message    string
	ErrorType  string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s (%s)", e.StatusCode, e.Message, e.ErrorType)
}

// TransportError means the scoring service could not be reached or answered garbage.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type ExtractionErrorKind string

const (
	ExtractionRead  ExtractionErrorKind = "read"
	ExtractionParse ExtractionErrorKind = "parse"
	ExtractionEmpty ExtractionErrorKind = "empty"
)

var (
	ErrEmptyExtraction      = errors.New("document produced no text")
	ErrUpstreamBodyTooLarge = errors.New("upstream response too large")
)

// ExtractionError tags where document text extraction failed.
type ExtractionError struct {
	Kind ExtractionErrorKind
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return "Unknown error occurred"
	}
	return e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps an error returned by this package to a response status.
func HTTPStatus(err error) int {
	var validationErr *ValidationError
	var upstreamErr *UpstreamError
	var transportErr *TransportError
	var extractionErr *ExtractionError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &upstreamErr):
		return upstreamErr.StatusCode
	case errors.As(err, &transportErr):
		return http.StatusInternalServerError
	case errors.As(err, &extractionErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
