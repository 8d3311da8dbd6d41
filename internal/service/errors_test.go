package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "validation", err: &ValidationError{Field: "user_id"}, want: http.StatusBadRequest},
		{name: "upstream keeps status", err: &UpstreamError{StatusCode: http.StatusServiceUnavailable}, want: http.StatusServiceUnavailable},
		{name: "wrapped upstream", err: fmt.Errorf("score: %w", &UpstreamError{StatusCode: http.StatusNotFound}), want: http.StatusNotFound},
		{name: "transport", err: &TransportError{Op: "post", Err: errors.New("refused")}, want: http.StatusInternalServerError},
		{name: "extraction", err: &ExtractionError{Kind: ExtractionEmpty, Err: ErrEmptyExtraction}, want: http.StatusInternalServerError},
		{name: "unauthenticated", err: ErrUnauthenticated, want: http.StatusUnauthorized},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestExtractionError_Message(t *testing.T) {
	assert.Equal(t, "Unknown error occurred", (&ExtractionError{Kind: ExtractionParse}).Error())

	cause := errors.New("zip: not a valid zip file")
	err := &ExtractionError{Kind: ExtractionParse, Err: cause}
	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
}
