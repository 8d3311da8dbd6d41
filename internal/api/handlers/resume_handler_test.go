package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/service"
	"jobboard-bff/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeResumeGenerator struct {
	err    error
	userID uuid.UUID
}

func (f *fakeResumeGenerator) Generate(ctx context.Context, userID uuid.UUID, req *dto.GenerateResumeRequest) (*dto.GenerateResumeResponse, error) {
	f.userID = userID
	if f.err != nil {
		return nil, f.err
	}
	return &dto.GenerateResumeResponse{
		Success:            true,
		ResumeContent:      "# Resume",
		ResumeTitle:        "Ada Lovelace - Engineer at Acme",
		GenerationMetadata: map[string]any{"model": "GigaChat"},
		ResumeID:           "3f1c8a52-9a57-4d43-bb52-0c0c1b8f4d2e",
	}, nil
}

func newResumeApp(gen ResumeGenerator, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != uuid.Nil {
			c.Locals(middleware.LocalUserID, userID)
		}
		return c.Next()
	})
	app.Post("/api/generate-resume", NewResumeHandler(gen, zap.NewNop()).GenerateResume)
	return app
}

func TestGenerateResume_Success(t *testing.T) {
	userID := uuid.New()
	gen := &fakeResumeGenerator{}
	app := newResumeApp(gen, userID)

	resp, err := app.Test(postJSON("/api/generate-resume", `{"candidateProfile":{},"jobDescription":{"id":"j1"},"atsScore":97}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "3f1c8a52-9a57-4d43-bb52-0c0c1b8f4d2e", body["resumeId"])
	assert.Equal(t, userID, gen.userID)
}

func TestGenerateResume_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "below threshold",
			err:        &service.ValidationError{Field: "atsScore", Message: "ATS score 80 is below the required threshold of 95"},
			wantStatus: http.StatusBadRequest,
			wantError:  "ATS score 80 is below the required threshold of 95",
		},
		{name: "anonymous", err: service.ErrUnauthenticated, wantStatus: http.StatusUnauthorized, wantError: "User not authenticated"},
		{name: "file", err: fmt.Errorf("%w: disk full", service.ErrResumeUpload), wantStatus: http.StatusInternalServerError, wantError: "Failed to upload resume file"},
		{name: "database", err: fmt.Errorf("%w: timeout", service.ErrResumeSave), wantStatus: http.StatusInternalServerError, wantError: "Failed to save resume to database"},
		{name: "llm", err: fmt.Errorf("failed to generate resume: quota"), wantStatus: http.StatusInternalServerError, wantError: "failed to generate resume: quota"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newResumeApp(&fakeResumeGenerator{err: tt.err}, uuid.New())

			resp, err := app.Test(postJSON("/api/generate-resume", `{"atsScore":99}`))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, map[string]any{"success": false, "error": tt.wantError}, decodeBody(t, resp))
		})
	}
}

func TestGenerateResume_AnonymousCallerHasNilID(t *testing.T) {
	gen := &fakeResumeGenerator{err: service.ErrUnauthenticated}
	app := newResumeApp(gen, uuid.Nil)

	resp, err := app.Test(postJSON("/api/generate-resume", `{"atsScore":99}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, uuid.Nil, gen.userID)
}
