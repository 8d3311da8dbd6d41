package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"jobboard-bff/internal/service"
	"jobboard-bff/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeScoringService struct {
	mu     sync.Mutex
	status int
	body   string
	paths  []string
	bodies []map[string]any
}

func (f *fakeScoringService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)

	f.mu.Lock()
	f.paths = append(f.paths, r.URL.Path)
	f.bodies = append(f.bodies, decoded)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(f.body))
}

func (f *fakeScoringService) calls() ([]string, []map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...), append([]map[string]any(nil), f.bodies...)
}

func newScoringApp(t *testing.T, upstream *fakeScoringService) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := service.NewScoringClient(&config.ScoringConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, zap.NewNop())
	h := NewScoringHandler(client, zap.NewNop())

	app := fiber.New()
	app.Post("/api/ats-score", h.ATSScore)
	app.Post("/api/ats-score/batch", h.BatchATSScore)
	app.Post("/api/flask/parse-resume", h.ParseResume)
	return app
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestATSScore_Validation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantType string
	}{
		{name: "missing job description", body: `{"user_id":"u1"}`, wantType: "missing_required_fields"},
		{name: "empty job description", body: `{"job_description":"","user_id":"u1"}`, wantType: "missing_required_fields"},
		{name: "both missing", body: `{}`, wantType: "missing_required_fields"},
		{name: "missing user id", body: `{"job_description":"Go dev"}`, wantType: "missing_candidate_data"},
		{name: "zero user id", body: `{"job_description":"Go dev","user_id":0}`, wantType: "missing_candidate_data"},
		{name: "null user id", body: `{"job_description":"Go dev","user_id":null}`, wantType: "missing_candidate_data"},
		{name: "malformed body", body: `{"job_description":`, wantType: "invalid_request_body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := &fakeScoringService{status: http.StatusOK, body: `{}`}
			app := newScoringApp(t, upstream)

			resp, err := app.Test(postJSON("/api/ats-score", tt.body))
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decodeBody(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantType, body["error_type"])

			paths, _ := upstream.calls()
			assert.Empty(t, paths)
		})
	}
}

func TestATSScore_ForwardsExactlyTwoFields(t *testing.T) {
	upstream := &fakeScoringService{status: http.StatusOK, body: `{"success":true,"ats_score":91,"matched":["go"]}`}
	app := newScoringApp(t, upstream)

	resp, err := app.Test(postJSON("/api/ats-score",
		`{"job_description":"Go dev","user_id":"u1","email":"jane@example.com","resume":"secret"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"ats_score":91,"matched":["go"]}`, string(raw))

	paths, bodies := upstream.calls()
	require.Len(t, paths, 1)
	assert.Equal(t, "/api/ats-score", paths[0])
	assert.Equal(t, map[string]any{"user_id": "u1", "job_description": "Go dev"}, bodies[0])
}

func TestATSScore_ForwardsNonStringValuesUnchanged(t *testing.T) {
	upstream := &fakeScoringService{status: http.StatusOK, body: `{"success":true}`}
	app := newScoringApp(t, upstream)

	resp, err := app.Test(postJSON("/api/ats-score",
		`{"job_description":{"title":"Go dev","skills":["go"]},"user_id":42}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	paths, bodies := upstream.calls()
	require.Len(t, paths, 1)
	assert.Equal(t, map[string]any{
		"user_id":         float64(42),
		"job_description": map[string]any{"title": "Go dev", "skills": []any{"go"}},
	}, bodies[0])
}

func TestATSScore_RelaysUpstreamStatus(t *testing.T) {
	upstream := &fakeScoringService{
		status: http.StatusServiceUnavailable,
		body:   `{"error":"rate limited","error_type":"throttled"}`,
	}
	app := newScoringApp(t, upstream)

	resp, err := app.Test(postJSON("/api/ats-score", `{"job_description":"Go dev","user_id":"u1"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"success":    false,
		"error":      "rate limited",
		"error_type": "throttled",
	}, decodeBody(t, resp))
}

func TestATSScore_UpstreamDefaults(t *testing.T) {
	app := newScoringApp(t, &fakeScoringService{status: http.StatusNotFound, body: `{"detail":"no such user"}`})

	resp, err := app.Test(postJSON("/api/ats-score", `{"job_description":"Go dev","user_id":"u1"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"success":    false,
		"error":      "Failed to calculate ATS score",
		"error_type": "ats_scoring_error",
	}, decodeBody(t, resp))
}

func TestATSScore_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := service.NewScoringClient(&config.ScoringConfig{BaseURL: url, Timeout: time.Second}, zap.NewNop())
	app := fiber.New()
	app.Post("/api/ats-score", NewScoringHandler(client, zap.NewNop()).ATSScore)

	resp, err := app.Test(postJSON("/api/ats-score", `{"job_description":"Go dev","user_id":"u1"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "server_error", body["error_type"])
}

func TestBatchATSScore(t *testing.T) {
	t.Run("invalid list", func(t *testing.T) {
		upstream := &fakeScoringService{status: http.StatusOK, body: `{}`}
		app := newScoringApp(t, upstream)

		resp, err := app.Test(postJSON("/api/ats-score/batch", `{"job_descriptions":[],"user_id":"u1"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "invalid_job_descriptions", body["error_type"])
		assert.Equal(t, "job_descriptions must be a non-empty array", body["error"])
	})

	t.Run("forwards list", func(t *testing.T) {
		upstream := &fakeScoringService{status: http.StatusOK, body: `{"success":true,"results":[{"score":80}]}`}
		app := newScoringApp(t, upstream)

		resp, err := app.Test(postJSON("/api/ats-score/batch", `{"job_descriptions":["a","b"],"user_id":"u1","debug":true}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		paths, bodies := upstream.calls()
		require.Len(t, paths, 1)
		assert.Equal(t, "/api/ats-score/batch", paths[0])
		assert.Equal(t, map[string]any{"user_id": "u1", "job_descriptions": []any{"a", "b"}}, bodies[0])
	})
}

func TestParseResumeProxy(t *testing.T) {
	t.Run("blank text", func(t *testing.T) {
		app := newScoringApp(t, &fakeScoringService{status: http.StatusOK, body: `{}`})

		resp, err := app.Test(postJSON("/api/flask/parse-resume", `{"resume_text":"   "}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "empty_resume_text", decodeBody(t, resp)["error_type"])
	})

	t.Run("relays parsed resume", func(t *testing.T) {
		upstream := &fakeScoringService{status: http.StatusOK, body: `{"success":true,"skills":["go"]}`}
		app := newScoringApp(t, upstream)

		resp, err := app.Test(postJSON("/api/flask/parse-resume", `{"resume_text":"Go developer","user_id":"ignored"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		paths, bodies := upstream.calls()
		require.Len(t, paths, 1)
		assert.Equal(t, "/api/parse-resume", paths[0])
		assert.Equal(t, map[string]any{"resume_text": "Go developer"}, bodies[0])
	})
}
