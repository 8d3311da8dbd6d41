package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateScrapingConfigRequest_Changes(t *testing.T) {
	body := `{"id":"ignored","created_at":"2024-01-01T00:00:00Z","name":"Go roles","sites":["linkedin"],"is_active":false,"results_wanted":25}`

	var req UpdateScrapingConfigRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, map[string]any{
		"name":           "Go roles",
		"sites":          []string{"linkedin"},
		"is_active":      false,
		"results_wanted": 25,
	}, req.Changes())
}

func TestUpdateScrapingConfigRequest_Empty(t *testing.T) {
	var req UpdateScrapingConfigRequest
	assert.Empty(t, req.Changes())
}
