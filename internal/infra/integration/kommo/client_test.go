package kommo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

// TestCreateLeadSuccess - Lead verificado vira lead no Kommo com a tag certa
func TestCreateLeadSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leads", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		var body []map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Contains(t, body[0]["name"], "Peter")
		assert.Contains(t, body[0]["name"], "US")

		w.Write([]byte(`{"_embedded": {"leads": [{"id": 987}]}}`))
	}))
	defer server.Close()

	client := NewClient("token-123", server.URL)

	leadID, err := client.CreateLead(context.Background(), queue.LeadSyncPayload{
		LeadID:      "id-1",
		Name:        "Peter",
		Country:     "US",
		Probability: 0.73,
	})

	assert.NoError(t, err)
	assert.Equal(t, 987, leadID)
}

// TestCreateLeadAPIError
func TestCreateLeadAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"title": "Unauthorized"}`))
	}))
	defer server.Close()

	client := NewClient("token-expirado", server.URL)

	leadID, err := client.CreateLead(context.Background(), queue.LeadSyncPayload{Name: "Peter"})

	assert.Error(t, err)
	assert.Equal(t, 0, leadID)
}

// TestCreateLeadMissingToken - Sem token configurado nem tenta a chamada
func TestCreateLeadMissingToken(t *testing.T) {
	client := NewClient("", "https://example.kommo.com/api/v4")

	leadID, err := client.CreateLead(context.Background(), queue.LeadSyncPayload{Name: "Peter"})

	assert.Error(t, err)
	assert.Equal(t, 0, leadID)
}
