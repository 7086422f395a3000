package kommo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type Client struct {
	apiToken string
	baseURL  string
	http     *http.Client
}

func NewClient(apiToken, baseURL string) *Client {
	return &Client{
		apiToken: apiToken,
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateLead cria o lead verificado no Kommo com a tag do pipeline
func (c *Client) CreateLead(ctx context.Context, input queue.LeadSyncPayload) (int, error) {
	if c.apiToken == "" {
		log.Println("⚠️ Kommo: API_TOKEN não configurado")
		return 0, fmt.Errorf("kommo não configurado")
	}

	leadData := []map[string]interface{}{
		{
			"name": fmt.Sprintf("%s - %s (%.0f%%)", input.Name, input.Country, input.Probability*100),
			"_embedded": map[string]interface{}{
				"tags": []map[string]interface{}{
					{"name": "lead_verificado"},
				},
			},
		},
	}

	payload, _ := json.Marshal(leadData)
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/leads", bytes.NewBuffer(payload))
	if err != nil {
		return 0, err
	}
	c.addAuthHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("erro ao criar lead: %d - %s", resp.StatusCode, string(body))
	}

	var result createLeadResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, err
	}

	if len(result.Embedded.Leads) == 0 {
		return 0, fmt.Errorf("lead não criado")
	}

	leadID := result.Embedded.Leads[0].ID
	log.Printf("✅ Kommo: Lead criado #%d para %s (%s)", leadID, input.Name, input.Country)

	return leadID, nil
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
