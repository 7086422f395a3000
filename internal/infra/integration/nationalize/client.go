package nationalize

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.nationalize.io"

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup consulta a API e devolve o palpite de maior probabilidade.
// Retorna nil quando a API não conhece o nome.
func (c *Client) Lookup(ctx context.Context, name string) (*CountryGuess, error) {
	endpoint := fmt.Sprintf("%s/?name=%s", c.baseURL, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request nationalize: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nationalize respondeu %d: %s", resp.StatusCode, string(body))
	}

	var result lookupResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta nationalize: %w", err)
	}

	// A API já devolve os candidatos ordenados por probabilidade decrescente.
	// Só o primeiro interessa.
	if len(result.Country) == 0 {
		return nil, nil
	}

	top := result.Country[0]
	return &CountryGuess{
		CountryID:   top.CountryID,
		Probability: top.Probability,
	}, nil
}
