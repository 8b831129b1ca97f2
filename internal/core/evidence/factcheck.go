package evidence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pramana/truthlens/internal/core/model"
)

// FactCheckClient queries a structured fact-check index speaking the
// claims:search shape.
type FactCheckClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewFactCheckClient(baseURL, apiKey string) *FactCheckClient {
	return &FactCheckClient{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
	}
}

type claimsSearchResponse struct {
	Claims []model.Claim `json:"claims"`
}

func (c *FactCheckClient) Search(ctx context.Context, query, lang string, pageSize int) ([]model.Claim, error) {
	if c.APIKey == "" {
		// No credentials configured; the aggregator treats this as zero hits.
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("languageCode", lang)
	params.Set("pageSize", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/claims:search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Goog-Api-Key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fact-check search returned status %d", resp.StatusCode)
	}

	var parsed claimsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode fact-check response: %w", err)
	}
	return parsed.Claims, nil
}
