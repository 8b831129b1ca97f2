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

// NewsClient is the general news-search fallback used when the fact-check
// index has nothing on a claim.
type NewsClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewNewsClient(baseURL, apiKey string) *NewsClient {
	return &NewsClient{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
	}
}

// newsResult tolerates the field aliases seen across news search providers.
type newsResult struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	Description string `json:"description"`
	Link        string `json:"link"`
	SourceURL   string `json:"sourceUrl"`
	Source      string `json:"source"`
}

type newsSearchResponse struct {
	Results []newsResult `json:"results"`
}

func (c *NewsClient) Search(ctx context.Context, query, lang string, limit int) ([]model.EvidenceItem, error) {
	if c.BaseURL == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("lang", lang)
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news search returned status %d", resp.StatusCode)
	}

	var parsed newsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	items := make([]model.EvidenceItem, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if len(items) >= limit {
			break
		}
		items = append(items, model.EvidenceItem{
			Title:   r.Title,
			Snippet: coalesce(r.Snippet, r.Description),
			URL:     coalesce(r.Link, r.SourceURL),
			Source:  r.Source,
		})
	}
	return items, nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
