package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"client-portal/internal/models"
)

// Client calls the external job scraper. The scraper answers
// GET <baseURL>?company=&keyword= with {"jobs": [...]}.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type jobsResponse struct {
	Jobs []models.JobPosting `json:"jobs"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) FetchJobs(ctx context.Context, company, keyword string) ([]models.JobPosting, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid scraper url: %w", err)
	}
	q := u.Query()
	if company != "" {
		q.Set("company", company)
	}
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper returned status %d, body: %s", resp.StatusCode, string(body))
	}

	var result jobsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if result.Jobs == nil {
		result.Jobs = []models.JobPosting{}
	}

	return result.Jobs, nil
}
