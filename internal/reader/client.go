// Package reader fetches the aggregated news from a headliner API server.
package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"headliner/internal/model"
)

const newsPath = "/api/news"

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Fetch(ctx context.Context) (model.NewsData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+newsPath, nil)
	if err != nil {
		return model.NewsData{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.NewsData{}, fmt.Errorf("fetching news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.NewsData{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var data model.NewsData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return model.NewsData{}, fmt.Errorf("decoding news: %w", err)
	}

	return data, nil
}
