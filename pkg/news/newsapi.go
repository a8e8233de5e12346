package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"headliner/internal/model"
)

const (
	DefaultNewsAPIEndpoint = "https://newsapi.org/v2"

	koreanQuery       = "(korea OR 한국) AND (경제 OR 정치 OR 사회)"
	pageSize          = 10
	descriptionLimit  = 100
	descriptionMarker = "..."
)

type NewsAPIClient struct {
	fetcher
	apiKey string
}

func NewNewsAPIClient(apiKey string, opts ...Option) *NewsAPIClient {
	return &NewsAPIClient{
		fetcher: newFetcher(DefaultNewsAPIEndpoint, opts),
		apiKey:  apiKey,
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

// Fetch returns the latest Korean headlines. An error envelope from NewsAPI (bad key,
// quota) is logged and yields an empty list rather than an error.
func (c *NewsAPIClient) Fetch(ctx context.Context) ([]model.Article, error) {
	body, status, err := c.get(ctx, c.searchURL())
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}

	var raw newsAPIResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w: %w", ErrMalformedResponse, err)
	}

	switch raw.Status {
	case "ok":
	case "error":
		slog.Error("newsapi returned error status", "code", raw.Code, "message", raw.Message, "http_status", status)
		return []model.Article{}, nil
	default:
		return nil, fmt.Errorf("newsapi decode: %w: unexpected status %q (http %d)", ErrMalformedResponse, raw.Status, status)
	}

	articles := make([]model.Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		a := model.Article{
			Title:       item.Title,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
		}

		if item.Description != nil && *item.Description != "" {
			a.Description = truncateDescription(*item.Description)
		}

		if item.Source != nil && item.Source.Name != "" {
			a.Source = &model.Source{Name: item.Source.Name}
		}

		articles = append(articles, a)
	}

	return articles, nil
}

func (c *NewsAPIClient) searchURL() string {
	params := url.Values{}
	params.Set("q", koreanQuery)
	params.Set("language", "ko")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprint(pageSize))
	params.Set("apiKey", c.apiKey)
	return c.endpoint + "/everything?" + params.Encode()
}

// truncateDescription keeps the first descriptionLimit characters and marks the cut.
func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= descriptionLimit {
		return s
	}
	return string(runes[:descriptionLimit]) + descriptionMarker
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	URL         string         `json:"url"`
	PublishedAt string         `json:"publishedAt"`
	Source      *newsAPISource `json:"source"`
}

type newsAPISource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}
