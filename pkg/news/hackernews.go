package news

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"headliner/internal/model"
)

const (
	DefaultHackerNewsEndpoint = "https://hacker-news.firebaseio.com/v0"
	HackerNewsName            = "Hacker News"

	permalinkBase = "https://news.ycombinator.com"
	topStories    = 10

	// isoMillis matches the millisecond precision browsers emit for ISO-8601 dates.
	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

type HackerNewsClient struct {
	fetcher
}

func NewHackerNewsClient(opts ...Option) *HackerNewsClient {
	return &HackerNewsClient{fetcher: newFetcher(DefaultHackerNewsEndpoint, opts)}
}

func (c *HackerNewsClient) Name() string {
	return HackerNewsName
}

// Fetch returns the first ten top stories in rank order. Story details are fetched
// concurrently; any single failure fails the whole call.
func (c *HackerNewsClient) Fetch(ctx context.Context) ([]model.Article, error) {
	ids, err := c.topStoryIDs(ctx)
	if err != nil {
		return nil, err
	}

	if len(ids) > topStories {
		ids = ids[:topStories]
	}

	articles := make([]model.Article, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			article, err := c.fetchStory(gctx, id)
			if err != nil {
				return err
			}
			articles[i] = article
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (c *HackerNewsClient) topStoryIDs(ctx context.Context) ([]int64, error) {
	body, status, err := c.get(ctx, c.endpoint+"/topstories.json")
	if err != nil {
		return nil, fmt.Errorf("hackernews fetch: %w", err)
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("hackernews fetch: %w: topstories status %d", ErrUpstreamUnavailable, status)
	}

	var ids []int64
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("hackernews decode: %w: %w", ErrMalformedResponse, err)
	}

	return ids, nil
}

func (c *HackerNewsClient) fetchStory(ctx context.Context, id int64) (model.Article, error) {
	body, status, err := c.get(ctx, fmt.Sprintf("%s/item/%d.json", c.endpoint, id))
	if err != nil {
		return model.Article{}, fmt.Errorf("hackernews fetch item %d: %w", id, err)
	}
	if !isSuccess(status) {
		return model.Article{}, fmt.Errorf("hackernews fetch item %d: %w: status %d", id, ErrUpstreamUnavailable, status)
	}

	var story *hnStory
	if err := json.Unmarshal(body, &story); err != nil {
		return model.Article{}, fmt.Errorf("hackernews decode item %d: %w: %w", id, ErrMalformedResponse, err)
	}
	if story == nil || story.ID == 0 {
		return model.Article{}, fmt.Errorf("hackernews decode item %d: %w: missing story", id, ErrMalformedResponse)
	}

	return story.toArticle(id), nil
}

func (s *hnStory) toArticle(id int64) model.Article {
	link := s.URL
	if link == "" {
		link = Permalink(id)
	}

	descendants := 0
	if s.Descendants != nil {
		descendants = *s.Descendants
	}
	score := s.Score

	return model.Article{
		Title:       s.Title,
		Description: fmt.Sprintf("%d points | %d comments", score, descendants),
		URL:         link,
		PublishedAt: time.Unix(s.Time, 0).UTC().Format(isoMillis),
		Source:      &model.Source{Name: HackerNewsName},
		Score:       &score,
		Descendants: &descendants,
	}
}

// Permalink is the discussion page for a story, used when it has no external link.
func Permalink(id int64) string {
	return fmt.Sprintf("%s/item?id=%d", permalinkBase, id)
}

type hnStory struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Time        int64  `json:"time"`
	Score       int    `json:"score"`
	Descendants *int   `json:"descendants"`
}
