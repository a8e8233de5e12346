package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-playground/assert/v2"

	"headliner/internal/aggregator"
	"headliner/internal/cache"
	"headliner/internal/model"
	"headliner/pkg/news"
)

type hackerNewsServer struct {
	mu      sync.Mutex
	fail    int64
	fetched []int64
}

func (s *hackerNewsServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/topstories.json" {
		json.NewEncoder(w).Encode([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
		return
	}

	var id int64
	if _, err := fmt.Sscanf(r.URL.Path, "/item/%d.json", &id); err != nil {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	s.fetched = append(s.fetched, id)
	s.mu.Unlock()

	if id == s.fail {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	story := map[string]interface{}{
		"id":    id,
		"title": fmt.Sprintf("Story %d", id),
		"time":  1700000000,
		"score": 10,
	}
	if id%2 == 0 {
		story["url"] = fmt.Sprintf("https://example.com/%d", id)
		story["descendants"] = 3
	}
	json.NewEncoder(w).Encode(story)
}

func newUpstreamRouter(t *testing.T, newsAPIBody string, hn *hackerNewsServer) (http.Handler, *cache.Cache) {
	t.Helper()

	newsAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/everything" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(newsAPIBody))
	}))
	t.Cleanup(newsAPI.Close)

	hnSrv := httptest.NewServer(hn)
	t.Cleanup(hnSrv.Close)

	korean := news.NewNewsAPIClient("", news.WithEndpoint(newsAPI.URL))
	tech := news.NewHackerNewsClient(news.WithEndpoint(hnSrv.URL))

	c := cache.New()
	return newTestRouter(aggregator.New(korean, tech, c)), c
}

func TestGetNews_NewsAPIErrorStatusStillServesTech(t *testing.T) {
	hn := &hackerNewsServer{}
	r, c := newUpstreamRouter(t, `{"status":"error","code":"rateLimited","message":"quota"}`, hn)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/news", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	json.Unmarshal(w.Body.Bytes(), &raw)
	assert.Equal(t, "[]", string(raw["korean"]))

	var res model.NewsData
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 10, len(res.Tech))
	for i, a := range res.Tech {
		assert.Equal(t, fmt.Sprintf("Story %d", i+1), a.Title)
		assert.Equal(t, "Hacker News", a.SourceName())
	}
	assert.Equal(t, "https://news.ycombinator.com/item?id=1", res.Tech[0].URL)
	assert.Equal(t, "10 points | 0 comments", res.Tech[0].Description)
	assert.Equal(t, "https://example.com/2", res.Tech[1].URL)
	assert.Equal(t, "10 points | 3 comments", res.Tech[1].Description)
	assert.Equal(t, "2023-11-14T22:13:20.000Z", res.Tech[0].PublishedAt)
	assert.Equal(t, true, c.Warm())
}

func TestGetNews_OneStoryFailureFailsRequest(t *testing.T) {
	hn := &hackerNewsServer{fail: 4}
	r, c := newUpstreamRouter(t, `{"status":"ok","articles":[{"title":"국내","description":"요약","url":"https://example.com/k","publishedAt":"2024-01-01T00:00:00Z","source":{"name":"연합뉴스"}}]}`, hn)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/news", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"Failed to fetch news"}`, w.Body.String())
	assert.Equal(t, false, c.Warm())

	hn.mu.Lock()
	defer hn.mu.Unlock()
	for _, id := range hn.fetched {
		assert.Equal(t, true, id <= 10)
	}
}
