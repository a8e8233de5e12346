package news

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-playground/assert/v2"
)

func newNewsAPITestClient(t *testing.T, handler http.HandlerFunc) *NewsAPIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewNewsAPIClient("test-key", WithHTTPClient(srv.Client()), WithEndpoint(srv.URL))
}

func TestNewsAPIFetch(t *testing.T) {
	var gotQuery map[string]string

	client := newNewsAPITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"path":     r.URL.Path,
			"q":        r.URL.Query().Get("q"),
			"language": r.URL.Query().Get("language"),
			"sortBy":   r.URL.Query().Get("sortBy"),
			"pageSize": r.URL.Query().Get("pageSize"),
			"apiKey":   r.URL.Query().Get("apiKey"),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":       "ok",
			"totalResults": 2,
			"articles": []map[string]interface{}{
				{
					"source":      map[string]interface{}{"id": nil, "name": "연합뉴스"},
					"title":       "한국 경제 성장률 발표",
					"description": "짧은 설명",
					"url":         "https://example.com/a",
					"publishedAt": "2024-01-01T09:00:00Z",
				},
				{
					"title":       "No description",
					"description": nil,
					"url":         "https://example.com/b",
					"publishedAt": "2024-01-01T08:00:00Z",
				},
			},
		})
	})

	articles, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, "/everything", gotQuery["path"])
	assert.Equal(t, koreanQuery, gotQuery["q"])
	assert.Equal(t, "ko", gotQuery["language"])
	assert.Equal(t, "publishedAt", gotQuery["sortBy"])
	assert.Equal(t, "10", gotQuery["pageSize"])
	assert.Equal(t, "test-key", gotQuery["apiKey"])

	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "한국 경제 성장률 발표", articles[0].Title)
	assert.Equal(t, "짧은 설명", articles[0].Description)
	assert.Equal(t, "연합뉴스", articles[0].Source.Name)
	assert.Equal(t, "2024-01-01T09:00:00Z", articles[0].PublishedAt)

	assert.Equal(t, "", articles[1].Description)
	assert.Equal(t, true, articles[1].Source == nil)
}

func TestNewsAPIFetchTruncatesLongDescription(t *testing.T) {
	client := newNewsAPITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"articles": []map[string]interface{}{
				{
					"title":       "T",
					"description": strings.Repeat("d", 150),
					"url":         "u",
					"publishedAt": "2024-01-01T00:00:00Z",
				},
			},
		})
	})

	articles, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, 103, len(articles[0].Description))
	assert.Equal(t, strings.Repeat("d", 100)+"...", articles[0].Description)
}

func TestNewsAPIFetchErrorStatusYieldsEmpty(t *testing.T) {
	client := newNewsAPITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "error",
			"code":    "rateLimited",
			"message": "quota",
		})
	})

	articles, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.NotEqual(t, nil, articles)
	assert.Equal(t, 0, len(articles))
}

func TestNewsAPIFetchMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>bad gateway</html>"},
		{"unknown status", `{"status":"maybe"}`},
		{"wrong article shape", `{"status":"ok","articles":[{"title":42}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newNewsAPITestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := client.Fetch(context.Background())

			assert.Equal(t, true, errors.Is(err, ErrMalformedResponse))
		})
	}
}

func TestNewsAPIFetchUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	client := NewNewsAPIClient("", WithEndpoint(endpoint))

	_, err := client.Fetch(context.Background())

	assert.Equal(t, true, errors.Is(err, ErrUpstreamUnavailable))
}

func TestTruncateDescription(t *testing.T) {
	exact := strings.Repeat("a", 100)
	assert.Equal(t, exact, truncateDescription(exact))
	assert.Equal(t, "short", truncateDescription("short"))
	assert.Equal(t, exact+"...", truncateDescription(exact+"b"))

	korean := strings.Repeat("한", 120)
	got := truncateDescription(korean)
	assert.Equal(t, 103, utf8.RuneCountInString(got))
	assert.Equal(t, true, strings.HasSuffix(got, "..."))
	assert.Equal(t, true, utf8.ValidString(got))
}

func TestCacheKeyHidesCredentials(t *testing.T) {
	url := "https://newsapi.org/v2/everything?apiKey=secret"

	key := cacheKey(url)

	assert.Equal(t, key, cacheKey(url))
	assert.Equal(t, false, strings.Contains(key, "secret"))
	assert.Equal(t, true, strings.HasPrefix(key, cacheKeyPrefix))
	assert.NotEqual(t, key, cacheKey(url+"x"))
}
