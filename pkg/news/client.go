package news

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"headliner/internal/model"
)

const (
	DefaultTimeout = 30 * time.Second

	// CacheTTL is how long a successful upstream body may be served from a ResponseCache.
	CacheTTL = time.Hour

	maxBodySize    = int64(5 * 1024 * 1024)
	cacheKeyPrefix = "headliner:upstream:"
)

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrMalformedResponse   = errors.New("malformed upstream response")
)

type NewsClient interface {
	Fetch(ctx context.Context) ([]model.Article, error)
	Name() string
}

// ResponseCache stores raw upstream response bodies. Implementations may be shared
// between server instances; lookups and writes are best effort.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

type Option func(*fetcher)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(f *fetcher) {
		f.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(f *fetcher) {
		if timeout > 0 {
			f.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

func WithResponseCache(cache ResponseCache) Option {
	return func(f *fetcher) {
		f.cache = cache
	}
}

func WithEndpoint(endpoint string) Option {
	return func(f *fetcher) {
		if endpoint != "" {
			f.endpoint = endpoint
		}
	}
}

type fetcher struct {
	httpClient *http.Client
	cache      ResponseCache
	endpoint   string
}

func newFetcher(endpoint string, opts []Option) fetcher {
	f := fetcher{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		endpoint:   endpoint,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// get issues one GET and returns the body with the status code. Transport failures are
// reported as ErrUpstreamUnavailable; non-2xx statuses are left for the caller to judge.
func (f *fetcher) get(ctx context.Context, url string) ([]byte, int, error) {
	key := cacheKey(url)

	if f.cache != nil {
		body, ok, err := f.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("response cache lookup failed", "error", err)
		} else if ok {
			return body, http.StatusOK, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: reading body: %w", ErrUpstreamUnavailable, err)
	}

	if f.cache != nil && isSuccess(resp.StatusCode) {
		if err := f.cache.Set(ctx, key, body, CacheTTL); err != nil {
			slog.Warn("response cache store failed", "error", err)
		}
	}

	return body, resp.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// cacheKey hashes the request URL so credentials in the query string never reach the cache.
func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%s%x", cacheKeyPrefix, sum)
}
