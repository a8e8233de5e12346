// Package cache holds the aggregated news between refreshes.
package cache

import (
	"sync"
	"time"

	"headliner/internal/model"
)

const DefaultDuration = time.Hour

// ExpiryPolicy reports whether a value written at fetchedAt is stale at now.
type ExpiryPolicy func(fetchedAt, now time.Time) bool

// MaxAge expires values once they are d old.
func MaxAge(d time.Duration) ExpiryPolicy {
	return func(fetchedAt, now time.Time) bool {
		return now.Sub(fetchedAt) >= d
	}
}

// Cache is a single slot holding the last complete NewsData. It is overwritten whole on
// every Set and never merged.
type Cache struct {
	mu        sync.RWMutex
	value     *model.NewsData
	fetchedAt time.Time
	expired   ExpiryPolicy
	now       func() time.Time
}

type Option func(*Cache)

func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

func WithExpiry(policy ExpiryPolicy) Option {
	return func(c *Cache) {
		c.expired = policy
	}
}

func New(opts ...Option) *Cache {
	c := &Cache{
		expired: MaxAge(DefaultDuration),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value when it is still fresh.
func (c *Cache) Get() (model.NewsData, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.value == nil || c.expired(c.fetchedAt, c.now()) {
		return model.NewsData{}, false
	}
	return *c.value, true
}

func (c *Cache) Set(data model.NewsData) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = &data
	c.fetchedAt = now
}

// FetchedAt returns the time of the last Set. ok is false before the first write.
func (c *Cache) FetchedAt() (t time.Time, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.value == nil {
		return time.Time{}, false
	}
	return c.fetchedAt, true
}

// Warm reports whether Get would currently hit.
func (c *Cache) Warm() bool {
	_, ok := c.Get()
	return ok
}
