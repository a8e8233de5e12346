// Package aggregator merges the Korean search results and the tech top stories into
// one NewsData, serving it from the cache while it is fresh.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"headliner/internal/cache"
	"headliner/internal/model"
)

// Source is one upstream feeding a category. news.NewsAPIClient and
// news.HackerNewsClient satisfy it.
type Source interface {
	Fetch(ctx context.Context) ([]model.Article, error)
	Name() string
}

type Aggregator struct {
	korean Source
	tech   Source
	cache  *cache.Cache
	group  singleflight.Group
}

func New(korean, tech Source, c *cache.Cache) *Aggregator {
	return &Aggregator{
		korean: korean,
		tech:   tech,
		cache:  c,
	}
}

// Latest returns the cached news when warm. When cold, concurrent callers share a single
// refresh; its result is written to the cache only if both sources succeed.
func (a *Aggregator) Latest(ctx context.Context) (model.NewsData, error) {
	if data, ok := a.cache.Get(); ok {
		return data, nil
	}

	v, err, shared := a.group.Do("news", func() (interface{}, error) {
		// a caller that raced the previous refresh finds the slot already warm
		if data, ok := a.cache.Get(); ok {
			return data, nil
		}

		// the refresh outlives any single caller that gives up on it
		data, err := a.refresh(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		a.cache.Set(data)
		slog.Info("news cache refreshed", "korean", len(data.Korean), "tech", len(data.Tech))
		return data, nil
	})
	if err != nil {
		return model.NewsData{}, err
	}

	if shared {
		slog.Debug("joined in-flight news refresh")
	}

	return v.(model.NewsData), nil
}

func (a *Aggregator) refresh(ctx context.Context) (model.NewsData, error) {
	var data model.NewsData

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		articles, err := a.korean.Fetch(gctx)
		if err != nil {
			return fmt.Errorf("%s: %w", a.korean.Name(), err)
		}
		data.Korean = articles
		return nil
	})

	g.Go(func() error {
		articles, err := a.tech.Fetch(gctx)
		if err != nil {
			return fmt.Errorf("%s: %w", a.tech.Name(), err)
		}
		data.Tech = articles
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.NewsData{}, err
	}

	if data.Korean == nil {
		data.Korean = []model.Article{}
	}
	if data.Tech == nil {
		data.Tech = []model.Article{}
	}

	return data, nil
}

// Status describes the cache for health reporting.
func (a *Aggregator) Status() Status {
	s := Status{Warm: a.cache.Warm()}
	if t, ok := a.cache.FetchedAt(); ok {
		s.FetchedAt = &t
	}
	return s
}
