package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"headliner/db"
	"headliner/internal/aggregator"
	"headliner/internal/cache"
	"headliner/internal/config"
	"headliner/internal/handler"
	"headliner/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []news.Option{news.WithTimeout(cfg.UpstreamTimeout)}

	if cfg.RedisURL != "" {
		client, err := db.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			slog.Warn("redis unavailable, upstream responses will not be shared", "error", err)
		} else {
			responseCache := db.NewResponseCache(client)
			defer responseCache.Close()
			opts = append(opts, news.WithResponseCache(responseCache))
		}
	}

	korean := news.NewNewsAPIClient(cfg.NewsAPIKey, append([]news.Option{news.WithEndpoint(cfg.NewsAPIEndpoint)}, opts...)...)
	tech := news.NewHackerNewsClient(append([]news.Option{news.WithEndpoint(cfg.HackerNewsEndpoint)}, opts...)...)

	newsHandler := handler.NewNewsHandler(aggregator.New(korean, tech, cache.New()))

	r := gin.Default()

	slog.Info("AllowOrigins URL:", "urls", cfg.AllowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	newsHandler.Register(r)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("error shutting down server", "error", err)
		}
	}()

	slog.Info("listening", "addr", srv.Addr)

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("error starting server: %v", err)
	}
}
