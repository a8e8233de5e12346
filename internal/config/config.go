package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	DefaultPort            = "8080"
	DefaultUpstreamTimeout = 30 * time.Second
	DefaultFrontendOrigin  = "http://localhost:3000"
)

// Server holds the API settings read from the environment.
type Server struct {
	NewsAPIKey         string
	Port               string
	AllowedOrigins     []string
	RedisURL           string
	UpstreamTimeout    time.Duration
	NewsAPIEndpoint    string
	HackerNewsEndpoint string
}

// LoadServer reads the environment. Call godotenv.Load first to pick up a .env file.
func LoadServer() Server {
	cfg := Server{
		NewsAPIKey:         os.Getenv("NEWS_API_KEY"),
		Port:               getenv("PORT", DefaultPort),
		AllowedOrigins:     []string{DefaultFrontendOrigin},
		RedisURL:           os.Getenv("REDIS_URL"),
		UpstreamTimeout:    DefaultUpstreamTimeout,
		NewsAPIEndpoint:    os.Getenv("NEWS_API_ENDPOINT"),
		HackerNewsEndpoint: os.Getenv("HACKER_NEWS_ENDPOINT"),
	}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, frontendURL)
	}

	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			slog.Warn("invalid UPSTREAM_TIMEOUT, using default", "value", raw, "default", DefaultUpstreamTimeout)
		} else {
			cfg.UpstreamTimeout = d
		}
	}

	if cfg.NewsAPIKey == "" {
		slog.Warn("NEWS_API_KEY is not set, Korean news will be empty")
	}

	return cfg
}

func (s Server) Addr() string {
	return ":" + s.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
