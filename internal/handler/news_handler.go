package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"headliner/internal/aggregator"
	"headliner/internal/model"
)

const fetchFailedMessage = "Failed to fetch news"

type NewsProvider interface {
	Latest(ctx context.Context) (model.NewsData, error)
	Status() aggregator.Status
}

type NewsHandler struct {
	news NewsProvider
}

func NewNewsHandler(news NewsProvider) *NewsHandler {
	return &NewsHandler{news: news}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	data, err := h.news.Latest(c.Request.Context())
	if err != nil {
		slog.Error("error fetching news", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fetchFailedMessage})
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	status := h.news.Status()

	res := HealthResponse{
		Status: "healthy",
		Cache:  "cold",
	}

	if status.Warm {
		res.Cache = "warm"
	}

	if status.FetchedAt != nil {
		fetchedAt := status.FetchedAt.Format(time.RFC3339)
		res.FetchedAt = &fetchedAt
	}

	c.JSON(http.StatusOK, res)
}

// Register mounts the news routes on r.
func (h *NewsHandler) Register(r gin.IRoutes) {
	r.GET("/api/news", h.GetNews)
	r.GET("/health", h.GetHealth)
}
