package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"campusq/internal/queue"
	"campusq/internal/response"
	"campusq/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Handler bundles the queue service, the WebSocket hub and the optional
// redis cache behind the HTTP surface.
type Handler struct {
	svc   *queue.Service
	hub   *ws.Hub
	redis *redis.Client
}

func New(svc *queue.Service, hub *ws.Hub, redisClient *redis.Client) *Handler {
	return &Handler{svc: svc, hub: hub, redis: redisClient}
}

// The dashboard polls every 5 seconds, so cached reads only need to
// survive one polling interval.
const queueCacheTTL = 5 * time.Second

func queueCacheKey(id string) string {
	return "queue:" + id
}

func (h *Handler) cachedQueue(ctx context.Context, id string) ([]byte, bool) {
	if h.redis == nil {
		return nil, false
	}
	data, err := h.redis.Get(ctx, queueCacheKey(id)).Bytes()
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

func (h *Handler) cacheQueue(ctx context.Context, id string, data []byte) {
	if h.redis == nil {
		return
	}
	h.redis.Set(ctx, queueCacheKey(id), data, queueCacheTTL)
}

func (h *Handler) invalidateQueue(ctx context.Context, id string) {
	if h.redis == nil {
		return
	}
	h.redis.Del(ctx, queueCacheKey(id))
}

// respondError maps service errors onto the boundary taxonomy. Store
// internals are never leaked.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queue.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		})
	case errors.Is(err, queue.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "QUEUE_NOT_FOUND",
			Message: "Queue not found",
		})
	case errors.Is(err, queue.ErrConflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "CONFLICT",
			Message: "The queue was updated concurrently, please retry",
		})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Storage operation failed",
		})
	}
}
