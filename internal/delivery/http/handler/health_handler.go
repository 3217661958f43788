package handler

import (
	"context"
	"time"

	"jobswipe/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type CacheStatus interface {
	Available() bool
}

type HealthHandler struct {
	db    Pinger
	cache CacheStatus
}

func NewHealthHandler(db Pinger, cache CacheStatus) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := fiber.Map{"database": "up", "cache": "bypassed"}
	if h.cache != nil && h.cache.Available() {
		data["cache"] = "up"
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			data["database"] = "down"
			return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, data)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
