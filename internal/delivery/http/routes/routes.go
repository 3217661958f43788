package routes

import (
	"jobswipe/internal/delivery/http/handler"
	v1 "jobswipe/internal/delivery/http/routes/v1"
	"jobswipe/internal/metrics"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	v1     v1.Handlers
	apiMW  []fiber.Handler
}

func NewRegistry(health *handler.HealthHandler, handlers v1.Handlers) *Registry {
	return &Registry{health: health, v1: handlers}
}

// UseAPI adds middleware that only runs for /api routes.
func (r *Registry) UseAPI(h fiber.Handler) *Registry {
	if h != nil {
		r.apiMW = append(r.apiMW, h)
	}
	return r
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	app.Get("/metrics", metrics.Handler())
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	for _, h := range r.apiMW {
		api.Use(h)
	}
	RegisterV1(api.Group("/v1"), r.v1)
}
