package v1

import (
	"jobswipe/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterUsers(r fiber.Router, userHandler *handler.UserHandler, recommendationHandler *handler.JobRecommendationHandler) {
	if r == nil {
		return
	}
	if userHandler != nil {
		userHandler.RegisterRoutes(r)
	}
	if recommendationHandler != nil {
		recommendationHandler.RegisterRoutes(r)
	}
}
