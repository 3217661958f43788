package v1

import (
	"jobswipe/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Users           *handler.UserHandler
	Recommendations *handler.JobRecommendationHandler
	Jobs            *handler.JobHandler
	Swipes          *handler.SwipeHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	RegisterUsers(r.Group("/users"), h.Users, h.Recommendations)
	RegisterJobs(r.Group("/jobs"), h.Jobs)
	RegisterSwipes(r.Group("/swipes"), h.Swipes)
}
