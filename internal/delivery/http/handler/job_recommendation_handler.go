package handler

import (
	"jobswipe/internal/delivery/http/dto"
	"jobswipe/internal/pkg/response"
	"jobswipe/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc           usecase.JobRecommendationUsecase
	defaultLimit int
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase, defaultLimit int) *JobRecommendationHandler {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &JobRecommendationHandler{uc: uc, defaultLimit: defaultLimit}
}

// RegisterRoutes mounts under the users group: /users/:id/recommendations.
func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/recommendations", h.GetRecommendations)
}

func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	limit, err := parseQueryInt(c, "limit", h.defaultLimit)
	if err != nil {
		return err
	}

	recs, err := h.uc.Recommend(requestContext(c), userID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobRecommendationResponses(recs))
}
