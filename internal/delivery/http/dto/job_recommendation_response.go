package dto

import (
	"jobswipe/internal/domain/matching"

	"github.com/google/uuid"
)

type JobRecommendationResponse struct {
	JobID        uuid.UUID `json:"job_id"`
	ContentScore float64   `json:"content_score"`
}

func NewJobRecommendationResponses(recs []matching.Recommendation) []JobRecommendationResponse {
	out := make([]JobRecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, JobRecommendationResponse{JobID: r.JobID, ContentScore: r.ContentScore})
	}
	return out
}
