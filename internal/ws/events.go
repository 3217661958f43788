package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobEvent struct {
	Type      string    `json:"type"`
	JobID     uuid.UUID `json:"job_id"`
	Timestamp string    `json:"timestamp"`
}

// PublishJobEvent tells feed clients that the job pool changed so they can
// refetch their recommendations.
func (h *Hub) PublishJobEvent(eventType string, jobID uuid.UUID) {
	if h == nil {
		return
	}
	b, err := json.Marshal(JobEvent{
		Type:      eventType,
		JobID:     jobID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.logger.Warn("ws event encode failed", zap.Error(err))
		return
	}
	h.Broadcast(b)
}
