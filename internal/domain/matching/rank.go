package matching

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

const (
	ContentWeight    = 0.7
	PopularityWeight = 0.3
)

type ScoredCandidate struct {
	JobID      uuid.UUID
	Content    float64
	Popularity float64
	Combined   float64
}

func NewScoredCandidate(jobID uuid.UUID, content, popularity float64) ScoredCandidate {
	return ScoredCandidate{
		JobID:      jobID,
		Content:    content,
		Popularity: popularity,
		Combined:   ContentWeight*content + PopularityWeight*popularity,
	}
}

type Recommendation struct {
	JobID        uuid.UUID
	ContentScore float64
}

// Rank orders candidates by combined score, highest first, breaking ties on
// job ID ascending, and returns at most limit entries. The input slice is not
// modified.
func Rank(candidates []ScoredCandidate, limit int) []Recommendation {
	if limit <= 0 || len(candidates) == 0 {
		return []Recommendation{}
	}

	sorted := make([]ScoredCandidate, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Combined != sorted[j].Combined {
			return sorted[i].Combined > sorted[j].Combined
		}
		return bytes.Compare(sorted[i].JobID[:], sorted[j].JobID[:]) < 0
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]Recommendation, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, Recommendation{JobID: c.JobID, ContentScore: c.Content})
	}
	return out
}
