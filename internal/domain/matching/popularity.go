package matching

import "math"

// PopularityScale is k in 1 / (1 + e^(-likes/k)).
const PopularityScale = 10.0

// maxPopularity keeps the logistic curve strictly below 1 once float64 runs
// out of precision (around 370 likes).
var maxPopularity = math.Nextafter(1, 0)

func PopularityScore(likeCount int64) float64 {
	if likeCount < 0 {
		likeCount = 0
	}
	s := 1 / (1 + math.Exp(-float64(likeCount)/PopularityScale))
	if s > maxPopularity {
		return maxPopularity
	}
	return s
}
