package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jobswipe"

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	recommendationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_duration_seconds",
			Help:      "Time spent building one recommendation list",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	recommendationCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_candidates",
			Help:      "Number of jobs scored per recommendation request",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	likeCountCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "like_count_cache_total",
			Help:      "Like-count cache lookups by result",
		},
		[]string{"result"},
	)

	poolSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_size",
			Help:      "Row counts of the matching pool, refreshed by the scheduler",
		},
		[]string{"entity"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestDuration,
		httpRequestsTotal,
		recommendationDuration,
		recommendationCandidates,
		likeCountCache,
		poolSize,
	)
}

// Middleware records request duration and count, labelled by route pattern
// so path parameters do not explode cardinality.
func Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			path = r.Path
		}
		status := strconv.Itoa(c.Response().StatusCode())
		method := c.Method()

		httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		return err
	}
}

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

func ObserveRecommendation(outcome string, d time.Duration, candidates int) {
	recommendationDuration.WithLabelValues(outcome).Observe(d.Seconds())
	if outcome == "ok" {
		recommendationCandidates.Observe(float64(candidates))
	}
}

func LikeCountCacheHit()  { likeCountCache.WithLabelValues("hit").Inc() }
func LikeCountCacheMiss() { likeCountCache.WithLabelValues("miss").Inc() }

func SetPoolSize(entity string, n int64) { poolSize.WithLabelValues(entity).Set(float64(n)) }
