package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ripple_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FollowEventsTotal counts follow graph mutations by outcome.
	FollowEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_follow_events_total",
		Help: "Total follow/unfollow operations by result",
	}, []string{"operation", "result"})

	// EngagementEventsTotal counts like and comment mutations by outcome.
	EngagementEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_engagement_events_total",
		Help: "Total like/unlike/comment operations by result",
	}, []string{"operation", "result"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		ObserveQuery(operation, table, start)
	}
}

// RecordFollowEvent increments the follow events counter.
func RecordFollowEvent(operation, result string) {
	FollowEventsTotal.WithLabelValues(operation, result).Inc()
}

// RecordEngagementEvent increments the engagement events counter.
func RecordEngagementEvent(operation, result string) {
	EngagementEventsTotal.WithLabelValues(operation, result).Inc()
}
