package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// OpenAI chat call latency (milliseconds)
	OpenAICallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "openai_call_latency_ms",
			Help:    "OpenAI chat completion call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"status"},
	)

	// Chat response cache lookups
	ChatCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_cache_lookups_total",
			Help: "Total number of chat response cache lookups",
		},
		[]string{"result"}, // result: hit, miss
	)

	// Chat requests by outcome
	ChatRequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_request_count",
			Help: "Total number of chat requests handled",
		},
		[]string{"status"}, // status: success, failed, unconfigured
	)
)

// RecordHTTPRequestDuration records request latency for one handled request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordOpenAICallLatency records the latency of one upstream chat call.
func RecordOpenAICallLatency(status string, duration time.Duration) {
	OpenAICallLatency.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

// IncrementChatCacheLookup counts a cache hit or miss.
func IncrementChatCacheLookup(result string) {
	ChatCacheLookups.WithLabelValues(result).Inc()
}

// IncrementChatRequest counts a handled chat request.
func IncrementChatRequest(status string) {
	ChatRequestCount.WithLabelValues(status).Inc()
}
